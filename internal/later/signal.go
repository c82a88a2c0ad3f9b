package later

// TerminateOutcome classifies the result of a termination attempt.
type TerminateOutcome int

const (
	// Terminated means the signal was delivered.
	Terminated TerminateOutcome = iota
	// ProcessGone means the process had already exited.
	ProcessGone
	// PermissionDenied means the signal could not be delivered due to
	// insufficient privileges.
	PermissionDenied
)
