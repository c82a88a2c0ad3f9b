package later

import (
	"strings"
	"testing"
)

const psFixture = `USER               PID  %CPU %MEM      VSZ    RSS   TT  STAT STARTED      TIME COMMAND
evan             41234  12.5  1.2 411000000 200000 s003  S+   10:15AM   4:02.11 claude
evan             41235   0.2  0.4 409000000  70000 s003  S    10:15AM   0:01.02 claude
evan             41300   5.0  0.9 411000000 150000 s004  R+   11:02AM   1:10.55 /usr/local/bin/claude
evan             41400   8.0  0.5 400000000  50000 ??    S    10:00AM   0:30.00 claude
evan               812   3.2  0.1   4100000   9000 s001  S+   09:00AM   0:05.00 vim
root                 1   0.0  0.1   4200000  10000 ?     Ss   Jan01     1:00.00 init
`

func TestParsePSOutput(t *testing.T) {
	procs := parsePSOutput([]byte(psFixture))
	if len(procs) != 6 {
		t.Fatalf("parsePSOutput() got %d rows, want 6 (header skipped)", len(procs))
	}

	first := procs[0]
	if first.pid != 41234 {
		t.Errorf("pid = %d, want 41234", first.pid)
	}
	if first.cpu != 12.5 {
		t.Errorf("cpu = %v, want 12.5", first.cpu)
	}
	if first.tty != "s003" {
		t.Errorf("tty = %q, want s003", first.tty)
	}
	if first.state != "S+" {
		t.Errorf("state = %q, want S+", first.state)
	}
	if first.started != "10:15AM" {
		t.Errorf("started = %q, want 10:15AM", first.started)
	}
	if first.command != "claude" {
		t.Errorf("command = %q, want claude", first.command)
	}
}

func TestDetectorMatches(t *testing.T) {
	d := NewDetector("claude", 1.0, 0)
	procs := parsePSOutput([]byte(psFixture))

	var kept []int
	for _, p := range procs {
		if d.matches(p) {
			kept = append(kept, p.pid)
		}
	}

	// 41234: foreground claude, high cpu   → kept
	// 41235: low cpu child                 → dropped
	// 41300: full-path claude, foreground  → kept
	// 41400: no tty                        → dropped
	// 812:   wrong command                 → dropped
	// 1:     no tty, wrong command         → dropped
	want := []int{41234, 41300}
	if len(kept) != len(want) {
		t.Fatalf("matches kept %v, want %v", kept, want)
	}
	for i := range want {
		if kept[i] != want[i] {
			t.Errorf("kept[%d] = %d, want %d", i, kept[i], want[i])
		}
	}
}

func TestDetectorMatches_BackgroundState(t *testing.T) {
	d := NewDetector("claude", 1.0, 0)
	p := psProcess{pid: 1, cpu: 5.0, tty: "s001", state: "S", command: "claude"}
	if d.matches(p) {
		t.Error("matches() = true for background state, want false")
	}
}

func TestParseLsofCwd(t *testing.T) {
	out := strings.Join([]string{
		"p41234",
		"fcwd",
		"n/Users/evan/work/api",
		"",
	}, "\n")

	got := parseLsofCwd([]byte(out))
	if got != "/Users/evan/work/api" {
		t.Errorf("parseLsofCwd() = %q, want %q", got, "/Users/evan/work/api")
	}
}

func TestParseLsofCwd_NoCwd(t *testing.T) {
	out := "p41234\nftxt\nn/usr/local/bin/claude\n"
	if got := parseLsofCwd([]byte(out)); got != "" {
		t.Errorf("parseLsofCwd() = %q, want empty", got)
	}
}

func TestProjectShort(t *testing.T) {
	tests := []struct {
		cwd  string
		want string
	}{
		{"/Users/evan/work/api", "api"},
		{"/api", "api"},
		{"api", "api"},
	}
	for _, tt := range tests {
		if got := projectShort(tt.cwd); got != tt.want {
			t.Errorf("projectShort(%q) = %q, want %q", tt.cwd, got, tt.want)
		}
	}
}
