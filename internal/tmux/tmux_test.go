package tmux

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
	"testing"

	"github.com/atomicstack/tmux-session-manager/internal/session"
)

// stubCommands replaces execCommand for the test, records every argv,
// and plays back one canned stdout per call. An output starting with
// "!" fails the command instead, with the rest of the string as its
// stderr.
func stubCommands(t *testing.T, outputs ...string) *[][]string {
	t.Helper()
	var calls [][]string
	i := 0
	execCommand = func(name string, args ...string) *exec.Cmd {
		calls = append(calls, append([]string{name}, args...))
		output := ""
		if i < len(outputs) {
			output = outputs[i]
			i++
		}
		if stderr, failed := strings.CutPrefix(output, "!"); failed {
			return exec.Command("sh", "-c", "printf '%s' '"+stderr+"' >&2; exit 1")
		}
		return exec.Command("printf", "%s", output)
	}
	t.Cleanup(func() { execCommand = exec.Command })
	return &calls
}

func TestSplitLines(t *testing.T) {
	lines := splitLines([]byte("  work \n\nscratch\n"))
	if len(lines) != 2 || lines[0] != "work" || lines[1] != "scratch" {
		t.Fatalf("unexpected lines: %v", lines)
	}
	if splitLines([]byte("   \n")) != nil {
		t.Fatalf("expected nil for blank output")
	}
}

func TestBaseArgsIncludeSocket(t *testing.T) {
	c := &Client{}
	if len(c.baseArgs()) != 0 {
		t.Fatalf("expected no args for the default server")
	}
	c = &Client{Socket: "/tmp/custom.sock"}
	args := c.baseArgs()
	if len(args) != 2 || args[0] != "-S" || args[1] != "/tmp/custom.sock" {
		t.Fatalf("unexpected base args: %v", args)
	}
}

func TestListSessionsParsesNames(t *testing.T) {
	calls := stubCommands(t, "work\nscratch\n")
	c := &Client{}
	sessions, err := c.ListSessions()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(sessions) != 2 || sessions[0] != "work" || sessions[1] != "scratch" {
		t.Fatalf("unexpected sessions: %v", sessions)
	}
	argv := (*calls)[0]
	if argv[0] != "tmux" || argv[1] != "list-sessions" {
		t.Fatalf("unexpected argv: %v", argv)
	}
}

func TestListSessionsNoServerIsEmpty(t *testing.T) {
	stubCommands(t,
		"!no server running on /tmp/tmux-1000/default",
		"!error connecting to /tmp/nope.sock (No such file or directory)",
	)
	c := &Client{}
	for i := 0; i < 2; i++ {
		sessions, err := c.ListSessions()
		if err != nil {
			t.Fatalf("expected no error when the server is down, got %v", err)
		}
		if sessions != nil {
			t.Fatalf("expected no sessions, got %v", sessions)
		}
	}
}

func TestListSessionsPropagatesRealFailures(t *testing.T) {
	stubCommands(t, "!error connecting to /run/tmux/default (Permission denied)")
	c := &Client{}
	if _, err := c.ListSessions(); err == nil {
		t.Fatalf("expected a permission failure to propagate")
	}
}

func TestIsRunning(t *testing.T) {
	stubCommands(t, "work\nscratch\n", "work\nscratch\n")
	c := &Client{}
	running, err := c.IsRunning("scratch")
	if err != nil || !running {
		t.Fatalf("expected scratch running, got %v %v", running, err)
	}
	running, err = c.IsRunning("nope")
	if err != nil || running {
		t.Fatalf("expected nope not running, got %v %v", running, err)
	}
}

func TestKillPassesTarget(t *testing.T) {
	calls := stubCommands(t, "")
	c := &Client{}
	if err := c.Kill("work"); err != nil {
		t.Fatalf("kill: %v", err)
	}
	argv := (*calls)[0]
	want := []string{"tmux", "kill-session", "-t", "work"}
	if strings.Join(argv, " ") != strings.Join(want, " ") {
		t.Fatalf("unexpected argv: %v", argv)
	}
}

func TestShQuote(t *testing.T) {
	cases := map[string]string{
		"":             "''",
		"plain":        "'plain'",
		"two words":    "'two words'",
		"don't":        `'don'\''t'`,
		"$HOME/`rm x`": "'$HOME/`rm x`'",
	}
	for in, want := range cases {
		if got := shQuote(in); got != want {
			t.Errorf("shQuote(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestRestoreScriptShape(t *testing.T) {
	layout := session.Layout{
		Name:    "work",
		WorkDir: "/home/user/project",
		Windows: []session.Window{
			{
				Index:  "0",
				Name:   "editor",
				Layout: "dead,160x48,0,0{80x48,0,0,1,79x48,81,0,2}",
				Panes: []session.Pane{
					{Index: "0", Command: "vim .", WorkDir: "/home/user/project"},
					{Index: "1", WorkDir: "/home/user/project/sub"},
				},
			},
			{
				Index:  "1",
				Name:   "shell",
				Layout: "dead,160x48,0,0,3",
				Panes:  []session.Pane{{Index: "0", WorkDir: "/home/user/project"}},
			},
		},
	}
	c := &Client{}
	script := c.restoreScript("tsm-restore-1", layout)

	for _, fragment := range []string{
		"tmux new-session -d -s 'tsm-restore-1' -c '/home/user/project'\n",
		"tmux new-window -d -t 'tsm-restore-1' -n 'shell'",
		"select-layout -t 'tsm-restore-1:0'",
		"select-layout -t 'tsm-restore-1:1'",
		"send-keys -t 'tsm-restore-1:0.0' 'vim .' C-m",
		"send-keys -t 'tsm-restore-1:0.1' 'cd '\\''/home/user/project/sub'\\''; clear' C-m",
		"rename-session -t 'tsm-restore-1' 'work'\n",
	} {
		if !strings.Contains(script, fragment) {
			t.Fatalf("expected fragment %q in script:\n%s", fragment, script)
		}
	}
	// One split for the two-pane window, none for the one-pane window.
	if got := strings.Count(script, "split-window"); got != 1 {
		t.Fatalf("expected one split-window, got %d:\n%s", got, script)
	}
}

func TestRestoreScriptUsesSocket(t *testing.T) {
	layout := session.Layout{
		Name:    "work",
		WorkDir: "/tmp",
		Windows: []session.Window{
			{Index: "0", Name: "shell", Panes: []session.Pane{{Index: "0", WorkDir: "/tmp"}}},
		},
	}
	c := &Client{Socket: "/tmp/custom.sock"}
	script := c.restoreScript("tsm-restore-1", layout)
	if !strings.Contains(script, "tmux -S '/tmp/custom.sock' new-session") {
		t.Fatalf("expected socket flag in script:\n%s", script)
	}
}

func TestRestoreScriptWindowWithoutPanes(t *testing.T) {
	layout := session.Layout{
		Name:    "work",
		WorkDir: "/tmp",
		Windows: []session.Window{
			{Index: "0", Name: "shell", Panes: []session.Pane{{Index: "0", WorkDir: "/tmp"}}},
			{Index: "1", Name: "empty"},
		},
	}
	c := &Client{}
	script := c.restoreScript("tsm-restore-1", layout)
	if !strings.Contains(script, "new-window -d -t 'tsm-restore-1' -n 'empty'") {
		t.Fatalf("expected the empty window to be created:\n%s", script)
	}
	// No layout or keystrokes for a window with no recorded panes.
	if strings.Contains(script, "select-layout -t 'tsm-restore-1:1'") {
		t.Fatalf("unexpected select-layout for empty window:\n%s", script)
	}
	if strings.Contains(script, "split-window") {
		t.Fatalf("unexpected split-window:\n%s", script)
	}
}

func TestForegroundCommandSkipsOwnProcess(t *testing.T) {
	stubCommands(t, fmt.Sprintf("%d tmux-session-manager menu\n 4242 vim .\n", os.Getpid()))
	if got := foregroundCommand("1234"); got != "vim ." {
		t.Fatalf("expected vim ., got %q", got)
	}
}

func TestForegroundCommandIdleShell(t *testing.T) {
	stubCommands(t, "!")
	if got := foregroundCommand("1234"); got != "" {
		t.Fatalf("expected empty command for idle shell, got %q", got)
	}
}
