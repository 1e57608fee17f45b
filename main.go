package main

import "github.com/atomicstack/tmux-session-manager/cmd"

func main() {
	cmd.Execute()
}
