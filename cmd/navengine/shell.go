package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/goforj/godump"
	"github.com/spf13/cobra"

	"github.com/aeronav/wpnav/internal/session"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Interactively step the engine one tick at a time",
	RunE:  runShell,
}

func runShell(cmd *cobra.Command, args []string) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "navengine> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("navengine shell: %w", err)
	}
	defer rl.Close()

	ctx := context.Background()
	eng, dyn, host := newSession(sampleMission())

	var last session.Transition
	var checkpoint *session.Checkpoint

	fmt.Println("navengine shell -- commands: tick, checkpoint, rollback, state, host, quit")

	for {
		line, err := rl.Readline()
		if err != nil {
			if err == io.EOF || err == readline.ErrInterrupt {
				return nil
			}
			return fmt.Errorf("navengine shell: %w", err)
		}

		switch strings.TrimSpace(line) {
		case "tick", "t", "":
			if eng.Done() {
				fmt.Println("mission exhausted")
				continue
			}
			tr, err := eng.Tick(ctx)
			if err != nil {
				fmt.Fprintf(rl.Stderr(), "tick failed: %v\n", err)
				continue
			}
			printTransition(tr)
			syncDynamicsTarget(dyn, tr)
			dyn.Step()
			last = tr

		case "checkpoint", "c":
			cp := eng.Checkpoint()
			checkpoint = &cp
			fmt.Println("checkpoint saved")

		case "rollback", "r":
			if checkpoint == nil {
				fmt.Println("no checkpoint saved")
				continue
			}
			eng.Restore(*checkpoint)
			fmt.Println("rolled back to checkpoint")

		case "state", "s":
			fmt.Println(godump.DumpStr(last.Triplet))
			fmt.Println(godump.DumpStr(last.Progress))

		case "host", "h":
			fmt.Println(godump.DumpStr(host.Snapshot))

		case "quit", "q", "exit":
			return nil

		default:
			fmt.Println("unknown command; try tick, state, host, or quit")
		}
	}
}
