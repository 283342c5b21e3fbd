package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aeronav/wpnav/binlog"
)

var runTraceFile string

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the sample mission to completion, printing each transition",
	RunE:  runRun,
}

func init() {
	runCmd.Flags().StringVar(&runTraceFile, "trace", "", "write a binlog trace to this path")
}

func runRun(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	eng, dyn, host := newSession(sampleMission())

	var writer *binlog.Writer
	if runTraceFile != "" {
		f, err := os.Create(runTraceFile)
		if err != nil {
			return fmt.Errorf("navengine run: create trace file: %w", err)
		}
		defer f.Close()

		writer, err = binlog.NewWriter(f)
		if err != nil {
			return fmt.Errorf("navengine run: create trace writer: %w", err)
		}
		defer writer.Close()
	}

	for !eng.Done() {
		tr, err := eng.Tick(ctx)
		if err != nil {
			return fmt.Errorf("navengine run: %w", err)
		}

		printTransition(tr)
		syncDynamicsTarget(dyn, tr)
		dyn.Step()

		if writer != nil {
			if err := writer.Append(toFrame(tr, host)); err != nil {
				globalLogger.Warnf("failed to append trace frame: %v", err)
			}
		}

		if tr.MissionFailure != "" {
			globalLogger.Error("mission failed", "reason", tr.MissionFailure)
			return nil
		}
	}

	fmt.Println("mission complete")
	return nil
}
