package main

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.bug.st/serial"

	"github.com/aeronav/wpnav/nav"
)

var (
	serialPortName string
	serialBaud     int
)

var serialCmd = &cobra.Command{
	Use:   "serial",
	Short: "Bridge line-delimited mock telemetry frames from a serial port into the engine",
	Long: `Each line read from the port is "x,y,z,vx,vy,vz,yaw" in the local NED
frame (meters, radians). navengine feeds each line in as one tick's local
position and advances the engine, printing the resulting transition. This
is a test harness for the engine, not a MAVLink or NMEA bridge.`,
	RunE: runSerial,
}

func init() {
	serialCmd.Flags().StringVar(&serialPortName, "port", "", "serial port to read from (required)")
	serialCmd.Flags().IntVar(&serialBaud, "baud", 57600, "baud rate")
	if err := serialCmd.MarkFlagRequired("port"); err != nil {
		panic(err)
	}
}

func runSerial(cmd *cobra.Command, args []string) error {
	mode := &serial.Mode{
		BaudRate: serialBaud,
		Parity:   serial.NoParity,
		DataBits: 8,
		StopBits: serial.OneStopBit,
	}

	port, err := serial.Open(serialPortName, mode)
	if err != nil {
		return fmt.Errorf("navengine serial: open %s: %w", serialPortName, err)
	}
	defer port.Close()

	ctx := context.Background()
	eng, dyn, _ := newSession(sampleMission())

	scanner := bufio.NewScanner(port)
	for scanner.Scan() {
		pos, err := parseTelemetryLine(scanner.Text())
		if err != nil {
			globalLogger.Warnf("skipping malformed telemetry line: %v", err)
			continue
		}
		dyn.Pos = pos

		if eng.Done() {
			fmt.Println("mission exhausted")
			return nil
		}

		tr, err := eng.Tick(ctx)
		if err != nil {
			return fmt.Errorf("navengine serial: %w", err)
		}
		printTransition(tr)

		if tr.MissionFailure != "" {
			globalLogger.Error("mission failed", "reason", tr.MissionFailure)
			return nil
		}
	}
	return scanner.Err()
}

func parseTelemetryLine(line string) (nav.LocalPosition, error) {
	fields := strings.Split(strings.TrimSpace(line), ",")
	if len(fields) != 7 {
		return nav.LocalPosition{}, fmt.Errorf("expected 7 comma-separated fields, got %d", len(fields))
	}

	vals := make([]float32, 7)
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 32)
		if err != nil {
			return nav.LocalPosition{}, fmt.Errorf("field %d: %w", i, err)
		}
		vals[i] = float32(v)
	}

	return nav.LocalPosition{
		X: vals[0], Y: vals[1], Z: vals[2],
		VX: vals[3], VY: vals[4], VZ: vals[5],
		Yaw: vals[6],
	}, nil
}
