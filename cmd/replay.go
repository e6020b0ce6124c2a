package cmd

import (
	"context"
	"github.com/The-PhoenixOS/frameworks-native/client"
	"github.com/The-PhoenixOS/frameworks-native/trace"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"time"
)

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Send a gesture trace to an agent",
	RunE:  executeReplay,
}

var replayAddr string
var replayInput string
var replayRealtime bool
var replayPrint bool

func init() {
	replayCmd.Flags().StringVar(&replayAddr, "addr", "127.0.0.1:8080", "Agent address")
	replayCmd.Flags().StringVar(&replayInput, "input", "", "Trace file")
	replayCmd.Flags().BoolVar(&replayRealtime, "realtime", false, "Preserve the timing between events")
	replayCmd.Flags().BoolVar(&replayPrint, "print", false, "Print the notifications returned by the agent")
	replayCmd.MarkFlagRequired("input")
}

func executeReplay(cmd *cobra.Command, args []string) error {
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer log.Sync()

	p, err := newPrinter(cmd.OutOrStdout(), outputFormat)
	if err != nil {
		return err
	}

	r, err := trace.Open(replayInput)
	if err != nil {
		return err
	}

	events, err := r.ReadAll()
	r.Close()
	if err != nil {
		return err
	}

	log.Info("Connecting to ", replayAddr)

	ac, err := client.Connect(replayAddr)
	if err != nil {
		return err
	}
	defer ac.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	bar := progressbar.Default(int64(len(events)), "replaying")
	defer bar.Finish()

	for i, event := range events {
		if replayRealtime && i > 0 {
			time.Sleep(time.Duration(event.EventTime - events[i-1].EventTime))
		}

		out, err := ac.SendGesture(ctx, event)
		if err != nil {
			return err
		}

		if replayPrint {
			for _, args := range out {
				if err := p.print(args); err != nil {
					return err
				}
			}
		}

		bar.Add(1)
	}

	return nil
}
