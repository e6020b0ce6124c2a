package cmd

import (
	"errors"
	"github.com/The-PhoenixOS/frameworks-native/server"
	"github.com/The-PhoenixOS/frameworks-native/trace"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a gesture trace into motion notifications offline",
	RunE:  executeConvert,
}

var convertInput string
var convertConfig string

func init() {
	convertCmd.Flags().StringVar(&convertInput, "input", "", "Trace file")
	convertCmd.Flags().StringVar(&convertConfig, "config", "", "Agent configuration describing the display and devices")
	convertCmd.MarkFlagRequired("input")
}

func executeConvert(cmd *cobra.Command, args []string) (err error) {
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer log.Sync()

	cfg, err := loadConfig(convertConfig)
	if err != nil {
		return err
	}

	// The pipeline runs in process, nothing is served or recorded
	cfg.Agent.RecordPath = ""

	p, err := newPrinter(cmd.OutOrStdout(), outputFormat)
	if err != nil {
		return err
	}

	r, err := trace.Open(convertInput)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, r.Close())
	}()

	events, err := r.ReadAll()
	if err != nil {
		return err
	}

	log.Infow("Converting", "events", len(events))

	s, err := server.New(log.Named("agent"), cfg)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, s.Close())
	}()

	for _, event := range events {
		out, err := s.HandleEvent(event)
		if errors.Is(err, server.ErrUnknownDevice) {
			log.Warn("Skipping event ", err)
			continue
		} else if err != nil {
			return err
		}

		for _, args := range out {
			if err := p.print(args); err != nil {
				return err
			}
		}
	}

	return nil
}
