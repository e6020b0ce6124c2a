package cmd

import (
	"context"
	"errors"
	"github.com/The-PhoenixOS/frameworks-native/client"
	"github.com/spf13/cobra"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"io"
	"os"
	"os/signal"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Print the motion notifications produced by an agent",
	RunE:  executeWatch,
}

var watchAddr string

func init() {
	watchCmd.Flags().StringVar(&watchAddr, "addr", "127.0.0.1:8080", "Agent address")
}

func executeWatch(cmd *cobra.Command, args []string) error {
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer log.Sync()

	p, err := newPrinter(cmd.OutOrStdout(), outputFormat)
	if err != nil {
		return err
	}

	ac, err := client.Connect(watchAddr)
	if err != nil {
		return err
	}
	defer ac.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	stream, err := ac.StreamMotion(ctx)
	if err != nil {
		return err
	}

	log.Info("Watching ", watchAddr)

	for {
		args, err := stream.Recv()
		if errors.Is(err, io.EOF) || status.Code(err) == codes.Canceled {
			log.Info("Stream closed")
			return nil
		} else if err != nil {
			return err
		}

		if err := p.print(args); err != nil {
			return err
		}
	}
}
