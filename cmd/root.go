package cmd

import (
	"fmt"
	"github.com/The-PhoenixOS/frameworks-native/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"os"
)

var rootCmd = &cobra.Command{
	Use:   "gesturectl",
	Short: "Utilities for converting and inspecting touchpad gestures",
}

var verbose bool
var outputFormat string

const (
	formatText = "text"
	formatJSON = "json"
)

func init() {
	rootCmd.CompletionOptions.HiddenDefaultCmd = true
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&outputFormat, "format", formatText, "Output format (text or json)")
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(watchCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func newLogger() (*zap.SugaredLogger, error) {
	cfg := zap.NewDevelopmentConfig()
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}

	return logger.Sugar(), nil
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}

	return config.Load(path)
}
