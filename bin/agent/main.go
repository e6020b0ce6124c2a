package main

import (
	"errors"
	"github.com/The-PhoenixOS/frameworks-native/config"
	"github.com/The-PhoenixOS/frameworks-native/server"
	"github.com/The-PhoenixOS/frameworks-native/util/di"
	"go.uber.org/zap"
	"golang.org/x/sys/unix"
	"log"
	"os"
	"os/signal"
)

const configEnv = "GESTURE_AGENT_CONFIG"
const defaultConfigPath = "/etc/gesture-agent.ini"

func loadConfig() (*config.Config, error) {
	path := os.Getenv(configEnv)
	if path == "" {
		path = defaultConfigPath
	}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return config.Default(), nil
	}

	return config.Load(path)
}

func newLogger(cfg *config.Config) (*zap.SugaredLogger, error) {
	level, err := zap.ParseAtomicLevel(cfg.Agent.LogLevel)
	if err != nil {
		return nil, err
	}

	zc := zap.NewDevelopmentConfig()
	zc.Level = level

	logger, err := zc.Build()
	if err != nil {
		return nil, err
	}

	return logger.Sugar(), nil
}

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatal(err)
	}

	container, err := di.New(
		di.Value(cfg),
		di.Provider(newLogger),
		di.Provider(server.New),
	)
	if err != nil {
		log.Fatal(err)
	}

	sugar, err := di.Get[*zap.SugaredLogger](container)
	if err != nil {
		log.Fatal(err)
	}
	defer sugar.Sync()

	sugar.Info("Gesture Agent")
	sugar.Info("Configuring")

	srv, err := di.Get[*server.Server](container)
	if err != nil {
		sugar.Fatal(err)
	}

	if err := srv.Start(); err != nil {
		sugar.Fatal(err)
	}

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, unix.SIGINT, unix.SIGTERM)

	sig := <-signals
	sugar.Info("Shutting down on ", sig)

	if err := srv.Close(); err != nil {
		sugar.Error("shutdown ", err)
	}
}
