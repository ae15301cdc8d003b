package main

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"ksecrets/internal/cli"
	"ksecrets/internal/config"
)

func main() {
	env, err := config.LoadEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to parse environment")
	}

	level := zerolog.InfoLevel
	if parsed, err := zerolog.ParseLevel(env.LogLevel); err == nil {
		level = parsed
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Logger()

	rootCmd := cli.NewRootCmd(env)
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("run failed")
	}
}
