package main

import (
	"context"
	"fmt"
	"hotel/config"
	"hotel/di"
	"hotel/internal/console"
	"hotel/shared/logger"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const argLength = 4

func main() {
	os.Exit(run())
}

func run() int {
	if len(os.Args) != argLength {
		fmt.Fprintln(os.Stderr, console.Usage(filepath.Base(os.Args[0])))

		return 1
	}

	logger.InitLoggerTo(os.Stderr)

	cfg := config.Get()
	cfg.UseDatabase(os.Args[1], os.Args[2], os.Args[3])

	logger.SetLogLevel(cfg)

	if cfg.Server.LogLevel == "" {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}

	fmt.Print("Connecting to database...")

	app, cleanup, err := di.InitializeConsole()
	if err != nil {
		fmt.Println()
		log.Error().Err(err).Msg("Unable to connect to database, make sure postgres is running")

		return 1
	}

	fmt.Println("Done")

	err = app.Run(context.Background(), os.Stdin, os.Stdout)

	fmt.Print("Disconnecting from database...")
	cleanup()
	fmt.Println("Done\n\nBye !")

	if err != nil {
		log.Error().Err(err).Msg("console stopped")

		return 1
	}

	return 0
}
