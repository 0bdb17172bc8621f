package di

import (
	"context"
	"hotel/config"
	"hotel/infras/kafka"
	"hotel/infras/otel"
	"hotel/infras/postgres"

	"github.com/rs/zerolog/log"
)

// connection opens the database pools and closes them on cleanup.
func connection(cfg *config.Config) (*postgres.Connection, func(), error) {
	conn, err := postgres.New(cfg)
	if err != nil {
		return nil, nil, err //nolint:wrapcheck
	}

	return conn, func() {
		if err := conn.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close database connection")
		}
	}, nil
}

// tracer flushes pending spans on cleanup.
func tracer(cfg *config.Config) (otel.Otel, func()) {
	ot := otel.New(cfg)

	return ot, func() {
		if err := ot.Shutdown(context.Background()); err != nil {
			log.Error().Err(err).Msg("failed to shut down tracer")
		}
	}
}

// producer closes the Kafka writer on cleanup.
func producer(cfg *config.Config) (kafka.Client, func()) {
	client := kafka.New(cfg)

	return client, func() {
		if err := client.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close kafka client")
		}
	}
}
