package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"cinema-tickets/api"
	"cinema-tickets/db"
	"cinema-tickets/message"
	"cinema-tickets/service"
	observability "cinema-tickets/trace"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"github.com/google/uuid"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := run(ctx); err != nil {
		log.FromContext(ctx).WithError(err).Error("Service stopped")
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	gatewayAddr := os.Getenv("GATEWAY_ADDR")

	tp, err := observability.ConfigureTraceProvider(getEnvOrDefault(
		"JAEGER_ENDPOINT",
		fmt.Sprintf("%s/jaeger-api/api/traces", gatewayAddr),
	))
	if err != nil {
		return fmt.Errorf("failed to configure tracing: %w", err)
	}
	defer func() {
		_ = tp.Shutdown(context.Background())
	}()

	venueEventID, err := uuid.Parse(os.Getenv("VENUE_EVENT_ID"))
	if err != nil {
		return fmt.Errorf("VENUE_EVENT_ID must be a UUID: %w", err)
	}

	gatewayClients, err := api.NewGatewayClients(gatewayAddr)
	if err != nil {
		return err
	}

	conn, err := db.NewDBConn(os.Getenv("POSTGRES_URL"))
	if err != nil {
		return err
	}
	defer conn.Close()

	redisClient := message.NewRedisClient(os.Getenv("REDIS_ADDR"))
	defer redisClient.Close()

	svc, err := service.New(service.Deps{
		RedisClient:         redisClient,
		DB:                  conn,
		PaymentsGateway:     api.NewPaymentsServiceClient(gatewayClients),
		SeatsGateway:        api.NewSeatReservationServiceClient(gatewayClients),
		SpreadsheetsService: api.NewSpreadsheetsAPIClient(gatewayClients),
		VenueEventID:        venueEventID,
		HTTPAddr:            getEnvOrDefault("HTTP_ADDR", ":8080"),
	})
	if err != nil {
		return err
	}

	return svc.Run(ctx)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}

	return defaultValue
}
