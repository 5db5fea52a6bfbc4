package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"cinema-tickets/db"
	ticketsHttp "cinema-tickets/http"
	"cinema-tickets/message"
	"cinema-tickets/message/command"
	"cinema-tickets/message/event"
	"cinema-tickets/message/outbox"
	"cinema-tickets/purchase"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	watermillMessage "github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

func init() {
	log.Init(logrus.InfoLevel)
}

type Deps struct {
	RedisClient *redis.Client
	DB          db.DB

	PaymentsGateway     command.PaymentsGateway
	SeatsGateway        command.SeatsGateway
	SpreadsheetsService event.SpreadsheetsAPI

	VenueEventID uuid.UUID
	HTTPAddr     string
}

type Service struct {
	watermillRouter *watermillMessage.Router
	echoRouter      *echo.Echo
	httpAddr        string
}

func New(deps Deps) (Service, error) {
	watermillLogger := log.NewWatermill(log.FromContext(context.Background()))

	redisPublisher, err := message.NewRedisPublisher(deps.RedisClient, watermillLogger)
	if err != nil {
		return Service{}, err
	}

	pgSubscriber, err := outbox.SubscribeForPGMessages(deps.DB.Conn, watermillLogger)
	if err != nil {
		return Service{}, err
	}

	eventBus := event.NewBus(redisPublisher)

	commandsHandler := command.NewHandler(
		deps.PaymentsGateway,
		deps.SeatsGateway,
		eventBus,
		deps.VenueEventID,
	)
	eventsHandler := event.NewHandler(deps.SpreadsheetsService)

	watermillRouter, err := message.NewWatermillRouter(
		pgSubscriber,
		redisPublisher,
		command.NewCommandProcessorConfig(deps.RedisClient, watermillLogger),
		event.NewProcessorConfig(deps.RedisClient, watermillLogger),
		commandsHandler,
		eventsHandler,
		watermillLogger,
	)
	if err != nil {
		return Service{}, err
	}

	commandBus := outbox.NewCommandBus(deps.DB.Conn)
	purchaseService := purchase.NewService(
		command.NewPaymentProcessor(commandBus),
		command.NewSeatReservations(commandBus),
	)

	httpAddr := deps.HTTPAddr
	if httpAddr == "" {
		httpAddr = ":8080"
	}

	return Service{
		watermillRouter: watermillRouter,
		echoRouter:      ticketsHttp.NewHttpRouter(purchaseService),
		httpAddr:        httpAddr,
	}, nil
}

func (s Service) Run(
	ctx context.Context,
) error {
	errgrp, ctx := errgroup.WithContext(ctx)

	errgrp.Go(func() error {
		return s.watermillRouter.Run(ctx)
	})

	errgrp.Go(func() error {
		// we don't want to start HTTP server before Watermill router (so service won't be healthy before it's ready)
		<-s.watermillRouter.Running()

		err := s.echoRouter.Start(s.httpAddr)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}

		return nil
	})

	errgrp.Go(func() error {
		<-ctx.Done()
		return s.echoRouter.Shutdown(context.Background())
	})

	return errgrp.Wait()
}
