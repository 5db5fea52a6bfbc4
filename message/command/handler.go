package command

import (
	"context"

	"cinema-tickets/entities"

	"github.com/google/uuid"
)

type PaymentsGateway interface {
	Charge(ctx context.Context, request entities.ChargeRequest) (entities.ChargeResponse, error)
}

type SeatsGateway interface {
	ReserveSeats(ctx context.Context, request entities.SeatReservationRequest) error
}

// EventBus is satisfied by *cqrs.EventBus.
type EventBus interface {
	Publish(ctx context.Context, event any) error
}

type Handler struct {
	payments PaymentsGateway
	seats    SeatsGateway
	eventBus EventBus

	venueEventID uuid.UUID
}

func NewHandler(
	payments PaymentsGateway,
	seats SeatsGateway,
	eventBus EventBus,
	venueEventID uuid.UUID,
) Handler {
	if payments == nil {
		panic("payments is required")
	}
	if seats == nil {
		panic("seats is required")
	}
	if eventBus == nil {
		panic("eventBus is required")
	}
	if venueEventID == uuid.Nil {
		panic("venueEventID is required")
	}

	return Handler{
		payments:     payments,
		seats:        seats,
		eventBus:     eventBus,
		venueEventID: venueEventID,
	}
}
