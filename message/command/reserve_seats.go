package command

import (
	"context"
	"fmt"

	"cinema-tickets/entities"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"github.com/google/uuid"
)

func (h Handler) ReserveSeats(ctx context.Context, cmd *entities.ReserveSeats) error {
	logger := log.FromContext(ctx).WithField("account_id", cmd.AccountID)

	// An empty purchase still sends a reservation, for zero seats.
	if cmd.NumberOfSeats == 0 {
		logger.Info("No seats to reserve")
		return nil
	}

	reservationID, err := uuid.Parse(cmd.Header.ID)
	if err != nil {
		return fmt.Errorf("invalid reservation id %q: %w", cmd.Header.ID, err)
	}

	err = h.seats.ReserveSeats(ctx, entities.SeatReservationRequest{
		ReservationID:   reservationID,
		VenueEventID:    h.venueEventID,
		CustomerAddress: customerAddress(cmd.AccountID),
		NumberOfSeats:   int(cmd.NumberOfSeats),
	})
	if err != nil {
		return fmt.Errorf("failed to reserve %d seats: %w", cmd.NumberOfSeats, err)
	}

	logger.WithField("seats", cmd.NumberOfSeats).Info("Seats reserved")

	err = h.eventBus.Publish(ctx, entities.SeatsReserved_v1{
		Header:        entities.NewEventHeaderWithIdempotencyKey(cmd.Header.IdempotencyKey),
		AccountID:     cmd.AccountID,
		ReservationID: reservationID.String(),
		NumberOfSeats: cmd.NumberOfSeats,
	})
	if err != nil {
		return fmt.Errorf("failed to publish SeatsReserved_v1 event: %w", err)
	}

	return nil
}

func customerAddress(accountID entities.AccountID) string {
	return "account-" + accountID.String()
}
