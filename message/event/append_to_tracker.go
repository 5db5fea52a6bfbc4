package event

import (
	"context"
	"strconv"

	"cinema-tickets/entities"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
)

const (
	PaymentsSheet     = "ticket-payments"
	ReservationsSheet = "seat-reservations"
)

func (h Handler) AppendPaymentToTracker(ctx context.Context, event *entities.PaymentMade_v1) error {
	log.FromContext(ctx).Info("Appending payment to tracker")

	return h.spreadsheetsService.AppendRow(
		ctx,
		PaymentsSheet,
		[]string{event.AccountID.String(), event.Price.Amount, event.Price.Currency, event.PaymentReference},
	)
}

func (h Handler) AppendReservationToTracker(ctx context.Context, event *entities.SeatsReserved_v1) error {
	log.FromContext(ctx).Info("Appending seat reservation to tracker")

	return h.spreadsheetsService.AppendRow(
		ctx,
		ReservationsSheet,
		[]string{event.AccountID.String(), strconv.FormatUint(uint64(event.NumberOfSeats), 10), event.ReservationID},
	)
}
