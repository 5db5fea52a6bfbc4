package purchase

import (
	"context"
	"fmt"

	"cinema-tickets/entities"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"github.com/sirupsen/logrus"
)

const (
	MaxTickets = 25

	AdultTicketPrice  = 25
	ChildTicketPrice  = 15
	InfantTicketPrice = 0
)

const (
	reasonInvalidAccount       = "Invalid account ID."
	reasonMaxTicketsExceeded   = "Cannot purchase more than 25 tickets at a time."
	reasonAccompanimentMissing = "Child and Infant tickets cannot be purchased without an Adult ticket."
	reasonUnknownTicketType    = "Unknown ticket type."
)

type PaymentService interface {
	MakePayment(ctx context.Context, accountID entities.AccountID, amount uint) error
}

type SeatReservationService interface {
	ReserveSeat(ctx context.Context, accountID entities.AccountID, seats uint) error
}

type Service struct {
	payments     PaymentService
	reservations SeatReservationService
}

func NewService(payments PaymentService, reservations SeatReservationService) Service {
	if payments == nil {
		panic("missing payments")
	}
	if reservations == nil {
		panic("missing reservations")
	}

	return Service{
		payments:     payments,
		reservations: reservations,
	}
}

// PurchaseTickets validates and prices the requests, then charges the account
// and reserves the seats. Nothing is charged or reserved when validation fails.
func (s Service) PurchaseTickets(
	ctx context.Context,
	accountID entities.AccountID,
	requests ...entities.TicketTypeRequest,
) (entities.PurchaseSummary, error) {
	logger := log.FromContext(ctx).WithField("account_id", int64(accountID))

	if !accountID.Valid() {
		logger.WithField("reason", reasonInvalidAccount).Info("Rejecting ticket purchase")
		return entities.PurchaseSummary{}, entities.NewInvalidPurchaseError(reasonInvalidAccount)
	}

	summary, err := Summarize(requests...)
	if err != nil {
		logger.WithError(err).Info("Rejecting ticket purchase")
		return entities.PurchaseSummary{}, err
	}

	if err := s.payments.MakePayment(ctx, accountID, summary.AmountToPay); err != nil {
		return entities.PurchaseSummary{}, fmt.Errorf("making payment of %d: %w", summary.AmountToPay, err)
	}

	// The payment is not compensated when the reservation fails. The summary is
	// still returned so the caller knows what was charged.
	if err := s.reservations.ReserveSeat(ctx, accountID, summary.SeatsToReserve); err != nil {
		return summary, fmt.Errorf("reserving %d seats: %w", summary.SeatsToReserve, err)
	}

	logger.WithFields(logrus.Fields{
		"total_tickets":    summary.TotalTickets,
		"amount_to_pay":    summary.AmountToPay,
		"seats_to_reserve": summary.SeatsToReserve,
	}).Info("Tickets purchased")

	return summary, nil
}

// Summarize applies the ticket rules without an account or any side effects.
func Summarize(requests ...entities.TicketTypeRequest) (entities.PurchaseSummary, error) {
	var summary entities.PurchaseSummary

	for _, request := range requests {
		n := request.NoOfTickets()
		if !request.Type().Valid() {
			return entities.PurchaseSummary{}, entities.NewInvalidPurchaseError(reasonUnknownTicketType)
		}

		// The running total only grows, so stopping here keeps the counters from overflowing.
		if n > MaxTickets-summary.TotalTickets {
			return entities.PurchaseSummary{}, entities.NewInvalidPurchaseError(reasonMaxTicketsExceeded)
		}

		switch request.Type() {
		case entities.TicketTypeAdult:
			summary.AdultTickets += n
			summary.AmountToPay += n * AdultTicketPrice
		case entities.TicketTypeChild:
			summary.ChildTickets += n
			summary.AmountToPay += n * ChildTicketPrice
		case entities.TicketTypeInfant:
			summary.InfantTickets += n
			summary.AmountToPay += n * InfantTicketPrice
		}

		summary.TotalTickets += n
	}

	if summary.AdultTickets == 0 && (summary.ChildTickets > 0 || summary.InfantTickets > 0) {
		return entities.PurchaseSummary{}, entities.NewInvalidPurchaseError(reasonAccompanimentMissing)
	}

	summary.SeatsToReserve = summary.AdultTickets + summary.ChildTickets

	return summary, nil
}
