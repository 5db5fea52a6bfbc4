package command

import (
	"context"
	"fmt"

	"cinema-tickets/entities"
)

// Sender is satisfied by *cqrs.CommandBus and by the outbox bus.
type Sender interface {
	Send(ctx context.Context, cmd any) error
}

// PaymentProcessor charges accounts by sending MakePayment commands.
type PaymentProcessor struct {
	sender Sender
}

func NewPaymentProcessor(sender Sender) PaymentProcessor {
	if sender == nil {
		panic("sender is required")
	}

	return PaymentProcessor{sender: sender}
}

func (p PaymentProcessor) MakePayment(ctx context.Context, accountID entities.AccountID, amount uint) error {
	err := p.sender.Send(ctx, &entities.MakePayment{
		Header:    entities.NewCommandHeader(),
		AccountID: accountID,
		Amount:    amount,
	})
	if err != nil {
		return fmt.Errorf("failed to send MakePayment command: %w", err)
	}

	return nil
}

// SeatReservations reserves seats by sending ReserveSeats commands.
type SeatReservations struct {
	sender Sender
}

func NewSeatReservations(sender Sender) SeatReservations {
	if sender == nil {
		panic("sender is required")
	}

	return SeatReservations{sender: sender}
}

func (s SeatReservations) ReserveSeat(ctx context.Context, accountID entities.AccountID, seats uint) error {
	err := s.sender.Send(ctx, &entities.ReserveSeats{
		Header:        entities.NewCommandHeader(),
		AccountID:     accountID,
		NumberOfSeats: seats,
	})
	if err != nil {
		return fmt.Errorf("failed to send ReserveSeats command: %w", err)
	}

	return nil
}
