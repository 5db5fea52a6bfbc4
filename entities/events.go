package entities

import (
	"time"

	"github.com/google/uuid"
)

type CommandHeader struct {
	ID             string    `json:"id"`
	PublishedAt    time.Time `json:"published_at"`
	IdempotencyKey string    `json:"idempotency_key"`
}

func NewCommandHeader() CommandHeader {
	id := uuid.NewString()

	return CommandHeader{
		ID:             id,
		PublishedAt:    time.Now().UTC(),
		IdempotencyKey: id,
	}
}

type MakePayment struct {
	Header CommandHeader `json:"header"`

	AccountID AccountID `json:"account_id"`
	Amount    uint      `json:"amount"`
}

type ReserveSeats struct {
	Header CommandHeader `json:"header"`

	AccountID     AccountID `json:"account_id"`
	NumberOfSeats uint      `json:"number_of_seats"`
}

type EventHeader struct {
	ID             string    `json:"id"`
	PublishedAt    time.Time `json:"published_at"`
	IdempotencyKey string    `json:"idempotency_key"`
}

// NewEventHeaderWithIdempotencyKey keeps the key of the command that caused the event,
// so a redelivered command produces an event with the same key.
func NewEventHeaderWithIdempotencyKey(idempotencyKey string) EventHeader {
	return EventHeader{
		ID:             uuid.NewString(),
		PublishedAt:    time.Now().UTC(),
		IdempotencyKey: idempotencyKey,
	}
}

type PaymentMade_v1 struct {
	Header EventHeader `json:"header"`

	AccountID        AccountID `json:"account_id"`
	Price            Money     `json:"price"`
	PaymentReference string    `json:"payment_reference"`
	ReceiptNumber    string    `json:"receipt_number"`
}

type SeatsReserved_v1 struct {
	Header EventHeader `json:"header"`

	AccountID     AccountID `json:"account_id"`
	ReservationID string    `json:"reservation_id"`
	NumberOfSeats uint      `json:"number_of_seats"`
}
