package command_test

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"

	"cinema-tickets/api"
	"cinema-tickets/entities"
	"cinema-tickets/message/command"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type eventBusMock struct {
	lock   sync.Mutex
	events []any
}

func (m *eventBusMock) Publish(ctx context.Context, event any) error {
	m.lock.Lock()
	defer m.lock.Unlock()

	m.events = append(m.events, event)
	return nil
}

func TestHandler_MakePayment(t *testing.T) {
	payments := &api.PaymentsMock{}
	eventBus := &eventBusMock{}
	handler := command.NewHandler(payments, &api.SeatReservationMock{}, eventBus, uuid.New())

	cmd := &entities.MakePayment{
		Header:    entities.NewCommandHeader(),
		AccountID: 42,
		Amount:    95,
	}

	require.NoError(t, handler.MakePayment(context.Background(), cmd))

	charges := payments.Charges()
	require.Len(t, charges, 1)
	assert.Equal(t, entities.ChargeRequest{
		IdempotencyKey: cmd.Header.IdempotencyKey,
		Reference:      cmd.Header.ID,
		AccountID:      42,
		Price:          entities.Money{Amount: "95", Currency: "GBP"},
	}, charges[0])

	require.Len(t, eventBus.events, 1)
	event, ok := eventBus.events[0].(entities.PaymentMade_v1)
	require.True(t, ok, "unexpected event %T", eventBus.events[0])
	assert.Equal(t, entities.AccountID(42), event.AccountID)
	assert.Equal(t, entities.Money{Amount: "95", Currency: "GBP"}, event.Price)
	assert.Equal(t, cmd.Header.ID, event.PaymentReference)
	assert.Equal(t, "mocked-receipt-number", event.ReceiptNumber)
	assert.Equal(t, cmd.Header.IdempotencyKey, event.Header.IdempotencyKey)
}

func TestHandler_MakePayment_gateway_rejected(t *testing.T) {
	payments := &api.PaymentsMock{
		Err: entities.GatewayRejectedError{Operation: "charge", StatusCode: http.StatusBadRequest},
	}
	eventBus := &eventBusMock{}
	handler := command.NewHandler(payments, &api.SeatReservationMock{}, eventBus, uuid.New())

	err := handler.MakePayment(context.Background(), &entities.MakePayment{
		Header:    entities.NewCommandHeader(),
		AccountID: 42,
		Amount:    25,
	})

	require.Error(t, err)
	assert.True(t, entities.IsPermanent(err))
	assert.Empty(t, eventBus.events)
}

func TestHandler_ReserveSeats(t *testing.T) {
	venueEventID := uuid.New()
	seats := &api.SeatReservationMock{}
	eventBus := &eventBusMock{}
	handler := command.NewHandler(&api.PaymentsMock{}, seats, eventBus, venueEventID)

	cmd := &entities.ReserveSeats{
		Header:        entities.NewCommandHeader(),
		AccountID:     42,
		NumberOfSeats: 5,
	}

	require.NoError(t, handler.ReserveSeats(context.Background(), cmd))

	reservations := seats.Reservations()
	require.Len(t, reservations, 1)
	assert.Equal(t, uuid.MustParse(cmd.Header.ID), reservations[0].ReservationID)
	assert.Equal(t, venueEventID, reservations[0].VenueEventID)
	assert.Equal(t, "account-42", reservations[0].CustomerAddress)
	assert.Equal(t, 5, reservations[0].NumberOfSeats)

	require.Len(t, eventBus.events, 1)
	assert.Equal(t, cmd.Header.ID, eventBus.events[0].(entities.SeatsReserved_v1).ReservationID)
}

func TestHandler_ReserveSeats_zero_seats(t *testing.T) {
	seats := &api.SeatReservationMock{Err: errors.New("should not be called")}
	handler := command.NewHandler(&api.PaymentsMock{}, seats, &eventBusMock{}, uuid.New())

	err := handler.ReserveSeats(context.Background(), &entities.ReserveSeats{
		Header:        entities.NewCommandHeader(),
		AccountID:     42,
		NumberOfSeats: 0,
	})

	require.NoError(t, err)
	assert.Empty(t, seats.Reservations())
}

func TestHandler_ReserveSeats_gateway_error(t *testing.T) {
	seats := &api.SeatReservationMock{Err: errors.New("connection refused")}
	handler := command.NewHandler(&api.PaymentsMock{}, seats, &eventBusMock{}, uuid.New())

	err := handler.ReserveSeats(context.Background(), &entities.ReserveSeats{
		Header:        entities.NewCommandHeader(),
		AccountID:     42,
		NumberOfSeats: 2,
	})

	require.Error(t, err)
	assert.False(t, entities.IsPermanent(err))
}
