package api

import (
	"context"
	"sync"
	"time"

	"cinema-tickets/entities"
)

type PaymentsMock struct {
	lock    sync.Mutex
	charges []entities.ChargeRequest

	Err error
}

func (m *PaymentsMock) Charge(ctx context.Context, request entities.ChargeRequest) (entities.ChargeResponse, error) {
	m.lock.Lock()
	defer m.lock.Unlock()

	if m.Err != nil {
		return entities.ChargeResponse{}, m.Err
	}

	m.charges = append(m.charges, request)

	return entities.ChargeResponse{
		ReceiptNumber: "mocked-receipt-number",
		IssuedAt:      time.Now(),
	}, nil
}

func (m *PaymentsMock) Charges() []entities.ChargeRequest {
	m.lock.Lock()
	defer m.lock.Unlock()

	return append([]entities.ChargeRequest(nil), m.charges...)
}

type SeatReservationMock struct {
	lock         sync.Mutex
	reservations []entities.SeatReservationRequest

	Err error
}

func (m *SeatReservationMock) ReserveSeats(ctx context.Context, request entities.SeatReservationRequest) error {
	m.lock.Lock()
	defer m.lock.Unlock()

	if m.Err != nil {
		return m.Err
	}

	m.reservations = append(m.reservations, request)
	return nil
}

func (m *SeatReservationMock) Reservations() []entities.SeatReservationRequest {
	m.lock.Lock()
	defer m.lock.Unlock()

	return append([]entities.SeatReservationRequest(nil), m.reservations...)
}

type SpreadsheetsMock struct {
	lock sync.Mutex
	rows map[string][][]string
}

func (m *SpreadsheetsMock) AppendRow(ctx context.Context, spreadsheetName string, row []string) error {
	m.lock.Lock()
	defer m.lock.Unlock()

	if m.rows == nil {
		m.rows = make(map[string][][]string)
	}
	m.rows[spreadsheetName] = append(m.rows[spreadsheetName], row)

	return nil
}

func (m *SpreadsheetsMock) Rows(spreadsheetName string) [][]string {
	m.lock.Lock()
	defer m.lock.Unlock()

	return append([][]string(nil), m.rows[spreadsheetName]...)
}
