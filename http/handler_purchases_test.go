package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"cinema-tickets/entities"
	ticketsHttp "cinema-tickets/http"
	"cinema-tickets/purchase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type paymentsStub struct {
	lock     sync.Mutex
	payments []uint
	err      error
}

func (s *paymentsStub) MakePayment(ctx context.Context, accountID entities.AccountID, amount uint) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if s.err != nil {
		return s.err
	}
	s.payments = append(s.payments, amount)
	return nil
}

type reservationsStub struct {
	lock  sync.Mutex
	seats []uint
}

func (s *reservationsStub) ReserveSeat(ctx context.Context, accountID entities.AccountID, seats uint) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.seats = append(s.seats, seats)
	return nil
}

func doRequest(t *testing.T, handler http.Handler, path string, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	return rec
}

func TestPostTicketPurchases(t *testing.T) {
	testCases := []struct {
		Name               string
		Body               string
		ExpectedStatus     int
		ExpectedBody       string
		ExpectedPayments   []uint
		ExpectedSeats      []uint
		ExpectedErrMessage string
	}{
		{
			Name:             "accepted",
			Body:             `{"account_id": 123, "tickets": [{"type": "ADULT", "quantity": 2}, {"type": "CHILD", "quantity": 3}, {"type": "INFANT", "quantity": 1}]}`,
			ExpectedStatus:   http.StatusOK,
			ExpectedBody:     `{"amount_to_pay": 95, "seats_to_reserve": 5, "total_tickets": 6}`,
			ExpectedPayments: []uint{95},
			ExpectedSeats:    []uint{5},
		},
		{
			Name:             "lowercase_ticket_types",
			Body:             `{"account_id": 1, "tickets": [{"type": "adult", "quantity": 1}]}`,
			ExpectedStatus:   http.StatusOK,
			ExpectedBody:     `{"amount_to_pay": 25, "seats_to_reserve": 1, "total_tickets": 1}`,
			ExpectedPayments: []uint{25},
			ExpectedSeats:    []uint{1},
		},
		{
			Name:               "missing_account",
			Body:               `{"tickets": [{"type": "ADULT", "quantity": 1}]}`,
			ExpectedStatus:     http.StatusBadRequest,
			ExpectedErrMessage: "Invalid account ID.",
		},
		{
			Name:               "null_account",
			Body:               `{"account_id": null, "tickets": [{"type": "ADULT", "quantity": 1}]}`,
			ExpectedStatus:     http.StatusBadRequest,
			ExpectedErrMessage: "Invalid account ID.",
		},
		{
			Name:               "too_many_tickets",
			Body:               `{"account_id": 5, "tickets": [{"type": "ADULT", "quantity": 26}]}`,
			ExpectedStatus:     http.StatusBadRequest,
			ExpectedErrMessage: "Cannot purchase more than 25 tickets at a time.",
		},
		{
			Name:               "child_without_adult",
			Body:               `{"account_id": 5, "tickets": [{"type": "CHILD", "quantity": 1}]}`,
			ExpectedStatus:     http.StatusBadRequest,
			ExpectedErrMessage: "Child and Infant tickets cannot be purchased without an Adult ticket.",
		},
		{
			Name:           "unknown_ticket_type",
			Body:           `{"account_id": 5, "tickets": [{"type": "SENIOR", "quantity": 1}]}`,
			ExpectedStatus: http.StatusBadRequest,
		},
		{
			Name:           "negative_quantity",
			Body:           `{"account_id": 5, "tickets": [{"type": "ADULT", "quantity": -1}]}`,
			ExpectedStatus: http.StatusBadRequest,
		},
		{
			Name:           "malformed_body",
			Body:           `{"account_id": `,
			ExpectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			payments := &paymentsStub{}
			reservations := &reservationsStub{}
			router := ticketsHttp.NewHttpRouter(purchase.NewService(payments, reservations))

			rec := doRequest(t, router, "/ticket-purchases", tc.Body)

			require.Equal(t, tc.ExpectedStatus, rec.Code, rec.Body.String())
			if tc.ExpectedBody != "" {
				assert.JSONEq(t, tc.ExpectedBody, rec.Body.String())
			}
			if tc.ExpectedErrMessage != "" {
				var resp map[string]string
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, tc.ExpectedErrMessage, resp["message"])
			}

			assert.Equal(t, tc.ExpectedPayments, payments.payments)
			assert.Equal(t, tc.ExpectedSeats, reservations.seats)
		})
	}
}

func TestPostTicketPurchases_payment_failure(t *testing.T) {
	payments := &paymentsStub{err: errors.New("outbox unavailable")}
	reservations := &reservationsStub{}
	router := ticketsHttp.NewHttpRouter(purchase.NewService(payments, reservations))

	rec := doRequest(t, router, "/ticket-purchases", `{"account_id": 1, "tickets": [{"type": "ADULT", "quantity": 1}]}`)

	assert.GreaterOrEqual(t, rec.Code, http.StatusInternalServerError)
	assert.Empty(t, reservations.seats)
}

func TestPostTicketPurchasesQuote(t *testing.T) {
	payments := &paymentsStub{}
	reservations := &reservationsStub{}
	router := ticketsHttp.NewHttpRouter(purchase.NewService(payments, reservations))

	rec := doRequest(t, router, "/ticket-purchases/quote", `{"tickets": [{"type": "ADULT", "quantity": 1}, {"type": "INFANT", "quantity": 1}]}`)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"amount_to_pay": 25, "seats_to_reserve": 1, "total_tickets": 2}`, rec.Body.String())
	assert.Empty(t, payments.payments)
	assert.Empty(t, reservations.seats)

	rec = doRequest(t, router, "/ticket-purchases/quote", `{"tickets": [{"type": "INFANT", "quantity": 1}]}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealth(t *testing.T) {
	router := ticketsHttp.NewHttpRouter(purchase.NewService(&paymentsStub{}, &reservationsStub{}))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}
