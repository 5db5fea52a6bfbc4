package http

import (
	"errors"
	"fmt"
	"net/http"

	"cinema-tickets/entities"
	"cinema-tickets/metrics"
	"cinema-tickets/purchase"

	"github.com/labstack/echo/v4"
	"github.com/samber/lo"
)

type ticketRequest struct {
	Type     entities.TicketType `json:"type"`
	Quantity uint                `json:"quantity"`
}

type ticketPurchaseRequest struct {
	// nil when the account is missing or null
	AccountID *int64          `json:"account_id"`
	Tickets   []ticketRequest `json:"tickets"`
}

type ticketPurchaseResponse struct {
	AmountToPay    uint `json:"amount_to_pay"`
	SeatsToReserve uint `json:"seats_to_reserve"`
	TotalTickets   uint `json:"total_tickets"`
}

type errorResponse struct {
	Message string `json:"message"`
}

func (r ticketPurchaseRequest) ticketTypeRequests() []entities.TicketTypeRequest {
	return lo.Map(r.Tickets, func(t ticketRequest, _ int) entities.TicketTypeRequest {
		return entities.NewTicketTypeRequest(t.Type, t.Quantity)
	})
}

func (h Handler) PostTicketPurchases(c echo.Context) error {
	var request ticketPurchaseRequest
	if err := c.Bind(&request); err != nil {
		return err
	}

	var accountID entities.AccountID
	if request.AccountID != nil {
		accountID = entities.AccountID(*request.AccountID)
	}

	summary, err := h.purchaser.PurchaseTickets(c.Request().Context(), accountID, request.ticketTypeRequests()...)
	if err != nil {
		var invalid *entities.InvalidPurchaseError
		if errors.As(err, &invalid) {
			metrics.PurchasesTotal.WithLabelValues(metrics.PurchaseRejected).Inc()
			return c.JSON(http.StatusBadRequest, errorResponse{Message: invalid.Reason})
		}

		metrics.PurchasesTotal.WithLabelValues(metrics.PurchaseFailed).Inc()
		return fmt.Errorf("failed to purchase tickets: %w", err)
	}

	metrics.PurchasesTotal.WithLabelValues(metrics.PurchaseAccepted).Inc()
	countRequestedTickets(summary)

	return c.JSON(http.StatusOK, newTicketPurchaseResponse(summary))
}

func (h Handler) PostTicketPurchasesQuote(c echo.Context) error {
	var request ticketPurchaseRequest
	if err := c.Bind(&request); err != nil {
		return err
	}

	summary, err := purchase.Summarize(request.ticketTypeRequests()...)
	var invalid *entities.InvalidPurchaseError
	if errors.As(err, &invalid) {
		return c.JSON(http.StatusBadRequest, errorResponse{Message: invalid.Reason})
	}
	if err != nil {
		return fmt.Errorf("failed to quote tickets: %w", err)
	}

	return c.JSON(http.StatusOK, newTicketPurchaseResponse(summary))
}

func newTicketPurchaseResponse(summary entities.PurchaseSummary) ticketPurchaseResponse {
	return ticketPurchaseResponse{
		AmountToPay:    summary.AmountToPay,
		SeatsToReserve: summary.SeatsToReserve,
		TotalTickets:   summary.TotalTickets,
	}
}

func countRequestedTickets(summary entities.PurchaseSummary) {
	counts := map[entities.TicketType]uint{
		entities.TicketTypeAdult:  summary.AdultTickets,
		entities.TicketTypeChild:  summary.ChildTickets,
		entities.TicketTypeInfant: summary.InfantTickets,
	}

	for ticketType, n := range counts {
		if n > 0 {
			metrics.TicketsRequestedTotal.WithLabelValues(ticketType.String()).Add(float64(n))
		}
	}
}
