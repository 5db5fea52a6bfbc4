package http

import (
	"context"

	"cinema-tickets/entities"
)

type Handler struct {
	purchaser TicketPurchaser
}

type TicketPurchaser interface {
	PurchaseTickets(
		ctx context.Context,
		accountID entities.AccountID,
		requests ...entities.TicketTypeRequest,
	) (entities.PurchaseSummary, error)
}
