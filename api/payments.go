package api

import (
	"context"
	"fmt"
	"net/http"

	"cinema-tickets/entities"

	"github.com/ThreeDotsLabs/go-event-driven/common/clients"
	"github.com/ThreeDotsLabs/go-event-driven/common/clients/receipts"
)

// PaymentsServiceClient charges accounts. A charge is recorded as a receipt keyed by the
// payment reference, so a repeated charge with the same key returns the first receipt.
type PaymentsServiceClient struct {
	clients *clients.Clients
}

func NewPaymentsServiceClient(clients *clients.Clients) PaymentsServiceClient {
	if clients == nil {
		panic("NewPaymentsServiceClient: clients is nil")
	}

	return PaymentsServiceClient{clients: clients}
}

func (c PaymentsServiceClient) Charge(ctx context.Context, request entities.ChargeRequest) (entities.ChargeResponse, error) {
	resp, err := c.clients.Receipts.PutReceiptsWithResponse(ctx, receipts.CreateReceipt{
		IdempotencyKey: &request.IdempotencyKey,
		Price: receipts.Money{
			MoneyAmount:   request.Price.Amount,
			MoneyCurrency: request.Price.Currency,
		},
		TicketId: request.Reference,
	})
	if err != nil {
		return entities.ChargeResponse{}, fmt.Errorf("failed to charge payment %s: %w", request.Reference, err)
	}

	switch resp.StatusCode() {
	case http.StatusOK:
		// already charged
		return entities.ChargeResponse{
			ReceiptNumber: resp.JSON200.Number,
			IssuedAt:      resp.JSON200.IssuedAt,
		}, nil
	case http.StatusCreated:
		return entities.ChargeResponse{
			ReceiptNumber: resp.JSON201.Number,
			IssuedAt:      resp.JSON201.IssuedAt,
		}, nil
	default:
		return entities.ChargeResponse{}, entities.GatewayRejectedError{
			Operation:  "PUT receipts-api/receipts",
			StatusCode: resp.StatusCode(),
		}
	}
}
