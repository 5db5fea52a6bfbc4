package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"cinema-tickets/entities"

	"github.com/lithammer/shortuuid/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ticketPurchaseRequest struct {
	AccountID *entities.AccountID `json:"account_id"`
	Tickets   []ticketRequest     `json:"tickets"`
}

type ticketRequest struct {
	Type     string `json:"type"`
	Quantity uint   `json:"quantity"`
}

type ticketPurchaseResponse struct {
	AmountToPay    uint `json:"amount_to_pay"`
	SeatsToReserve uint `json:"seats_to_reserve"`
	TotalTickets   uint `json:"total_tickets"`
}

func sendTicketPurchase(t *testing.T, req ticketPurchaseRequest, expectedStatus int) ticketPurchaseResponse {
	t.Helper()

	payload, err := json.Marshal(req)
	require.NoError(t, err)

	httpReq, err := http.NewRequest(
		http.MethodPost,
		"http://localhost:8080/ticket-purchases",
		bytes.NewBuffer(payload),
	)
	require.NoError(t, err)

	httpReq.Header.Set("Correlation-ID", shortuuid.New())
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(httpReq)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, expectedStatus, resp.StatusCode)

	var purchaseResp ticketPurchaseResponse
	if resp.StatusCode == http.StatusOK {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&purchaseResp))
	}

	return purchaseResp
}

func waitForHttpServer(t *testing.T) {
	t.Helper()

	require.EventuallyWithT(
		t,
		func(t *assert.CollectT) {
			resp, err := http.Get("http://localhost:8080/health")
			if !assert.NoError(t, err) {
				return
			}
			defer resp.Body.Close()

			assert.Less(t, resp.StatusCode, 300, "API not ready, http status: %d", resp.StatusCode)
		},
		time.Second*10,
		time.Millisecond*50,
	)
}
