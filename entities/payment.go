package entities

import "time"

const PaymentCurrency = "GBP"

type Money struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

type ChargeRequest struct {
	IdempotencyKey string
	Reference      string
	AccountID      AccountID
	Price          Money
}

type ChargeResponse struct {
	ReceiptNumber string    `json:"number"`
	IssuedAt      time.Time `json:"issued_at"`
}
