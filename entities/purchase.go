package entities

import "strconv"

// AccountID identifies the purchasing account. Zero means no account was given.
type AccountID int64

func (id AccountID) Valid() bool {
	return id > 0
}

func (id AccountID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

type PurchaseSummary struct {
	AdultTickets  uint `json:"adult_tickets"`
	ChildTickets  uint `json:"child_tickets"`
	InfantTickets uint `json:"infant_tickets"`
	TotalTickets  uint `json:"total_tickets"`

	AmountToPay    uint `json:"amount_to_pay"`
	SeatsToReserve uint `json:"seats_to_reserve"`
}
