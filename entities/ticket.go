package entities

import (
	"fmt"
	"strings"
)

type TicketType int

const (
	TicketTypeAdult TicketType = iota + 1
	TicketTypeChild
	TicketTypeInfant
)

var TicketTypes = []TicketType{
	TicketTypeAdult,
	TicketTypeChild,
	TicketTypeInfant,
}

func (t TicketType) String() string {
	switch t {
	case TicketTypeAdult:
		return "ADULT"
	case TicketTypeChild:
		return "CHILD"
	case TicketTypeInfant:
		return "INFANT"
	default:
		return fmt.Sprintf("TicketType(%d)", int(t))
	}
}

func (t TicketType) Valid() bool {
	return t >= TicketTypeAdult && t <= TicketTypeInfant
}

func (t TicketType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("unknown ticket type: %d", int(t))
	}

	return []byte(t.String()), nil
}

func (t *TicketType) UnmarshalText(text []byte) error {
	parsed, err := ParseTicketType(string(text))
	if err != nil {
		return err
	}

	*t = parsed
	return nil
}

func ParseTicketType(s string) (TicketType, error) {
	for _, t := range TicketTypes {
		if strings.EqualFold(strings.TrimSpace(s), t.String()) {
			return t, nil
		}
	}

	return 0, fmt.Errorf("unknown ticket type: %q", s)
}

// TicketTypeRequest asks for a number of tickets of a single type.
// It is immutable once built.
type TicketTypeRequest struct {
	ticketType  TicketType
	noOfTickets uint
}

func NewTicketTypeRequest(ticketType TicketType, noOfTickets uint) TicketTypeRequest {
	return TicketTypeRequest{
		ticketType:  ticketType,
		noOfTickets: noOfTickets,
	}
}

func (r TicketTypeRequest) Type() TicketType {
	return r.ticketType
}

func (r TicketTypeRequest) NoOfTickets() uint {
	return r.noOfTickets
}
