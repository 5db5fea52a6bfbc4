package entities

import "github.com/google/uuid"

type SeatReservationRequest struct {
	ReservationID   uuid.UUID
	VenueEventID    uuid.UUID
	CustomerAddress string
	NumberOfSeats   int
}
