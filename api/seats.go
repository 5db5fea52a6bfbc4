package api

import (
	"context"
	"fmt"
	"net/http"

	"cinema-tickets/entities"

	"github.com/ThreeDotsLabs/go-event-driven/common/clients"
	"github.com/ThreeDotsLabs/go-event-driven/common/clients/dead_nation"
)

type SeatReservationServiceClient struct {
	clients *clients.Clients
}

func NewSeatReservationServiceClient(clients *clients.Clients) *SeatReservationServiceClient {
	if clients == nil {
		panic("NewSeatReservationServiceClient: clients is nil")
	}

	return &SeatReservationServiceClient{clients: clients}
}

func (c SeatReservationServiceClient) ReserveSeats(ctx context.Context, request entities.SeatReservationRequest) error {
	resp, err := c.clients.DeadNation.PostTicketBookingWithResponse(
		ctx,
		dead_nation.PostTicketBookingRequest{
			BookingId:       request.ReservationID,
			CustomerAddress: request.CustomerAddress,
			EventId:         request.VenueEventID,
			NumberOfTickets: request.NumberOfSeats,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to reserve seats: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		return entities.GatewayRejectedError{
			Operation:  "POST dead-nation-api/ticket-booking",
			StatusCode: resp.StatusCode(),
		}
	}

	return nil
}
