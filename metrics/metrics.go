package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	PurchaseAccepted = "accepted"
	PurchaseRejected = "rejected"
	PurchaseFailed   = "failed"

	MessageSucceeded = "success"
	MessageFailed    = "error"
)

var (
	PurchasesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tickets",
			Name:      "purchases_total",
			Help:      "Ticket purchases by outcome.",
		},
		[]string{"status"},
	)

	TicketsRequestedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tickets",
			Name:      "requested_total",
			Help:      "Tickets requested in accepted purchases, by ticket type.",
		},
		[]string{"type"},
	)

	MessagesProcessedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tickets",
			Name:      "messages_processed_total",
			Help:      "Messages handled by the router, by handler and result.",
		},
		[]string{"handler", "status"},
	)
)
