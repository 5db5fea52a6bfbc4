package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ThreeDotsLabs/go-event-driven/common/clients"
	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func NewGatewayClients(gatewayAddr string) (*clients.Clients, error) {
	traceHttpClient := &http.Client{Transport: otelhttp.NewTransport(
		http.DefaultTransport,
		otelhttp.WithSpanNameFormatter(func(operation string, r *http.Request) string {
			return fmt.Sprintf("HTTP %s %s %s", r.Method, r.URL.String(), operation)
		}),
	)}

	c, err := clients.NewClientsWithHttpClient(
		gatewayAddr,
		func(ctx context.Context, req *http.Request) error {
			req.Header.Set("Correlation-ID", log.CorrelationIDFromContext(ctx))
			return nil
		},
		traceHttpClient,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create gateway clients: %w", err)
	}

	return c, nil
}
