package message

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"cinema-tickets/entities"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T, handler message.NoPublishHandlerFunc) *gochannel.GoChannel {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	logger := watermill.NopLogger{}
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, logger)

	router, err := message.NewRouter(message.RouterConfig{}, logger)
	require.NoError(t, err)
	require.NoError(t, useMiddlewares(router, pubSub, logger))

	router.AddNoPublisherHandler("test_handler", "test_topic", pubSub, handler)

	go func() {
		assert.NoError(t, router.Run(ctx))
	}()
	<-router.Running()

	return pubSub
}

func TestMiddlewares_permanent_error_goes_to_poison_queue(t *testing.T) {
	var calls atomic.Int32
	pubSub := newTestRouter(t, func(msg *message.Message) error {
		calls.Add(1)
		return entities.GatewayRejectedError{Operation: "test", StatusCode: http.StatusBadRequest}
	})

	poisoned, err := pubSub.Subscribe(context.Background(), PoisonQueueTopic)
	require.NoError(t, err)

	msg := message.NewMessage(watermill.NewUUID(), []byte("{}"))
	require.NoError(t, pubSub.Publish("test_topic", msg))

	select {
	case received := <-poisoned:
		received.Ack()
		assert.Equal(t, msg.UUID, received.UUID)
	case <-time.After(5 * time.Second):
		t.Fatal("message was not poisoned")
	}

	assert.Equal(t, int32(1), calls.Load())
}

func TestMiddlewares_transient_error_is_retried(t *testing.T) {
	var calls atomic.Int32
	pubSub := newTestRouter(t, func(msg *message.Message) error {
		if calls.Add(1) < 3 {
			return errors.New("temporary failure")
		}
		return nil
	})

	require.NoError(t, pubSub.Publish("test_topic", message.NewMessage(watermill.NewUUID(), []byte("{}"))))

	assert.EventuallyWithT(t, func(t *assert.CollectT) {
		assert.Equal(t, int32(3), calls.Load())
	}, 5*time.Second, 50*time.Millisecond)
}

func TestMiddlewares_correlation_id(t *testing.T) {
	correlationIDs := make(chan string, 2)
	pubSub := newTestRouter(t, func(msg *message.Message) error {
		correlationIDs <- log.CorrelationIDFromContext(msg.Context())
		return nil
	})

	withID := message.NewMessage(watermill.NewUUID(), []byte("{}"))
	withID.Metadata.Set("correlation_id", "test-correlation-id")
	require.NoError(t, pubSub.Publish("test_topic", withID))

	select {
	case id := <-correlationIDs:
		assert.Equal(t, "test-correlation-id", id)
	case <-time.After(5 * time.Second):
		t.Fatal("message was not handled")
	}

	require.NoError(t, pubSub.Publish("test_topic", message.NewMessage(watermill.NewUUID(), []byte("{}"))))

	select {
	case id := <-correlationIDs:
		assert.Regexp(t, "^gen_", id)
	case <-time.After(5 * time.Second):
		t.Fatal("message was not handled")
	}
}
