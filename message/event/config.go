package event

import (
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-redisstream/pkg/redisstream"
	"github.com/ThreeDotsLabs/watermill/components/cqrs"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/redis/go-redis/v9"
)

var marshaler = cqrs.JSONMarshaler{
	GenerateName: cqrs.StructName,
}

func eventTopic(eventName string) string {
	return "events." + eventName
}

func NewProcessorConfig(redisClient *redis.Client, watermillLogger watermill.LoggerAdapter) cqrs.EventProcessorConfig {
	return newProcessorConfig(
		func(params cqrs.EventProcessorSubscriberConstructorParams) (message.Subscriber, error) {
			return redisstream.NewSubscriber(redisstream.SubscriberConfig{
				Client:        redisClient,
				ConsumerGroup: "svc-tickets.events." + params.HandlerName,
			}, watermillLogger)
		},
		watermillLogger,
	)
}

func newProcessorConfig(
	subscriberConstructor cqrs.EventProcessorSubscriberConstructorFn,
	watermillLogger watermill.LoggerAdapter,
) cqrs.EventProcessorConfig {
	return cqrs.EventProcessorConfig{
		GenerateSubscribeTopic: func(params cqrs.EventProcessorGenerateSubscribeTopicParams) (string, error) {
			return eventTopic(params.EventName), nil
		},
		SubscriberConstructor: subscriberConstructor,
		Marshaler:             marshaler,
		Logger:                watermillLogger,
	}
}

func NewEventHandlers(h Handler) []cqrs.EventHandler {
	return []cqrs.EventHandler{
		cqrs.NewEventHandler(
			"AppendPaymentToTracker",
			h.AppendPaymentToTracker,
		),
		cqrs.NewEventHandler(
			"AppendReservationToTracker",
			h.AppendReservationToTracker,
		),
	}
}
