package command

import (
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-redisstream/pkg/redisstream"
	"github.com/ThreeDotsLabs/watermill/components/cqrs"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/redis/go-redis/v9"
)

const consumerGroupPrefix = "svc-tickets.commands."

var marshaler = cqrs.JSONMarshaler{
	GenerateName: cqrs.StructName,
}

func commandTopic(commandName string) string {
	return fmt.Sprintf("commands.%s", commandName)
}

func NewCommandProcessorConfig(redisClient *redis.Client, watermillLogger watermill.LoggerAdapter) cqrs.CommandProcessorConfig {
	return newCommandProcessorConfig(
		func(params cqrs.CommandProcessorSubscriberConstructorParams) (message.Subscriber, error) {
			return redisstream.NewSubscriber(
				redisstream.SubscriberConfig{
					Client:        redisClient,
					ConsumerGroup: consumerGroupPrefix + params.HandlerName,
				},
				watermillLogger,
			)
		},
		watermillLogger,
	)
}

func newCommandProcessorConfig(
	subscriberConstructor cqrs.CommandProcessorSubscriberConstructorFn,
	watermillLogger watermill.LoggerAdapter,
) cqrs.CommandProcessorConfig {
	return cqrs.CommandProcessorConfig{
		GenerateSubscribeTopic: func(params cqrs.CommandProcessorGenerateSubscribeTopicParams) (string, error) {
			return commandTopic(params.CommandName), nil
		},
		SubscriberConstructor: subscriberConstructor,
		Marshaler:             marshaler,
		Logger:                watermillLogger,
	}
}

// NewCommandHandlers lists the handlers the command processor registers. Handler names
// end up in consumer group names, so renaming one starts a fresh group.
func NewCommandHandlers(h Handler) []cqrs.CommandHandler {
	return []cqrs.CommandHandler{
		cqrs.NewCommandHandler(
			"MakePayment",
			h.MakePayment,
		),
		cqrs.NewCommandHandler(
			"ReserveSeats",
			h.ReserveSeats,
		),
	}
}
