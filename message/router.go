package message

import (
	"fmt"

	"cinema-tickets/message/command"
	"cinema-tickets/message/event"
	"cinema-tickets/message/outbox"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/components/cqrs"
	"github.com/ThreeDotsLabs/watermill/message"
)

func NewWatermillRouter(
	pgSubscriber message.Subscriber,
	publisher message.Publisher,
	commandProcessorConfig cqrs.CommandProcessorConfig,
	eventProcessorConfig cqrs.EventProcessorConfig,
	commandHandler command.Handler,
	eventHandler event.Handler,
	watermillLogger watermill.LoggerAdapter,
) (*message.Router, error) {
	router, err := message.NewRouter(message.RouterConfig{}, watermillLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to create router: %w", err)
	}

	if err := useMiddlewares(router, publisher, watermillLogger); err != nil {
		return nil, err
	}

	if err := outbox.AddForwarderHandler(pgSubscriber, publisher, router, watermillLogger); err != nil {
		return nil, fmt.Errorf("failed to create forwarder: %w", err)
	}

	commandProcessor, err := cqrs.NewCommandProcessorWithConfig(router, commandProcessorConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create command processor: %w", err)
	}

	err = commandProcessor.AddHandlers(command.NewCommandHandlers(commandHandler)...)
	if err != nil {
		return nil, fmt.Errorf("failed to add command handlers: %w", err)
	}

	eventProcessor, err := cqrs.NewEventProcessorWithConfig(router, eventProcessorConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create event processor: %w", err)
	}

	err = eventProcessor.AddHandlers(event.NewEventHandlers(eventHandler)...)
	if err != nil {
		return nil, fmt.Errorf("failed to add event handlers: %w", err)
	}

	return router, nil
}
