package outbox

import (
	"context"
	"errors"
	"fmt"

	"cinema-tickets/message/command"

	"github.com/jmoiron/sqlx"
)

// CommandBus stores commands in the outbox table. A command is durable once Send
// returns, and the forwarder moves it to the command topics later.
type CommandBus struct {
	db *sqlx.DB
}

func NewCommandBus(db *sqlx.DB) CommandBus {
	if db == nil {
		panic("db is nil")
	}

	return CommandBus{db: db}
}

func (b CommandBus) Send(ctx context.Context, cmd any) (err error) {
	tx, err := b.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				err = errors.Join(err, rollbackErr)
			}
		}
	}()

	publisher, err := NewPublisherForDb(ctx, tx)
	if err != nil {
		return err
	}

	err = command.NewCommandBus(publisher).Send(ctx, cmd)
	if err != nil {
		return fmt.Errorf("could not store command in outbox: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("could not commit outbox transaction: %w", err)
	}

	return nil
}
