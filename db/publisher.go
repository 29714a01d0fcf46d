package db

import (
	"context"
	"fmt"

	"fyyur/entities"
	"fyyur/message/event"
	"fyyur/message/outbox"

	"github.com/jmoiron/sqlx"
)

// publishInTx stores the event in the outbox table within tx, so it is
// forwarded only if the transaction commits.
func publishInTx(ctx context.Context, tx *sqlx.Tx, evt entities.IEvent) error {
	outboxPublisher, err := outbox.NewPublisherForDb(ctx, tx)
	if err != nil {
		return fmt.Errorf("error creating event outbox publisher: %w", err)
	}

	if err := event.NewBus(outboxPublisher).Publish(ctx, evt); err != nil {
		return fmt.Errorf("could not publish event: %w", err)
	}

	return nil
}
