package outbox

import (
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-sql/v2/pkg/sql"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/jmoiron/sqlx"
)

const topic = "events_to_forward"

func newSubscriber(db *sqlx.DB, logger watermill.LoggerAdapter) (*sql.Subscriber, error) {
	return sql.NewSubscriber(db, sql.SubscriberConfig{
		SchemaAdapter:  sql.DefaultPostgreSQLSchema{},
		OffsetsAdapter: sql.DefaultPostgreSQLOffsetsAdapter{},
	}, logger)
}

func SubscribeForPGMessages(db *sqlx.DB, logger watermill.LoggerAdapter) (message.Subscriber, error) {
	sub, err := newSubscriber(db, logger)
	if err != nil {
		return nil, fmt.Errorf("could not create outbox subscriber: %w", err)
	}
	if err := sub.SubscribeInitialize(topic); err != nil {
		return nil, fmt.Errorf("could not initialize outbox topic: %w", err)
	}

	return sub, nil
}

// InitializeSchema creates the outbox tables, which must exist before the
// first event is published inside a transaction.
func InitializeSchema(db *sqlx.DB, logger watermill.LoggerAdapter) error {
	sub, err := SubscribeForPGMessages(db, logger)
	if err != nil {
		return err
	}

	return sub.Close()
}
