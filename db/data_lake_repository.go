package db

import (
	"context"
	"fmt"

	"fyyur/entities"
)

type EventRepository struct {
	db *DB
}

func NewEventRepository(db *DB) EventRepository {
	if db == nil {
		panic("db is nil")
	}
	return EventRepository{
		db: db,
	}
}

func (e EventRepository) Create(ctx context.Context, event entities.Event) error {
	_, err := e.db.Conn.ExecContext(ctx, `
		INSERT INTO
		    events (event_id, published_at, event_name, event_payload)
		VALUES
			 ($1, $2, $3, $4)
		ON CONFLICT (event_id) DO NOTHING;
`, event.EventID, event.PublishedAt, event.EventName, []byte(event.EventPayload))

	if err != nil {
		return fmt.Errorf("could not create event into db: %w", err)
	}

	return nil
}

func (e EventRepository) Latest(ctx context.Context, limit int) ([]entities.Event, error) {
	events := []entities.Event{}
	err := e.db.Conn.SelectContext(ctx, &events, `
		SELECT event_id, published_at, event_name, event_payload
		FROM events
		ORDER BY published_at DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("could not get events from data lake: %w", err)
	}

	return events, nil
}
