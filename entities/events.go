package entities

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type IEvent interface {
	IsInternal() bool
}

type EventHeader struct {
	ID             string    `json:"id"`
	PublishedAt    time.Time `json:"published_at"`
	IdempotencyKey string    `json:"idempotency_key"`
}

func NewEventHeader() EventHeader {
	return EventHeader{
		ID:             uuid.NewString(),
		PublishedAt:    time.Now().UTC(),
		IdempotencyKey: uuid.NewString(),
	}
}

type VenueCreated_v1 struct {
	Header EventHeader `json:"header"`

	VenueID int64  `json:"venue_id"`
	Name    string `json:"name"`
	City    string `json:"city"`
	State   string `json:"state"`
}

func (e VenueCreated_v1) IsInternal() bool { return false }

type VenueUpdated_v1 struct {
	Header EventHeader `json:"header"`

	VenueID int64  `json:"venue_id"`
	Name    string `json:"name"`
}

func (e VenueUpdated_v1) IsInternal() bool { return false }

type VenueDeleted_v1 struct {
	Header EventHeader `json:"header"`

	VenueID int64 `json:"venue_id"`
}

func (e VenueDeleted_v1) IsInternal() bool { return false }

type ArtistCreated_v1 struct {
	Header EventHeader `json:"header"`

	ArtistID int64  `json:"artist_id"`
	Name     string `json:"name"`
}

func (e ArtistCreated_v1) IsInternal() bool { return false }

type ArtistUpdated_v1 struct {
	Header EventHeader `json:"header"`

	ArtistID int64  `json:"artist_id"`
	Name     string `json:"name"`
}

func (e ArtistUpdated_v1) IsInternal() bool { return false }

type ShowScheduled_v1 struct {
	Header EventHeader `json:"header"`

	ShowID    int64     `json:"show_id"`
	VenueID   int64     `json:"venue_id"`
	ArtistID  int64     `json:"artist_id"`
	StartTime time.Time `json:"start_time"`
}

func (e ShowScheduled_v1) IsInternal() bool { return false }

// Event is a row of the data lake: every published event, as received.
type Event struct {
	EventID      string          `json:"event_id" db:"event_id"`
	PublishedAt  time.Time       `json:"published_at" db:"published_at"`
	EventName    string          `json:"event_name" db:"event_name"`
	EventPayload json.RawMessage `json:"event_payload" db:"event_payload"`
}
