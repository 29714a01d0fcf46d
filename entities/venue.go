package entities

import (
	"github.com/lib/pq"
)

const (
	DefaultImageLink               = "https://images.unsplash.com/photo-1543900694-133f37abaaa5?ixlib=rb-1.2.1&ixid=eyJhcHBfaWQiOjEyMDd9&auto=format&fit=crop&w=400&q=60"
	DefaultVenueSeekingDescription = "Not currently seeking for talents"
)

type Venue struct {
	ID                 int64          `json:"id" db:"id"`
	Name               string         `json:"name" db:"name"`
	City               string         `json:"city" db:"city"`
	State              string         `json:"state" db:"state"`
	Address            string         `json:"address" db:"address"`
	Phone              string         `json:"phone" db:"phone"`
	Genres             pq.StringArray `json:"genres" db:"genres"`
	ImageLink          string         `json:"image_link" db:"image_link"`
	FacebookLink       string         `json:"facebook_link" db:"facebook_link"`
	Website            string         `json:"website" db:"website"`
	SeekingTalent      bool           `json:"seeking_talent" db:"seeking_talent"`
	SeekingDescription string         `json:"seeking_description" db:"seeking_description"`
}

func (v Venue) Summary() Summary {
	return Summary{ID: v.ID, Name: v.Name}
}

func (v Venue) Counterpart() Counterpart {
	return Counterpart{ID: v.ID, Name: v.Name, ImageLink: v.ImageLink}
}

type VenueCreateResponse struct {
	VenueID int64 `json:"venue_id"`
}
