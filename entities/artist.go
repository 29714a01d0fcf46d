package entities

import (
	"github.com/lib/pq"
)

const DefaultArtistSeekingDescription = "Looking for shows to perform at any place in USA!"

type Artist struct {
	ID                 int64          `json:"id" db:"id"`
	Name               string         `json:"name" db:"name"`
	City               string         `json:"city" db:"city"`
	State              string         `json:"state" db:"state"`
	Phone              string         `json:"phone" db:"phone"`
	Genres             pq.StringArray `json:"genres" db:"genres"`
	ImageLink          string         `json:"image_link" db:"image_link"`
	FacebookLink       string         `json:"facebook_link" db:"facebook_link"`
	Website            string         `json:"website" db:"website"`
	SeekingVenue       bool           `json:"seeking_venue" db:"seeking_venue"`
	SeekingDescription string         `json:"seeking_description" db:"seeking_description"`
}

func (a Artist) Summary() Summary {
	return Summary{ID: a.ID, Name: a.Name}
}

func (a Artist) Counterpart() Counterpart {
	return Counterpart{ID: a.ID, Name: a.Name, ImageLink: a.ImageLink}
}

type ArtistCreateResponse struct {
	ArtistID int64 `json:"artist_id"`
}
