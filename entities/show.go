package entities

import (
	"time"
)

// Show joins exactly one venue and one artist at a start time. Shows are
// never updated once created.
type Show struct {
	ID        int64     `json:"id" db:"id"`
	StartTime time.Time `json:"start_time" db:"start_time"`
	VenueID   int64     `json:"venue_id" db:"venue_id"`
	ArtistID  int64     `json:"artist_id" db:"artist_id"`
}

type ShowCreateResponse struct {
	ShowID int64 `json:"show_id"`
}

// Counterpart is the display data of the other side of a show: the artist
// when looking from a venue, the venue when looking from an artist.
type Counterpart struct {
	ID        int64  `json:"id" db:"id"`
	Name      string `json:"name" db:"name"`
	ImageLink string `json:"image_link" db:"image_link"`
}

// ShowView is a show enriched for display from one side.
type ShowView struct {
	CounterpartID        int64     `json:"counterpart_id"`
	CounterpartName      string    `json:"counterpart_name"`
	CounterpartImageLink string    `json:"counterpart_image_link"`
	StartTime            string    `json:"start_time"`
	StartsAt             time.Time `json:"starts_at"`
}

type ShowBreakdown struct {
	PastShows          []ShowView `json:"past_shows"`
	UpcomingShows      []ShowView `json:"upcoming_shows"`
	PastShowsCount     int        `json:"past_shows_count"`
	UpcomingShowsCount int        `json:"upcoming_shows_count"`
}

// ShowListing is a row of the all-shows page.
type ShowListing struct {
	ShowID          int64  `json:"show_id"`
	VenueID         int64  `json:"venue_id"`
	VenueName       string `json:"venue_name"`
	ArtistID        int64  `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

// Summary is the id and name of a venue or an artist, used by listings and
// search.
type Summary struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

type SummaryWithShows struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

type SearchResult struct {
	Count int                `json:"count"`
	Data  []SummaryWithShows `json:"data"`
}

// Area groups the venues of one state.
type Area struct {
	City   string             `json:"city"`
	State  string             `json:"state"`
	Venues []SummaryWithShows `json:"venues"`
}
