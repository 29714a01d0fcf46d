package http

import (
	"context"
	"time"

	"fyyur/entities"
	"fyyur/showcase"
)

type Handler struct {
	venueRepo  VenueRepository
	artistRepo ArtistRepository
	showRepo   ShowRepository
	eventRepo  EventRepository
	recentFeed RecentFeed
	assembler  showcase.Assembler
	now        func() time.Time
}

type VenueRepository interface {
	Create(ctx context.Context, venue entities.Venue) (entities.VenueCreateResponse, error)
	Update(ctx context.Context, venue entities.Venue) error
	Delete(ctx context.Context, venueID int64) error
	ByID(ctx context.Context, venueID int64) (entities.Venue, error)
	ByIDs(ctx context.Context, venueIDs []int64) ([]entities.Counterpart, error)
	All(ctx context.Context) ([]entities.Venue, error)
	Summaries(ctx context.Context) ([]entities.Summary, error)
}

type ArtistRepository interface {
	Create(ctx context.Context, artist entities.Artist) (entities.ArtistCreateResponse, error)
	Update(ctx context.Context, artist entities.Artist) error
	ByID(ctx context.Context, artistID int64) (entities.Artist, error)
	ByIDs(ctx context.Context, artistIDs []int64) ([]entities.Counterpart, error)
	Summaries(ctx context.Context) ([]entities.Summary, error)
}

type ShowRepository interface {
	Create(ctx context.Context, show entities.Show) (entities.ShowCreateResponse, error)
	All(ctx context.Context) ([]entities.Show, error)
	ForVenue(ctx context.Context, venueID int64) ([]entities.Show, error)
	ForArtist(ctx context.Context, artistID int64) ([]entities.Show, error)
}

type EventRepository interface {
	Latest(ctx context.Context, limit int) ([]entities.Event, error)
}

type RecentFeed interface {
	Venues(ctx context.Context) ([]int64, error)
	Artists(ctx context.Context) ([]int64, error)
}
