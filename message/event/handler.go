package event

import (
	"context"

	"fyyur/entities"
)

type DataLake interface {
	Create(ctx context.Context, event entities.Event) error
}

type RecentFeed interface {
	AddVenue(ctx context.Context, venueID int64) error
	AddArtist(ctx context.Context, artistID int64) error
	RemoveVenue(ctx context.Context, venueID int64) error
}

type Handler struct {
	dataLake   DataLake
	recentFeed RecentFeed
}

func NewHandler(dataLake DataLake, recentFeed RecentFeed) Handler {
	if dataLake == nil {
		panic("missing dataLake")
	}
	if recentFeed == nil {
		panic("missing recentFeed")
	}

	return Handler{
		dataLake:   dataLake,
		recentFeed: recentFeed,
	}
}
