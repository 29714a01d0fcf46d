package http

import (
	"context"
	"net/http"

	"fyyur/entities"
	"fyyur/showcase"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"github.com/labstack/echo/v4"
)

func (h Handler) GetHome(c echo.Context) error {
	ctx := c.Request().Context()

	page := homePage{}

	venueIDs, err := h.recentFeed.Venues(ctx)
	if err != nil {
		log.FromContext(ctx).WithError(err).Warn("Could not read recently listed venues")
	}
	page.RecentVenues, err = recentCounterparts(ctx, venueIDs, h.venueRepo.ByIDs)
	if err != nil {
		return err
	}

	artistIDs, err := h.recentFeed.Artists(ctx)
	if err != nil {
		log.FromContext(ctx).WithError(err).Warn("Could not read recently listed artists")
	}
	page.RecentArtists, err = recentCounterparts(ctx, artistIDs, h.artistRepo.ByIDs)
	if err != nil {
		return err
	}

	return c.Render(http.StatusOK, "pages/home.html", page)
}

// recentCounterparts loads ids in one query and keeps the feed order.
// Listings deleted since they were pushed are skipped.
func recentCounterparts(
	ctx context.Context,
	ids []int64,
	byIDs func(ctx context.Context, ids []int64) ([]entities.Counterpart, error),
) ([]entities.Counterpart, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	items, err := byIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	index := showcase.NewCounterparts(items)

	recent := make([]entities.Counterpart, 0, len(ids))
	for _, id := range ids {
		if item, ok := index[id]; ok {
			recent = append(recent, item)
		}
	}
	return recent, nil
}
