package event

import (
	"context"

	"fyyur/entities"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
)

func (h Handler) AddVenueToRecent(ctx context.Context, event *entities.VenueCreated_v1) error {
	log.FromContext(ctx).WithField("venue_id", event.VenueID).Info("Adding venue to recent listings")

	return h.recentFeed.AddVenue(ctx, event.VenueID)
}

func (h Handler) AddArtistToRecent(ctx context.Context, event *entities.ArtistCreated_v1) error {
	log.FromContext(ctx).WithField("artist_id", event.ArtistID).Info("Adding artist to recent listings")

	return h.recentFeed.AddArtist(ctx, event.ArtistID)
}

func (h Handler) RemoveVenueFromRecent(ctx context.Context, event *entities.VenueDeleted_v1) error {
	log.FromContext(ctx).WithField("venue_id", event.VenueID).Info("Removing venue from recent listings")

	return h.recentFeed.RemoveVenue(ctx, event.VenueID)
}
