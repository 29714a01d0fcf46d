package http_test

import (
	"context"
	"sort"
	"sync"

	"fyyur/entities"
)

// memoryStore backs the repository mocks with the foreign keys of the real
// schema.
type memoryStore struct {
	lock    sync.Mutex
	venues  map[int64]entities.Venue
	artists map[int64]entities.Artist
	shows   []entities.Show
	events  []entities.Event
	nextID  int64
	recent  map[string][]int64
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		venues:  map[int64]entities.Venue{},
		artists: map[int64]entities.Artist{},
		recent:  map[string][]int64{},
	}
}

func (s *memoryStore) id() int64 {
	s.nextID++
	return s.nextID
}

type venueRepoMock struct{ s *memoryStore }

func (r venueRepoMock) Create(ctx context.Context, venue entities.Venue) (entities.VenueCreateResponse, error) {
	r.s.lock.Lock()
	defer r.s.lock.Unlock()

	venue.ID = r.s.id()
	r.s.venues[venue.ID] = venue
	return entities.VenueCreateResponse{VenueID: venue.ID}, nil
}

func (r venueRepoMock) Update(ctx context.Context, venue entities.Venue) error {
	r.s.lock.Lock()
	defer r.s.lock.Unlock()

	if _, ok := r.s.venues[venue.ID]; !ok {
		return &entities.NotFoundError{Entity: "venue", ID: venue.ID}
	}
	r.s.venues[venue.ID] = venue
	return nil
}

func (r venueRepoMock) Delete(ctx context.Context, venueID int64) error {
	r.s.lock.Lock()
	defer r.s.lock.Unlock()

	if _, ok := r.s.venues[venueID]; !ok {
		return &entities.NotFoundError{Entity: "venue", ID: venueID}
	}
	for _, show := range r.s.shows {
		if show.VenueID == venueID {
			return &entities.ConflictError{Reason: "venue still has shows"}
		}
	}
	delete(r.s.venues, venueID)
	return nil
}

func (r venueRepoMock) ByID(ctx context.Context, venueID int64) (entities.Venue, error) {
	r.s.lock.Lock()
	defer r.s.lock.Unlock()

	venue, ok := r.s.venues[venueID]
	if !ok {
		return entities.Venue{}, &entities.NotFoundError{Entity: "venue", ID: venueID}
	}
	return venue, nil
}

func (r venueRepoMock) ByIDs(ctx context.Context, venueIDs []int64) ([]entities.Counterpart, error) {
	r.s.lock.Lock()
	defer r.s.lock.Unlock()

	var items []entities.Counterpart
	for _, id := range venueIDs {
		if venue, ok := r.s.venues[id]; ok {
			items = append(items, venue.Counterpart())
		}
	}
	return items, nil
}

func (r venueRepoMock) All(ctx context.Context) ([]entities.Venue, error) {
	r.s.lock.Lock()
	defer r.s.lock.Unlock()

	venues := make([]entities.Venue, 0, len(r.s.venues))
	for _, venue := range r.s.venues {
		venues = append(venues, venue)
	}
	sort.Slice(venues, func(i, j int) bool { return venues[i].ID < venues[j].ID })
	return venues, nil
}

func (r venueRepoMock) Summaries(ctx context.Context) ([]entities.Summary, error) {
	venues, _ := r.All(ctx)

	summaries := make([]entities.Summary, 0, len(venues))
	for _, venue := range venues {
		summaries = append(summaries, venue.Summary())
	}
	return summaries, nil
}

type artistRepoMock struct{ s *memoryStore }

func (r artistRepoMock) Create(ctx context.Context, artist entities.Artist) (entities.ArtistCreateResponse, error) {
	r.s.lock.Lock()
	defer r.s.lock.Unlock()

	artist.ID = r.s.id()
	r.s.artists[artist.ID] = artist
	return entities.ArtistCreateResponse{ArtistID: artist.ID}, nil
}

func (r artistRepoMock) Update(ctx context.Context, artist entities.Artist) error {
	r.s.lock.Lock()
	defer r.s.lock.Unlock()

	if _, ok := r.s.artists[artist.ID]; !ok {
		return &entities.NotFoundError{Entity: "artist", ID: artist.ID}
	}
	r.s.artists[artist.ID] = artist
	return nil
}

func (r artistRepoMock) ByID(ctx context.Context, artistID int64) (entities.Artist, error) {
	r.s.lock.Lock()
	defer r.s.lock.Unlock()

	artist, ok := r.s.artists[artistID]
	if !ok {
		return entities.Artist{}, &entities.NotFoundError{Entity: "artist", ID: artistID}
	}
	return artist, nil
}

func (r artistRepoMock) ByIDs(ctx context.Context, artistIDs []int64) ([]entities.Counterpart, error) {
	r.s.lock.Lock()
	defer r.s.lock.Unlock()

	var items []entities.Counterpart
	for _, id := range artistIDs {
		if artist, ok := r.s.artists[id]; ok {
			items = append(items, artist.Counterpart())
		}
	}
	return items, nil
}

func (r artistRepoMock) Summaries(ctx context.Context) ([]entities.Summary, error) {
	r.s.lock.Lock()
	defer r.s.lock.Unlock()

	summaries := make([]entities.Summary, 0, len(r.s.artists))
	for _, artist := range r.s.artists {
		summaries = append(summaries, artist.Summary())
	}
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].ID < summaries[j].ID })
	return summaries, nil
}

type showRepoMock struct{ s *memoryStore }

func (r showRepoMock) Create(ctx context.Context, show entities.Show) (entities.ShowCreateResponse, error) {
	r.s.lock.Lock()
	defer r.s.lock.Unlock()

	verr := &entities.ValidationError{}
	if _, ok := r.s.venues[show.VenueID]; !ok {
		verr.Add("venue_id", "Venue does not exist.")
	}
	if _, ok := r.s.artists[show.ArtistID]; !ok {
		verr.Add("artist_id", "Artist does not exist.")
	}
	if err := verr.OrNil(); err != nil {
		return entities.ShowCreateResponse{}, err
	}

	show.ID = r.s.id()
	r.s.shows = append(r.s.shows, show)
	return entities.ShowCreateResponse{ShowID: show.ID}, nil
}

func (r showRepoMock) All(ctx context.Context) ([]entities.Show, error) {
	return r.filter(func(entities.Show) bool { return true }), nil
}

func (r showRepoMock) ForVenue(ctx context.Context, venueID int64) ([]entities.Show, error) {
	return r.filter(func(s entities.Show) bool { return s.VenueID == venueID }), nil
}

func (r showRepoMock) ForArtist(ctx context.Context, artistID int64) ([]entities.Show, error) {
	return r.filter(func(s entities.Show) bool { return s.ArtistID == artistID }), nil
}

func (r showRepoMock) filter(keep func(entities.Show) bool) []entities.Show {
	r.s.lock.Lock()
	defer r.s.lock.Unlock()

	shows := []entities.Show{}
	for _, show := range r.s.shows {
		if keep(show) {
			shows = append(shows, show)
		}
	}
	return shows
}

type eventRepoMock struct{ s *memoryStore }

func (r eventRepoMock) Latest(ctx context.Context, limit int) ([]entities.Event, error) {
	r.s.lock.Lock()
	defer r.s.lock.Unlock()

	return r.s.events[:min(limit, len(r.s.events))], nil
}

type recentFeedMock struct{ s *memoryStore }

func (r recentFeedMock) Venues(ctx context.Context) ([]int64, error) {
	r.s.lock.Lock()
	defer r.s.lock.Unlock()

	return r.s.recent["venues"], nil
}

func (r recentFeedMock) Artists(ctx context.Context) ([]int64, error) {
	r.s.lock.Lock()
	defer r.s.lock.Unlock()

	return r.s.recent["artists"], nil
}
