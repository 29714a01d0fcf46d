package showcase

import (
	"time"

	"fyyur/entities"

	"github.com/goodsign/monday"
	"github.com/samber/lo"
)

// Role tells from which side a show is looked at.
type Role int

const (
	ViewingFromVenue Role = iota
	ViewingFromArtist
)

func (r Role) String() string {
	if r == ViewingFromArtist {
		return "viewing_from_artist"
	}
	return "viewing_from_venue"
}

func (r Role) ownerID(show entities.Show) int64 {
	if r == ViewingFromArtist {
		return show.ArtistID
	}
	return show.VenueID
}

func (r Role) counterpartID(show entities.Show) int64 {
	if r == ViewingFromArtist {
		return show.VenueID
	}
	return show.ArtistID
}

func (r Role) counterpartEntity() string {
	if r == ViewingFromArtist {
		return "venue"
	}
	return "artist"
}

// Counterparts indexes preloaded venues or artists by id.
type Counterparts map[int64]entities.Counterpart

func NewCounterparts(items []entities.Counterpart) Counterparts {
	return lo.Associate(items, func(c entities.Counterpart) (int64, entities.Counterpart) {
		return c.ID, c
	})
}

// CounterpartIDs returns the distinct ids shows point to from role, in
// first-seen order, so the caller can load them in one query.
func CounterpartIDs(shows []entities.Show, role Role) []int64 {
	return lo.Uniq(lo.Map(shows, func(show entities.Show, _ int) int64 {
		return role.counterpartID(show)
	}))
}

type Assembler struct {
	style  DateStyle
	locale monday.Locale
}

func NewAssembler(style DateStyle, locale monday.Locale) Assembler {
	return Assembler{
		style:  style,
		locale: locale,
	}
}

func (a Assembler) FormatTime(t time.Time) string {
	return FormatDateTime(t, a.style, a.locale)
}

func (a Assembler) Enrich(show entities.Show, role Role, counterparts Counterparts) (entities.ShowView, error) {
	id := role.counterpartID(show)

	counterpart, ok := counterparts[id]
	if !ok {
		return entities.ShowView{}, &entities.NotFoundError{Entity: role.counterpartEntity(), ID: id}
	}

	return entities.ShowView{
		CounterpartID:        counterpart.ID,
		CounterpartName:      counterpart.Name,
		CounterpartImageLink: counterpart.ImageLink,
		StartTime:            a.FormatTime(show.StartTime),
		StartsAt:             show.StartTime,
	}, nil
}

func (a Assembler) Breakdown(shows []entities.Show, role Role, counterparts Counterparts, now time.Time) (entities.ShowBreakdown, error) {
	past, upcoming := Classify(shows, now)

	pastViews, err := a.enrichAll(past, role, counterparts)
	if err != nil {
		return entities.ShowBreakdown{}, err
	}
	upcomingViews, err := a.enrichAll(upcoming, role, counterparts)
	if err != nil {
		return entities.ShowBreakdown{}, err
	}

	return entities.ShowBreakdown{
		PastShows:          pastViews,
		UpcomingShows:      upcomingViews,
		PastShowsCount:     len(pastViews),
		UpcomingShowsCount: len(upcomingViews),
	}, nil
}

func (a Assembler) enrichAll(shows []entities.Show, role Role, counterparts Counterparts) ([]entities.ShowView, error) {
	views := make([]entities.ShowView, 0, len(shows))
	for _, show := range shows {
		view, err := a.Enrich(show, role, counterparts)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

// Listing flattens shows into rows carrying both the venue and the artist.
func (a Assembler) Listing(shows []entities.Show, venues, artists Counterparts) ([]entities.ShowListing, error) {
	rows := make([]entities.ShowListing, 0, len(shows))

	for _, show := range shows {
		venue, ok := venues[show.VenueID]
		if !ok {
			return nil, &entities.NotFoundError{Entity: "venue", ID: show.VenueID}
		}
		artist, ok := artists[show.ArtistID]
		if !ok {
			return nil, &entities.NotFoundError{Entity: "artist", ID: show.ArtistID}
		}

		rows = append(rows, entities.ShowListing{
			ShowID:          show.ID,
			VenueID:         venue.ID,
			VenueName:       venue.Name,
			ArtistID:        artist.ID,
			ArtistName:      artist.Name,
			ArtistImageLink: artist.ImageLink,
			StartTime:       a.FormatTime(show.StartTime),
		})
	}

	return rows, nil
}
