package showcase

import (
	"testing"
	"time"

	"fyyur/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAreas_groups_by_state(t *testing.T) {
	venues := []entities.Venue{
		{ID: 1, Name: "The Musical Hop", City: "San Francisco", State: "CA"},
		{ID: 2, Name: "The Dueling Pianos Bar", City: "New York", State: "NY"},
		{ID: 3, Name: "Park Square Live Music & Coffee", City: "San Francisco", State: "CA"},
	}
	shows := []entities.Show{
		{ID: 1, VenueID: 1, ArtistID: 4, StartTime: now.Add(time.Hour)},
		{ID: 2, VenueID: 3, ArtistID: 5, StartTime: now.Add(-time.Hour)},
		{ID: 3, VenueID: 3, ArtistID: 6, StartTime: now.Add(time.Hour)},
		{ID: 4, VenueID: 3, ArtistID: 6, StartTime: now.Add(2 * time.Hour)},
	}

	areas := Areas(venues, shows, now)

	require.Len(t, areas, 2)
	assert.Equal(t, entities.Area{
		City:  "San Francisco",
		State: "CA",
		Venues: []entities.SummaryWithShows{
			{ID: 1, Name: "The Musical Hop", NumUpcomingShows: 1},
			{ID: 3, Name: "Park Square Live Music & Coffee", NumUpcomingShows: 2},
		},
	}, areas[0])
	assert.Equal(t, "NY", areas[1].State)
	assert.Equal(t, []entities.SummaryWithShows{{ID: 2, Name: "The Dueling Pianos Bar"}}, areas[1].Venues)
}

func TestAreas_empty(t *testing.T) {
	assert.Empty(t, Areas(nil, nil, now))
}

func TestSearch(t *testing.T) {
	artists := []entities.Summary{
		{ID: 4, Name: "Guns N Petals"},
		{ID: 5, Name: "Matt Quevedo"},
		{ID: 6, Name: "The Wild Sax Band"},
	}

	testCases := []struct {
		term     string
		expected []string
	}{
		{term: "band", expected: []string{"The Wild Sax Band"}},
		{term: "BAND", expected: []string{"The Wild Sax Band"}},
		{term: "A", expected: []string{"Guns N Petals", "Matt Quevedo", "The Wild Sax Band"}},
		{term: "zzz", expected: []string{}},
		{term: "", expected: []string{"Guns N Petals", "Matt Quevedo", "The Wild Sax Band"}},
	}

	for _, tc := range testCases {
		t.Run(tc.term, func(t *testing.T) {
			names := []string{}
			for _, item := range Search(artists, tc.term) {
				names = append(names, item.Name)
			}
			assert.Equal(t, tc.expected, names)
		})
	}
}

func TestSearchResult(t *testing.T) {
	venues := []entities.Summary{
		{ID: 1, Name: "The Musical Hop"},
		{ID: 2, Name: "The Dueling Pianos Bar"},
		{ID: 3, Name: "Park Square Live Music & Coffee"},
	}
	shows := []entities.Show{
		{ID: 1, VenueID: 3, ArtistID: 4, StartTime: now.Add(time.Hour)},
		{ID: 2, VenueID: 1, ArtistID: 4, StartTime: now.Add(-time.Hour)},
	}

	result := SearchResult(venues, "Music", shows, ViewingFromVenue, now)

	assert.Equal(t, entities.SearchResult{
		Count: 2,
		Data: []entities.SummaryWithShows{
			{ID: 1, Name: "The Musical Hop", NumUpcomingShows: 0},
			{ID: 3, Name: "Park Square Live Music & Coffee", NumUpcomingShows: 1},
		},
	}, result)
}
