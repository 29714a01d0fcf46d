package migrations_test

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"fyyur/entities"
	"fyyur/migrations"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type repositoryMock struct {
	nextID  int64
	venues  []entities.Venue
	artists []entities.Artist
	shows   []entities.Show
}

func (r *repositoryMock) id() int64 {
	r.nextID++
	return r.nextID
}

type venueRepoMock struct{ *repositoryMock }

func (r venueRepoMock) Create(ctx context.Context, venue entities.Venue) (entities.VenueCreateResponse, error) {
	venue.ID = r.id()
	r.venues = append(r.venues, venue)
	return entities.VenueCreateResponse{VenueID: venue.ID}, nil
}

type artistRepoMock struct{ *repositoryMock }

func (r artistRepoMock) Create(ctx context.Context, artist entities.Artist) (entities.ArtistCreateResponse, error) {
	artist.ID = r.id()
	r.artists = append(r.artists, artist)
	return entities.ArtistCreateResponse{ArtistID: artist.ID}, nil
}

type showRepoMock struct{ *repositoryMock }

func (r showRepoMock) Create(ctx context.Context, show entities.Show) (entities.ShowCreateResponse, error) {
	show.ID = r.id()
	r.shows = append(r.shows, show)
	return entities.ShowCreateResponse{ShowID: show.ID}, nil
}

func TestSeed_default_fixture(t *testing.T) {
	fixture, err := migrations.ParseFixture(bytes.NewReader(migrations.DefaultFixture))
	require.NoError(t, err)

	repo := &repositoryMock{}
	err = migrations.Seed(context.Background(), fixture, venueRepoMock{repo}, artistRepoMock{repo}, showRepoMock{repo})
	require.NoError(t, err)

	require.Len(t, repo.venues, 3)
	require.Len(t, repo.artists, 3)
	require.Len(t, repo.shows, 5)

	musicalHop := repo.venues[0]
	assert.Equal(t, "The Musical Hop", musicalHop.Name)
	assert.True(t, musicalHop.SeekingTalent)

	duelingPianos := repo.venues[1]
	assert.Equal(t, entities.DefaultVenueSeekingDescription, duelingPianos.SeekingDescription)

	wildSax := repo.artists[2]
	assert.Equal(t, "The Wild Sax Band", wildSax.Name)
	assert.Equal(t, entities.DefaultArtistSeekingDescription, wildSax.SeekingDescription)

	first := repo.shows[0]
	assert.Equal(t, musicalHop.ID, first.VenueID)
	assert.Equal(t, repo.artists[0].ID, first.ArtistID)
	assert.Equal(t, time.Date(2019, 5, 21, 21, 30, 0, 0, time.UTC), first.StartTime)
}

func TestParseFixture_invalid(t *testing.T) {
	testCases := []struct {
		Name string
		YAML string
	}{
		{
			Name: "unknown_venue",
			YAML: `
artists:
  - key: a
    name: A
shows:
  - venue: missing
    artist: a
    start_time: 2035-01-01T20:00:00Z
`,
		},
		{
			Name: "duplicate_key",
			YAML: `
venues:
  - key: v
    name: V
  - key: v
    name: W
`,
		},
		{
			Name: "unknown_field",
			YAML: `
venues:
  - key: v
    name: V
    capacity: 200
`,
		},
		{
			Name: "missing_start_time",
			YAML: `
venues:
  - key: v
    name: V
artists:
  - key: a
    name: A
shows:
  - venue: v
    artist: a
`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			_, err := migrations.ParseFixture(strings.NewReader(tc.YAML))
			assert.Error(t, err)
		})
	}
}
