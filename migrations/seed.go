package migrations

import (
	"context"
	_ "embed"
	"fmt"
	"io"
	"time"

	"fyyur/entities"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

//go:embed fixtures/fyyur.yaml
var DefaultFixture []byte

type VenueRepository interface {
	Create(ctx context.Context, venue entities.Venue) (entities.VenueCreateResponse, error)
}

type ArtistRepository interface {
	Create(ctx context.Context, artist entities.Artist) (entities.ArtistCreateResponse, error)
}

type ShowRepository interface {
	Create(ctx context.Context, show entities.Show) (entities.ShowCreateResponse, error)
}

// Fixture references venues and artists from shows by key, since ids are
// assigned by the database.
type Fixture struct {
	Venues  []venueFixture  `yaml:"venues"`
	Artists []artistFixture `yaml:"artists"`
	Shows   []showFixture   `yaml:"shows"`
}

type venueFixture struct {
	Key                string   `yaml:"key"`
	Name               string   `yaml:"name"`
	City               string   `yaml:"city"`
	State              string   `yaml:"state"`
	Address            string   `yaml:"address"`
	Phone              string   `yaml:"phone"`
	Genres             []string `yaml:"genres"`
	ImageLink          string   `yaml:"image_link"`
	FacebookLink       string   `yaml:"facebook_link"`
	Website            string   `yaml:"website"`
	SeekingTalent      bool     `yaml:"seeking_talent"`
	SeekingDescription string   `yaml:"seeking_description"`
}

type artistFixture struct {
	Key                string   `yaml:"key"`
	Name               string   `yaml:"name"`
	City               string   `yaml:"city"`
	State              string   `yaml:"state"`
	Phone              string   `yaml:"phone"`
	Genres             []string `yaml:"genres"`
	ImageLink          string   `yaml:"image_link"`
	FacebookLink       string   `yaml:"facebook_link"`
	Website            string   `yaml:"website"`
	SeekingVenue       bool     `yaml:"seeking_venue"`
	SeekingDescription string   `yaml:"seeking_description"`
}

type showFixture struct {
	Venue     string    `yaml:"venue"`
	Artist    string    `yaml:"artist"`
	StartTime time.Time `yaml:"start_time"`
}

func ParseFixture(r io.Reader) (Fixture, error) {
	var fixture Fixture

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&fixture); err != nil {
		return Fixture{}, fmt.Errorf("could not decode fixture: %w", err)
	}

	return fixture, fixture.validate()
}

func (f Fixture) validate() error {
	venues := map[string]bool{}
	for _, v := range f.Venues {
		if v.Key == "" || v.Name == "" {
			return fmt.Errorf("venue fixture needs a key and a name: %+v", v)
		}
		if venues[v.Key] {
			return fmt.Errorf("duplicate venue key %q", v.Key)
		}
		venues[v.Key] = true
	}

	artists := map[string]bool{}
	for _, a := range f.Artists {
		if a.Key == "" || a.Name == "" {
			return fmt.Errorf("artist fixture needs a key and a name: %+v", a)
		}
		if artists[a.Key] {
			return fmt.Errorf("duplicate artist key %q", a.Key)
		}
		artists[a.Key] = true
	}

	for _, s := range f.Shows {
		if !venues[s.Venue] {
			return fmt.Errorf("show references unknown venue %q", s.Venue)
		}
		if !artists[s.Artist] {
			return fmt.Errorf("show references unknown artist %q", s.Artist)
		}
		if s.StartTime.IsZero() {
			return fmt.Errorf("show of %q at %q has no start_time", s.Artist, s.Venue)
		}
	}

	return nil
}

// Seed creates the fixture through the repositories, so every record is
// announced with its domain event like one created from the site.
func Seed(ctx context.Context, fixture Fixture, venueRepo VenueRepository, artistRepo ArtistRepository, showRepo ShowRepository) error {
	logger := log.FromContext(ctx)

	venueIDs := map[string]int64{}
	for _, v := range fixture.Venues {
		resp, err := venueRepo.Create(ctx, v.venue())
		if err != nil {
			return fmt.Errorf("could not seed venue %q: %w", v.Key, err)
		}
		venueIDs[v.Key] = resp.VenueID
	}

	artistIDs := map[string]int64{}
	for _, a := range fixture.Artists {
		resp, err := artistRepo.Create(ctx, a.artist())
		if err != nil {
			return fmt.Errorf("could not seed artist %q: %w", a.Key, err)
		}
		artistIDs[a.Key] = resp.ArtistID
	}

	for _, s := range fixture.Shows {
		_, err := showRepo.Create(ctx, entities.Show{
			VenueID:   venueIDs[s.Venue],
			ArtistID:  artistIDs[s.Artist],
			StartTime: s.StartTime.UTC(),
		})
		if err != nil {
			return fmt.Errorf("could not seed show of %q at %q: %w", s.Artist, s.Venue, err)
		}
	}

	logger.WithFields(logrus.Fields{
		"venues":  len(fixture.Venues),
		"artists": len(fixture.Artists),
		"shows":   len(fixture.Shows),
	}).Info("Seeded sample data")

	return nil
}

func (v venueFixture) venue() entities.Venue {
	venue := entities.Venue{
		Name:               v.Name,
		City:               v.City,
		State:              v.State,
		Address:            v.Address,
		Phone:              v.Phone,
		Genres:             v.Genres,
		ImageLink:          v.ImageLink,
		FacebookLink:       v.FacebookLink,
		Website:            v.Website,
		SeekingTalent:      v.SeekingTalent,
		SeekingDescription: v.SeekingDescription,
	}
	if venue.ImageLink == "" {
		venue.ImageLink = entities.DefaultImageLink
	}
	if venue.SeekingDescription == "" {
		venue.SeekingDescription = entities.DefaultVenueSeekingDescription
	}
	return venue
}

func (a artistFixture) artist() entities.Artist {
	artist := entities.Artist{
		Name:               a.Name,
		City:               a.City,
		State:              a.State,
		Phone:              a.Phone,
		Genres:             a.Genres,
		ImageLink:          a.ImageLink,
		FacebookLink:       a.FacebookLink,
		Website:            a.Website,
		SeekingVenue:       a.SeekingVenue,
		SeekingDescription: a.SeekingDescription,
	}
	if artist.ImageLink == "" {
		artist.ImageLink = entities.DefaultImageLink
	}
	if artist.SeekingDescription == "" {
		artist.SeekingDescription = entities.DefaultArtistSeekingDescription
	}
	return artist
}
