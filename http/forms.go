package http

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"fyyur/entities"
)

var (
	statePattern = regexp.MustCompile(`^[A-Z]{2}$`)
	phonePattern = regexp.MustCompile(`^[0-9()+\-. ]{7,20}$`)
)

// startTimeLayouts are tried in order; the first is what the show form
// suggests as a placeholder.
var startTimeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	time.RFC3339,
}

type VenueForm struct {
	Name               string   `form:"name"`
	City               string   `form:"city"`
	State              string   `form:"state"`
	Address            string   `form:"address"`
	Phone              string   `form:"phone"`
	Genres             []string `form:"genres"`
	ImageLink          string   `form:"image_link"`
	FacebookLink       string   `form:"facebook_link"`
	Website            string   `form:"website"`
	SeekingTalent      string   `form:"seeking_talent"`
	SeekingDescription string   `form:"seeking_description"`
}

func VenueFormFromEntity(v entities.Venue) VenueForm {
	return VenueForm{
		Name:               v.Name,
		City:               v.City,
		State:              v.State,
		Address:            v.Address,
		Phone:              v.Phone,
		Genres:             v.Genres,
		ImageLink:          v.ImageLink,
		FacebookLink:       v.FacebookLink,
		Website:            v.Website,
		SeekingTalent:      checkbox(v.SeekingTalent),
		SeekingDescription: v.SeekingDescription,
	}
}

func (f VenueForm) Validate() (entities.Venue, error) {
	verr := &entities.ValidationError{}

	name := required(verr, "name", f.Name)
	city := required(verr, "city", f.City)
	state := validState(verr, f.State)
	address := required(verr, "address", f.Address)
	phone := validPhone(verr, f.Phone)
	imageLink := validURL(verr, "image_link", f.ImageLink)
	facebookLink := validURL(verr, "facebook_link", f.FacebookLink)
	website := validURL(verr, "website", f.Website)

	if err := verr.OrNil(); err != nil {
		return entities.Venue{}, err
	}

	venue := entities.Venue{
		Name:               name,
		City:               city,
		State:              state,
		Address:            address,
		Phone:              phone,
		Genres:             cleanGenres(f.Genres),
		ImageLink:          imageLink,
		FacebookLink:       facebookLink,
		Website:            website,
		SeekingTalent:      isChecked(f.SeekingTalent),
		SeekingDescription: strings.TrimSpace(f.SeekingDescription),
	}
	if venue.ImageLink == "" {
		venue.ImageLink = entities.DefaultImageLink
	}
	if venue.SeekingDescription == "" {
		venue.SeekingDescription = entities.DefaultVenueSeekingDescription
	}

	return venue, nil
}

type ArtistForm struct {
	Name               string   `form:"name"`
	City               string   `form:"city"`
	State              string   `form:"state"`
	Phone              string   `form:"phone"`
	Genres             []string `form:"genres"`
	ImageLink          string   `form:"image_link"`
	FacebookLink       string   `form:"facebook_link"`
	Website            string   `form:"website"`
	SeekingVenue       string   `form:"seeking_venue"`
	SeekingDescription string   `form:"seeking_description"`
}

func ArtistFormFromEntity(a entities.Artist) ArtistForm {
	return ArtistForm{
		Name:               a.Name,
		City:               a.City,
		State:              a.State,
		Phone:              a.Phone,
		Genres:             a.Genres,
		ImageLink:          a.ImageLink,
		FacebookLink:       a.FacebookLink,
		Website:            a.Website,
		SeekingVenue:       checkbox(a.SeekingVenue),
		SeekingDescription: a.SeekingDescription,
	}
}

func (f ArtistForm) Validate() (entities.Artist, error) {
	verr := &entities.ValidationError{}

	name := required(verr, "name", f.Name)
	city := required(verr, "city", f.City)
	state := validState(verr, f.State)
	phone := validPhone(verr, f.Phone)
	imageLink := validURL(verr, "image_link", f.ImageLink)
	facebookLink := validURL(verr, "facebook_link", f.FacebookLink)
	website := validURL(verr, "website", f.Website)

	if err := verr.OrNil(); err != nil {
		return entities.Artist{}, err
	}

	artist := entities.Artist{
		Name:               name,
		City:               city,
		State:              state,
		Phone:              phone,
		Genres:             cleanGenres(f.Genres),
		ImageLink:          imageLink,
		FacebookLink:       facebookLink,
		Website:            website,
		SeekingVenue:       isChecked(f.SeekingVenue),
		SeekingDescription: strings.TrimSpace(f.SeekingDescription),
	}
	if artist.ImageLink == "" {
		artist.ImageLink = entities.DefaultImageLink
	}
	if artist.SeekingDescription == "" {
		artist.SeekingDescription = entities.DefaultArtistSeekingDescription
	}

	return artist, nil
}

type ShowForm struct {
	ArtistID  string `form:"artist_id"`
	VenueID   string `form:"venue_id"`
	StartTime string `form:"start_time"`
}

func (f ShowForm) Validate() (entities.Show, error) {
	verr := &entities.ValidationError{}

	artistID := validID(verr, "artist_id", f.ArtistID)
	venueID := validID(verr, "venue_id", f.VenueID)
	startTime := validStartTime(verr, f.StartTime)

	if err := verr.OrNil(); err != nil {
		return entities.Show{}, err
	}

	return entities.Show{
		ArtistID:  artistID,
		VenueID:   venueID,
		StartTime: startTime,
	}, nil
}

func required(verr *entities.ValidationError, field, value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		verr.Add(field, "This field is required.")
	}
	return value
}

func validState(verr *entities.ValidationError, value string) string {
	value = strings.ToUpper(required(verr, "state", value))
	if value != "" && !statePattern.MatchString(value) {
		verr.Add("state", "Use the two letter state code.")
	}
	return value
}

func validPhone(verr *entities.ValidationError, value string) string {
	value = strings.TrimSpace(value)
	if value != "" && !phonePattern.MatchString(value) {
		verr.Add("phone", "Invalid phone number.")
	}
	return value
}

func validURL(verr *entities.ValidationError, field, value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}

	u, err := url.ParseRequestURI(value)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		verr.Add(field, "Invalid URL.")
	}
	return value
}

func validID(verr *entities.ValidationError, field, value string) int64 {
	value = required(verr, field, value)
	if value == "" {
		return 0
	}

	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id <= 0 {
		verr.Add(field, "Must be a positive number.")
		return 0
	}
	return id
}

// validStartTime parses the submitted time as UTC.
func validStartTime(verr *entities.ValidationError, value string) time.Time {
	value = required(verr, "start_time", value)
	if value == "" {
		return time.Time{}
	}

	for _, layout := range startTimeLayouts {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return t.UTC()
		}
	}

	verr.Add("start_time", "Use the format YYYY-MM-DD HH:MM:SS.")
	return time.Time{}
}

func cleanGenres(genres []string) []string {
	cleaned := make([]string, 0, len(genres))
	for _, g := range genres {
		if g = strings.TrimSpace(g); g != "" {
			cleaned = append(cleaned, g)
		}
	}
	return cleaned
}

func isChecked(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "y", "yes", "on", "true", "1":
		return true
	default:
		return false
	}
}

func checkbox(checked bool) string {
	if checked {
		return "y"
	}
	return ""
}
