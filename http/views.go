package http

import (
	"fyyur/entities"
)

type homePage struct {
	Flash         string
	RecentVenues  []entities.Counterpart
	RecentArtists []entities.Counterpart
}

type venuesPage struct {
	Areas []entities.Area
}

type artistsPage struct {
	Artists []entities.Summary
}

type searchPage struct {
	// Kind is "venues" or "artists".
	Kind       string
	SearchTerm string
	Results    entities.SearchResult
}

type venuePage struct {
	Flash string
	Venue entities.Venue
	Shows entities.ShowBreakdown
}

type artistPage struct {
	Flash  string
	Artist entities.Artist
	Shows  entities.ShowBreakdown
}

type showsPage struct {
	Flash string
	Shows []entities.ShowListing
}

type venueFormPage struct {
	Action  string
	VenueID int64
	Form    VenueForm
	Errors  *entities.ValidationError
}

type artistFormPage struct {
	Action   string
	ArtistID int64
	Form     ArtistForm
	Errors   *entities.ValidationError
}

type showFormPage struct {
	Form   ShowForm
	Errors *entities.ValidationError
}
