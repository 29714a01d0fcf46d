package http

import (
	"errors"
	"fmt"
	"net/http"

	"fyyur/entities"
	"fyyur/showcase"

	"github.com/labstack/echo/v4"
)

func (h Handler) GetArtists(c echo.Context) error {
	artists, err := h.artistRepo.Summaries(c.Request().Context())
	if err != nil {
		return err
	}

	if wantsJSON(c) {
		return c.JSON(http.StatusOK, artists)
	}
	return c.Render(http.StatusOK, "pages/artists.html", artistsPage{Artists: artists})
}

func (h Handler) PostArtistsSearch(c echo.Context) error {
	ctx := c.Request().Context()
	term := c.FormValue("search_term")

	summaries, err := h.artistRepo.Summaries(ctx)
	if err != nil {
		return err
	}
	shows, err := h.showRepo.All(ctx)
	if err != nil {
		return err
	}

	results := showcase.SearchResult(summaries, term, shows, showcase.ViewingFromArtist, h.now())

	if wantsJSON(c) {
		return c.JSON(http.StatusOK, results)
	}
	return c.Render(http.StatusOK, "pages/search.html", searchPage{
		Kind:       "artists",
		SearchTerm: term,
		Results:    results,
	})
}

func (h Handler) GetArtist(c echo.Context) error {
	ctx := c.Request().Context()

	artistID, err := idParam(c)
	if err != nil {
		return err
	}

	artist, err := h.artistRepo.ByID(ctx, artistID)
	if err != nil {
		return err
	}

	shows, err := h.showRepo.ForArtist(ctx, artistID)
	if err != nil {
		return err
	}
	venues, err := h.venueRepo.ByIDs(ctx, showcase.CounterpartIDs(shows, showcase.ViewingFromArtist))
	if err != nil {
		return err
	}

	breakdown, err := h.assembler.Breakdown(shows, showcase.ViewingFromArtist, showcase.NewCounterparts(venues), h.now())
	if err != nil {
		return &entities.PersistenceError{Op: fmt.Sprintf("assemble shows of artist %d", artistID), Err: err}
	}

	if wantsJSON(c) {
		return c.JSON(http.StatusOK, struct {
			entities.Artist
			entities.ShowBreakdown
		}{artist, breakdown})
	}
	return c.Render(http.StatusOK, "pages/show_artist.html", artistPage{
		Flash:  flash(c, "Artist", artist.Name),
		Artist: artist,
		Shows:  breakdown,
	})
}

func (h Handler) GetArtistCreate(c echo.Context) error {
	return c.Render(http.StatusOK, "forms/artist.html", artistFormPage{
		Action: "/artists/create",
		Form:   ArtistForm{SeekingVenue: checkbox(true)},
	})
}

func (h Handler) PostArtistCreate(c echo.Context) error {
	var form ArtistForm
	if err := c.Bind(&form); err != nil {
		return err
	}

	artist, err := form.Validate()
	if err != nil {
		return h.renderArtistForm(c, "/artists/create", 0, form, err)
	}

	resp, err := h.artistRepo.Create(c.Request().Context(), artist)
	if err != nil {
		return err
	}
	listingsCreated.WithLabelValues("artist").Inc()

	return c.Redirect(http.StatusSeeOther, fmt.Sprintf("/artists/%d?created=1", resp.ArtistID))
}

func (h Handler) GetArtistEdit(c echo.Context) error {
	artistID, err := idParam(c)
	if err != nil {
		return err
	}

	artist, err := h.artistRepo.ByID(c.Request().Context(), artistID)
	if err != nil {
		return err
	}

	return c.Render(http.StatusOK, "forms/artist.html", artistFormPage{
		Action:   fmt.Sprintf("/artists/%d/edit", artistID),
		ArtistID: artistID,
		Form:     ArtistFormFromEntity(artist),
	})
}

func (h Handler) PostArtistEdit(c echo.Context) error {
	artistID, err := idParam(c)
	if err != nil {
		return err
	}

	var form ArtistForm
	if err := c.Bind(&form); err != nil {
		return err
	}

	action := fmt.Sprintf("/artists/%d/edit", artistID)

	artist, err := form.Validate()
	if err != nil {
		return h.renderArtistForm(c, action, artistID, form, err)
	}
	artist.ID = artistID

	if err := h.artistRepo.Update(c.Request().Context(), artist); err != nil {
		return err
	}

	return c.Redirect(http.StatusSeeOther, fmt.Sprintf("/artists/%d?updated=1", artistID))
}

func (h Handler) renderArtistForm(c echo.Context, action string, artistID int64, form ArtistForm, err error) error {
	var validationErr *entities.ValidationError
	if !errors.As(err, &validationErr) {
		return err
	}

	return c.Render(http.StatusUnprocessableEntity, "forms/artist.html", artistFormPage{
		Action:   action,
		ArtistID: artistID,
		Form:     form,
		Errors:   validationErr,
	})
}
