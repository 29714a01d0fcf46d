package http

import (
	"errors"
	"fmt"
	"net/http"

	"fyyur/entities"
	"fyyur/showcase"

	"github.com/labstack/echo/v4"
)

func (h Handler) GetVenues(c echo.Context) error {
	ctx := c.Request().Context()

	venues, err := h.venueRepo.All(ctx)
	if err != nil {
		return err
	}
	shows, err := h.showRepo.All(ctx)
	if err != nil {
		return err
	}

	areas := showcase.Areas(venues, shows, h.now())

	if wantsJSON(c) {
		return c.JSON(http.StatusOK, areas)
	}
	return c.Render(http.StatusOK, "pages/venues.html", venuesPage{Areas: areas})
}

func (h Handler) PostVenuesSearch(c echo.Context) error {
	ctx := c.Request().Context()
	term := c.FormValue("search_term")

	summaries, err := h.venueRepo.Summaries(ctx)
	if err != nil {
		return err
	}
	shows, err := h.showRepo.All(ctx)
	if err != nil {
		return err
	}

	results := showcase.SearchResult(summaries, term, shows, showcase.ViewingFromVenue, h.now())

	if wantsJSON(c) {
		return c.JSON(http.StatusOK, results)
	}
	return c.Render(http.StatusOK, "pages/search.html", searchPage{
		Kind:       "venues",
		SearchTerm: term,
		Results:    results,
	})
}

func (h Handler) GetVenue(c echo.Context) error {
	ctx := c.Request().Context()

	venueID, err := idParam(c)
	if err != nil {
		return err
	}

	venue, err := h.venueRepo.ByID(ctx, venueID)
	if err != nil {
		return err
	}

	shows, err := h.showRepo.ForVenue(ctx, venueID)
	if err != nil {
		return err
	}
	artists, err := h.artistRepo.ByIDs(ctx, showcase.CounterpartIDs(shows, showcase.ViewingFromVenue))
	if err != nil {
		return err
	}

	breakdown, err := h.assembler.Breakdown(shows, showcase.ViewingFromVenue, showcase.NewCounterparts(artists), h.now())
	if err != nil {
		return &entities.PersistenceError{Op: fmt.Sprintf("assemble shows of venue %d", venueID), Err: err}
	}

	if wantsJSON(c) {
		return c.JSON(http.StatusOK, struct {
			entities.Venue
			entities.ShowBreakdown
		}{venue, breakdown})
	}
	return c.Render(http.StatusOK, "pages/show_venue.html", venuePage{
		Flash: flash(c, "Venue", venue.Name),
		Venue: venue,
		Shows: breakdown,
	})
}

func (h Handler) GetVenueCreate(c echo.Context) error {
	return c.Render(http.StatusOK, "forms/venue.html", venueFormPage{Action: "/venues/create"})
}

func (h Handler) PostVenueCreate(c echo.Context) error {
	var form VenueForm
	if err := c.Bind(&form); err != nil {
		return err
	}

	venue, err := form.Validate()
	if err != nil {
		return h.renderVenueForm(c, "/venues/create", 0, form, err)
	}

	resp, err := h.venueRepo.Create(c.Request().Context(), venue)
	if err != nil {
		return err
	}
	listingsCreated.WithLabelValues("venue").Inc()

	return c.Redirect(http.StatusSeeOther, fmt.Sprintf("/venues/%d?created=1", resp.VenueID))
}

func (h Handler) GetVenueEdit(c echo.Context) error {
	venueID, err := idParam(c)
	if err != nil {
		return err
	}

	venue, err := h.venueRepo.ByID(c.Request().Context(), venueID)
	if err != nil {
		return err
	}

	return c.Render(http.StatusOK, "forms/venue.html", venueFormPage{
		Action:  fmt.Sprintf("/venues/%d/edit", venueID),
		VenueID: venueID,
		Form:    VenueFormFromEntity(venue),
	})
}

func (h Handler) PostVenueEdit(c echo.Context) error {
	venueID, err := idParam(c)
	if err != nil {
		return err
	}

	var form VenueForm
	if err := c.Bind(&form); err != nil {
		return err
	}

	action := fmt.Sprintf("/venues/%d/edit", venueID)

	venue, err := form.Validate()
	if err != nil {
		return h.renderVenueForm(c, action, venueID, form, err)
	}
	venue.ID = venueID

	if err := h.venueRepo.Update(c.Request().Context(), venue); err != nil {
		return err
	}

	return c.Redirect(http.StatusSeeOther, fmt.Sprintf("/venues/%d?updated=1", venueID))
}

func (h Handler) DeleteVenue(c echo.Context) error {
	venueID, err := idParam(c)
	if err != nil {
		return err
	}

	if err := h.venueRepo.Delete(c.Request().Context(), venueID); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"deleted":  venueID,
		"redirect": "/",
	})
}

func (h Handler) renderVenueForm(c echo.Context, action string, venueID int64, form VenueForm, err error) error {
	var validationErr *entities.ValidationError
	if !errors.As(err, &validationErr) {
		return err
	}

	return c.Render(http.StatusUnprocessableEntity, "forms/venue.html", venueFormPage{
		Action:  action,
		VenueID: venueID,
		Form:    form,
		Errors:  validationErr,
	})
}

// flash is the one-off message shown after a redirect from a form.
func flash(c echo.Context, kind, name string) string {
	switch {
	case c.QueryParam("created") == "1":
		return fmt.Sprintf("%s %s was successfully listed!", kind, name)
	case c.QueryParam("updated") == "1":
		return fmt.Sprintf("%s %s was successfully updated!", kind, name)
	default:
		return ""
	}
}
