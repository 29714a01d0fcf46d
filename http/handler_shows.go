package http

import (
	"errors"
	"net/http"

	"fyyur/entities"
	"fyyur/showcase"

	"github.com/labstack/echo/v4"
)

func (h Handler) GetShows(c echo.Context) error {
	ctx := c.Request().Context()

	shows, err := h.showRepo.All(ctx)
	if err != nil {
		return err
	}

	venues, err := h.venueRepo.ByIDs(ctx, showcase.CounterpartIDs(shows, showcase.ViewingFromArtist))
	if err != nil {
		return err
	}
	artists, err := h.artistRepo.ByIDs(ctx, showcase.CounterpartIDs(shows, showcase.ViewingFromVenue))
	if err != nil {
		return err
	}

	listing, err := h.assembler.Listing(shows, showcase.NewCounterparts(venues), showcase.NewCounterparts(artists))
	if err != nil {
		return &entities.PersistenceError{Op: "assemble shows", Err: err}
	}

	if wantsJSON(c) {
		return c.JSON(http.StatusOK, listing)
	}

	page := showsPage{Shows: listing}
	if c.QueryParam("created") == "1" {
		page.Flash = "Show was successfully listed!"
	}
	return c.Render(http.StatusOK, "pages/shows.html", page)
}

func (h Handler) GetShowCreate(c echo.Context) error {
	return c.Render(http.StatusOK, "forms/show.html", showFormPage{})
}

func (h Handler) PostShowCreate(c echo.Context) error {
	var form ShowForm
	if err := c.Bind(&form); err != nil {
		return err
	}

	show, err := form.Validate()
	if err == nil {
		_, err = h.showRepo.Create(c.Request().Context(), show)
	}

	var validationErr *entities.ValidationError
	if errors.As(err, &validationErr) {
		return c.Render(http.StatusUnprocessableEntity, "forms/show.html", showFormPage{
			Form:   form,
			Errors: validationErr,
		})
	}
	if err != nil {
		return err
	}
	listingsCreated.WithLabelValues("show").Inc()

	return c.Redirect(http.StatusSeeOther, "/shows?created=1")
}
