package http

import (
	"net/http"
	"time"

	"fyyur/showcase"

	libHttp "github.com/ThreeDotsLabs/go-event-driven/common/http"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
)

func NewHttpRouter(
	venueRepo VenueRepository,
	artistRepo ArtistRepository,
	showRepo ShowRepository,
	eventRepo EventRepository,
	recentFeed RecentFeed,
	assembler showcase.Assembler,
) (*echo.Echo, error) {
	renderer, err := NewRenderer()
	if err != nil {
		return nil, err
	}

	e := libHttp.NewEcho()
	e.Use(otelecho.Middleware("fyyur"))
	e.Renderer = renderer
	e.HTTPErrorHandler = HandleError

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	handler := Handler{
		venueRepo:  venueRepo,
		artistRepo: artistRepo,
		showRepo:   showRepo,
		eventRepo:  eventRepo,
		recentFeed: recentFeed,
		assembler:  assembler,
		now:        time.Now,
	}

	e.GET("/", handler.GetHome)

	e.GET("/venues", handler.GetVenues)
	e.POST("/venues/search", handler.PostVenuesSearch)
	e.GET("/venues/create", handler.GetVenueCreate)
	e.POST("/venues/create", handler.PostVenueCreate)
	e.GET("/venues/:id", handler.GetVenue)
	e.DELETE("/venues/:id", handler.DeleteVenue)
	e.GET("/venues/:id/edit", handler.GetVenueEdit)
	e.POST("/venues/:id/edit", handler.PostVenueEdit)

	e.GET("/artists", handler.GetArtists)
	e.POST("/artists/search", handler.PostArtistsSearch)
	e.GET("/artists/create", handler.GetArtistCreate)
	e.POST("/artists/create", handler.PostArtistCreate)
	e.GET("/artists/:id", handler.GetArtist)
	e.GET("/artists/:id/edit", handler.GetArtistEdit)
	e.POST("/artists/:id/edit", handler.PostArtistEdit)

	e.GET("/shows", handler.GetShows)
	e.GET("/shows/create", handler.GetShowCreate)
	e.POST("/shows/create", handler.PostShowCreate)

	e.GET("/ops/events", handler.GetOpsEvents)

	return e, nil
}
