package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"fyyur/entities"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"github.com/labstack/echo/v4"
)

type errorPage struct {
	Status  int
	Message string
}

// HandleError renders errors as HTML pages, or as JSON for API clients and
// DELETE requests.
func HandleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status, message := statusFor(err)

	logger := log.FromContext(c.Request().Context()).WithError(err).WithField("status", status)
	if status >= http.StatusInternalServerError {
		logger.Error("Request failed")
	} else {
		logger.Info("Request rejected")
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else if wantsJSON(c) {
		err = c.JSON(status, map[string]interface{}{"message": message})
	} else {
		err = c.Render(status, errorTemplate(status), errorPage{Status: status, Message: message})
	}
	if err != nil {
		log.FromContext(c.Request().Context()).WithError(err).Error("Could not write error response")
	}
}

func statusFor(err error) (int, string) {
	var (
		httpErr       *echo.HTTPError
		persistErr    *entities.PersistenceError
		notFoundErr   *entities.NotFoundError
		validationErr *entities.ValidationError
		conflictErr   *entities.ConflictError
	)

	switch {
	case errors.As(err, &httpErr):
		return httpErr.Code, fmt.Sprint(httpErr.Message)
	case errors.As(err, &persistErr):
		// a dangling reference below a persistence failure is still a server error
		return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
	case errors.As(err, &notFoundErr):
		return http.StatusNotFound, notFoundErr.Error()
	case errors.As(err, &validationErr):
		return http.StatusUnprocessableEntity, validationErr.Error()
	case errors.As(err, &conflictErr):
		return http.StatusConflict, conflictErr.Error()
	default:
		return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
	}
}

func errorTemplate(status int) string {
	switch status {
	case http.StatusNotFound:
		return "errors/404.html"
	case http.StatusInternalServerError:
		return "errors/500.html"
	default:
		return "errors/error.html"
	}
}

func wantsJSON(c echo.Context) bool {
	if c.Request().Method == http.MethodDelete {
		return true
	}
	return strings.Contains(c.Request().Header.Get(echo.HeaderAccept), echo.MIMEApplicationJSON)
}
