package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/render"

	"github.com/maxpoletaev/sorter/api/model"
)

func renderError(w http.ResponseWriter, r *http.Request, status int, err error, details ...string) {
	render.Status(r, status)
	render.JSON(w, r, model.ErrorResponse{
		Error:   err.Error(),
		Details: details,
	})
}

// engineErrorStatus maps an engine error to an HTTP status code.
func engineErrorStatus(err error) int {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return http.StatusServiceUnavailable
	}

	return http.StatusInternalServerError
}
