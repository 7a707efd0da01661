package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/maxpoletaev/sorter/api/model"
)

var errNoColumn = errors.New("column is required")

type SortHandler struct {
	sorter Sorter
}

func NewSortHandler(sorter Sorter) *SortHandler {
	return &SortHandler{sorter: sorter}
}

func (h *SortHandler) Register(r chi.Router) {
	r.Post("/sort/numbers", h.sortNumbers)
	r.Post("/sort/strings", h.sortStrings)
	r.Post("/sort/objects", h.sortObjects)
}

func (h *SortHandler) sortNumbers(w http.ResponseWriter, r *http.Request) {
	var params model.SortNumbersParams

	if err := render.DecodeJSON(r.Body, &params); err != nil {
		renderError(w, r, http.StatusBadRequest, err)
		return
	}

	sorted, err := h.sorter.SortNumbers(r.Context(), params.Values, model.IsAscending(params.Ascending))
	if err != nil {
		renderError(w, r, engineErrorStatus(err), err)
		return
	}

	render.JSON(w, r, model.SortNumbersResponse{
		Values: sorted,
	})
}

func (h *SortHandler) sortStrings(w http.ResponseWriter, r *http.Request) {
	var params model.SortStringsParams

	if err := render.DecodeJSON(r.Body, &params); err != nil {
		renderError(w, r, http.StatusBadRequest, err)
		return
	}

	sorted, err := h.sorter.SortStrings(r.Context(), params.Values, model.IsAscending(params.Ascending))
	if err != nil {
		renderError(w, r, engineErrorStatus(err), err)
		return
	}

	render.JSON(w, r, model.SortStringsResponse{
		Values: sorted,
	})
}

func (h *SortHandler) sortObjects(w http.ResponseWriter, r *http.Request) {
	var params model.SortObjectsParams

	if err := render.DecodeJSON(r.Body, &params); err != nil {
		renderError(w, r, http.StatusBadRequest, err)
		return
	}

	if params.Column == "" {
		renderError(w, r, http.StatusBadRequest, errNoColumn)
		return
	}

	sorted, err := h.sorter.SortObjects(r.Context(), params.Objects, params.Column, model.IsAscending(params.Ascending))
	if err != nil {
		renderError(w, r, engineErrorStatus(err), err)
		return
	}

	render.JSON(w, r, model.SortObjectsResponse{
		Objects: sorted,
	})
}
