package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/maxpoletaev/sorter/api/model"
	"github.com/maxpoletaev/sorter/internal/multierror"
	"github.com/maxpoletaev/sorter/sorting"
)

var errInvalidJobs = errors.New("invalid batch jobs")

type BatchHandler struct {
	sorter Sorter
}

func NewBatchHandler(sorter Sorter) *BatchHandler {
	return &BatchHandler{sorter: sorter}
}

func (h *BatchHandler) Register(r chi.Router) {
	r.Post("/sort/batch", h.sortBatch)
}

func (h *BatchHandler) sortBatch(w http.ResponseWriter, r *http.Request) {
	var params model.BatchParams

	if err := render.DecodeJSON(r.Body, &params); err != nil {
		renderError(w, r, http.StatusBadRequest, err)
		return
	}

	// All jobs are validated before any of them is sorted.
	directions := make([]sorting.Direction, len(params.Jobs))
	errs := multierror.New[int]()

	for i, job := range params.Jobs {
		if job.Direction == "" {
			directions[i] = sorting.Ascending
			continue
		}

		dir, err := sorting.ParseDirection(job.Direction)
		if err != nil {
			errs.Add(i, err)
			continue
		}

		directions[i] = dir
	}

	if errs.Len() > 0 {
		details := make([]string, 0, errs.Len())
		errs.Each(func(idx int, err error) {
			details = append(details, fmt.Sprintf("jobs[%d]: %s", idx, err))
		})

		renderError(w, r, http.StatusBadRequest, errInvalidJobs, details...)

		return
	}

	results := make([][]float64, len(params.Jobs))

	for i, job := range params.Jobs {
		sorted, err := h.sorter.SortNumbers(r.Context(), job.Values, directions[i].Ascending())
		if err != nil {
			renderError(w, r, engineErrorStatus(err), fmt.Errorf("jobs[%d]: %w", i, err))
			return
		}

		results[i] = sorted
	}

	render.JSON(w, r, model.BatchResponse{
		Results: results,
	})
}
