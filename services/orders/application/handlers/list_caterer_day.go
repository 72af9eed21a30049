package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/naatukodi/catering/pkg/cosmos"
	"github.com/naatukodi/catering/pkg/errhttp"
	"github.com/naatukodi/catering/pkg/httpx"
	appsvcs "github.com/naatukodi/catering/services/orders/application/services"
)

const defaultCatererDayPageSize = 50

// ListCatererDayHandler handles GET /orders/by-caterer/{catererId}/day requests.
type ListCatererDayHandler struct {
	svc *appsvcs.Services
}

// NewListCatererDayHandler returns a ListCatererDayHandler backed by the given services.
func NewListCatererDayHandler(svc *appsvcs.Services) *ListCatererDayHandler {
	return &ListCatererDayHandler{svc: svc}
}

// Execute lists one page of order summaries for a caterer's UTC day.
//
//	@Summary		List caterer orders for a day
//	@Description	Returns one page of order summaries whose event falls on the given UTC date, earliest first
//	@Tags			orders
//	@Produce		json
//	@Param			catererId			path	string	true	"Caterer id"
//	@Param			dateUtc				query	string	true	"UTC date, e.g. 2025-09-20 (time-of-day is discarded)"
//	@Param			pageSize			query	int		false	"Page size (default 50)"
//	@Param			continuationToken	query	string	false	"Opaque continuation token from the previous page"
//	@Success		200	{object}	cosmos.Page[models.Summary]
//	@Failure		400	{object}	ErrorResponse
//	@Router			/orders/by-caterer/{catererId}/day [get]
func (h *ListCatererDayHandler) Execute(w http.ResponseWriter, r *http.Request) {
	catererID := chi.URLParam(r, "catererId")
	pageSize, continuation := httpx.PageParams(r, defaultCatererDayPageSize)

	day, err := parseDateUTC(r.URL.Query().Get("dateUtc"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "dateUtc must be a date like 2025-09-20")
		return
	}

	page, err := h.svc.Orders.ListByCatererAndDay(r.Context(), catererID, day, cosmos.ListOptions{
		PageSize:     pageSize,
		Continuation: continuation,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, page)
}

// parseDateUTC accepts a plain date or a full RFC 3339 timestamp. The
// time-of-day, if any, is discarded downstream.
func parseDateUTC(raw string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, raw)
}
