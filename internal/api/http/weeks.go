package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/tasche-dev/tasche/pkg/httpx"
)

// Week endpoints serve fixture data, same contract note as tasks.go.

const fixtureWeekID = "wk_01HXYZ1234567890ABCDEF"

type WeeksHandler struct{}

func fixtureWeek(userID string) WeekResponse {
	return WeekResponse{
		ID:                  fixtureWeekID,
		UserID:              userID,
		StartDate:           "2024-01-15",
		EndDate:             "2024-01-21",
		UnitDurationMinutes: 30,
		WeekStartDay:        "monday",
		WeekStartHour:       4,
		CreatedAt:           time.Date(2024, 1, 15, 4, 0, 0, 0, time.UTC),
		UpdatedAt:           time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
	}
}

// HandleGetCurrent returns the current week settings.
//
//	@Summary	Get current week
//	@Tags		Weeks
//	@Security	BearerAuth
//	@Produce	json
//	@Param		timezone	query		string	false	"IANA timezone, defaults to the user's setting"
//	@Success	200			{object}	WeekResponse
//	@Router		/api/weeks/current [get].
func (h *WeeksHandler) HandleGetCurrent(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		httpx.ErrInvalidToken.WriteError(w)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, fixtureWeek(user.ID))
}

// HandleUpdateCurrent changes the current week settings.
//
//	@Summary	Update current week
//	@Tags		Weeks
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		WeekUpdate	true	"unit duration"
//	@Success	200		{object}	WeekResponse
//	@Failure	400		{object}	httpx.APIError
//	@Router		/api/weeks/current [put].
func (h *WeeksHandler) HandleUpdateCurrent(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		httpx.ErrInvalidToken.WriteError(w)
		return
	}

	var req WeekUpdate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || !validUnitDuration(req.UnitDurationMinutes) {
		httpx.ErrBadRequest.WithMessage("unit_duration_minutes must be one of 10, 30, 60, 120").WriteError(w)
		return
	}

	week := fixtureWeek(user.ID)
	week.UnitDurationMinutes = req.UnitDurationMinutes
	week.UpdatedAt = time.Now().UTC()
	httpx.WriteJSON(w, http.StatusOK, week)
}

func validUnitDuration(minutes int) bool {
	switch minutes {
	case 10, 30, 60, 120:
		return true
	}
	return false
}
