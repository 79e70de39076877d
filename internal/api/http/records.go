package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/tasche-dev/tasche/pkg/httpx"
	"github.com/tasche-dev/tasche/pkg/idx"
)

// Record endpoints serve fixture data, same contract note as tasks.go.

type RecordsHandler struct{}

// HandleGet returns this week's recorded time.
//
//	@Summary	Get current week records
//	@Tags		Records
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	RecordsResponse
//	@Router		/api/weeks/current/records [get].
func (h *RecordsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, RecordsResponse{
		WeekID:              fixtureWeekID,
		UnitDurationMinutes: 30,
		Records: []RecordItem{
			{
				TaskID:   "tsk_01HXYZ1234567890ABCDEF",
				TaskName: "English study",
				DailyActuals: DailyUnits{
					Monday: 2.5, Tuesday: 1.0,
				},
			},
			{
				TaskID:   "tsk_02HXYZ1234567890ABCDEF",
				TaskName: "Side project",
				DailyActuals: DailyUnits{
					Monday: 2.0, Tuesday: 1.5,
				},
			},
		},
	})
}

// HandleCreate records actual units for a task on a given day.
//
//	@Summary	Record actual units
//	@Tags		Records
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		RecordCreate	true	"task, day and units"
//	@Success	201		{object}	RecordResponse
//	@Failure	400		{object}	httpx.APIError
//	@Router		/api/weeks/current/records [post].
func (h *RecordsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req RecordCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.ErrBadRequest.WithMessage("invalid request body").WriteError(w)
		return
	}
	if req.TaskID == "" || !req.DayOfWeek.Valid() || req.ActualUnits < 0 {
		httpx.ErrBadRequest.WithMessage("task_id, a valid day_of_week and non-negative actual_units are required").WriteError(w)
		return
	}

	now := time.Now().UTC()
	httpx.WriteJSON(w, http.StatusCreated, RecordResponse{
		ID:          string(idx.NewPrefixed("rec")),
		WeekID:      fixtureWeekID,
		TaskID:      req.TaskID,
		TaskName:    fmt.Sprintf("Task %s", req.TaskID),
		DayOfWeek:   req.DayOfWeek,
		ActualUnits: req.ActualUnits,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
}
