package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/tasche-dev/tasche/pkg/httpx"
	"github.com/tasche-dev/tasche/pkg/idx"
)

// Goal endpoints serve fixture data, same contract note as tasks.go.

type GoalsHandler struct{}

// HandleGet returns this week's goals.
//
//	@Summary	Get current week goals
//	@Tags		Goals
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	GoalsResponse
//	@Router		/api/weeks/current/goals [get].
func (h *GoalsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, GoalsResponse{
		WeekID:              fixtureWeekID,
		UnitDurationMinutes: 30,
		Goals: []GoalItem{
			{
				TaskID:   "tsk_01HXYZ1234567890ABCDEF",
				TaskName: "English study",
				DailyTargets: DailyUnits{
					Monday: 2.0, Tuesday: 1.0, Wednesday: 2.0,
					Thursday: 1.0, Friday: 2.0,
				},
			},
			{
				TaskID:   "tsk_02HXYZ1234567890ABCDEF",
				TaskName: "Side project",
				DailyTargets: DailyUnits{
					Monday: 2.0, Tuesday: 2.0, Thursday: 2.0,
					Saturday: 4.0, Sunday: 4.0,
				},
			},
		},
	})
}

// HandleUpdate replaces this week's goals in one shot. Goal rows whose
// task_id is empty but carry new_task_name create the task on the fly.
//
//	@Summary	Update current week goals
//	@Tags		Goals
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		GoalsUpdate	true	"full goal set"
//	@Success	200		{object}	GoalsUpdateResponse
//	@Failure	400		{object}	httpx.APIError
//	@Router		/api/weeks/current/goals [put].
func (h *GoalsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req GoalsUpdate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || !validUnitDuration(req.UnitDurationMinutes) {
		httpx.ErrBadRequest.WithMessage("unit_duration_minutes must be one of 10, 30, 60, 120").WriteError(w)
		return
	}

	goals := make([]GoalItem, 0, len(req.Goals))
	createdTasks := []CreatedTask{}

	for _, item := range req.Goals {
		switch {
		case item.TaskID == "" && item.NewTaskName != "":
			newID := string(idx.NewPrefixed("tsk"))
			goals = append(goals, GoalItem{
				TaskID:       newID,
				TaskName:     item.NewTaskName,
				DailyTargets: item.DailyTargets,
			})
			createdTasks = append(createdTasks, CreatedTask{ID: newID, Name: item.NewTaskName})

		case item.TaskID != "":
			goals = append(goals, GoalItem{
				TaskID:       item.TaskID,
				TaskName:     fmt.Sprintf("Task %s", item.TaskID),
				DailyTargets: item.DailyTargets,
			})

		default:
			httpx.ErrBadRequest.WithMessage("each goal needs task_id or new_task_name").WriteError(w)
			return
		}
	}

	httpx.WriteJSON(w, http.StatusOK, GoalsUpdateResponse{
		WeekID:              fixtureWeekID,
		UnitDurationMinutes: req.UnitDurationMinutes,
		Goals:               goals,
		CreatedTasks:        createdTasks,
	})
}
