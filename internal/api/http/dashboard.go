package http

import (
	"net/http"

	"github.com/tasche-dev/tasche/internal/api/domain"
	"github.com/tasche-dev/tasche/pkg/httpx"
)

// Dashboard endpoint serves fixture data, same contract note as tasks.go.

type DashboardHandler struct{}

func rate(v float64) *float64 { return &v }

// ServeHTTP returns the aggregated dashboard view: today's goals and the
// week's target/actual matrix per task.
//
//	@Summary	Get dashboard
//	@Tags		Dashboard
//	@Security	BearerAuth
//	@Produce	json
//	@Param		timezone	query		string	false	"IANA timezone, defaults to the user's setting"
//	@Success	200			{object}	DashboardResponse
//	@Router		/api/dashboard [get].
func (h *DashboardHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, DashboardResponse{
		CurrentDate:      "2024-01-17",
		CurrentDayOfWeek: domain.Wednesday,
		Week: WeekInfo{
			ID:                  fixtureWeekID,
			StartDate:           "2024-01-15",
			EndDate:             "2024-01-21",
			UnitDurationMinutes: 30,
		},
		TodayGoals: []TodayGoal{
			{
				TaskID:         "tsk_01HXYZ1234567890ABCDEF",
				TaskName:       "English study",
				TargetUnits:    2.0,
				ActualUnits:    1.5,
				CompletionRate: rate(75.0),
			},
			{
				TaskID:         "tsk_02HXYZ1234567890ABCDEF",
				TaskName:       "Side project",
				TargetUnits:    0,
				ActualUnits:    0,
				CompletionRate: nil,
			},
		},
		WeeklyMatrix: []WeeklyMatrixItem{
			{
				TaskID:   "tsk_01HXYZ1234567890ABCDEF",
				TaskName: "English study",
				DailyData: map[domain.DayOfWeek]DailyData{
					domain.Monday:    {TargetUnits: 2.0, ActualUnits: 2.5, CompletionRate: rate(125.0)},
					domain.Tuesday:   {TargetUnits: 1.0, ActualUnits: 1.0, CompletionRate: rate(100.0)},
					domain.Wednesday: {TargetUnits: 2.0, ActualUnits: 1.5, CompletionRate: rate(75.0)},
					domain.Thursday:  {TargetUnits: 1.0, ActualUnits: 0, CompletionRate: rate(0)},
					domain.Friday:    {TargetUnits: 2.0, ActualUnits: 0, CompletionRate: rate(0)},
					domain.Saturday:  {TargetUnits: 0, ActualUnits: 0, CompletionRate: nil},
					domain.Sunday:    {TargetUnits: 0, ActualUnits: 0, CompletionRate: nil},
				},
			},
			{
				TaskID:   "tsk_02HXYZ1234567890ABCDEF",
				TaskName: "Side project",
				DailyData: map[domain.DayOfWeek]DailyData{
					domain.Monday:    {TargetUnits: 2.0, ActualUnits: 2.0, CompletionRate: rate(100.0)},
					domain.Tuesday:   {TargetUnits: 2.0, ActualUnits: 1.5, CompletionRate: rate(75.0)},
					domain.Wednesday: {TargetUnits: 0, ActualUnits: 0, CompletionRate: nil},
					domain.Thursday:  {TargetUnits: 2.0, ActualUnits: 0, CompletionRate: rate(0)},
					domain.Friday:    {TargetUnits: 0, ActualUnits: 0, CompletionRate: nil},
					domain.Saturday:  {TargetUnits: 4.0, ActualUnits: 0, CompletionRate: rate(0)},
					domain.Sunday:    {TargetUnits: 4.0, ActualUnits: 0, CompletionRate: rate(0)},
				},
			},
		},
		HasGoalsConfigured: true,
	})
}
