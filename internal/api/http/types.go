package http

import (
	"time"

	"github.com/tasche-dev/tasche/internal/api/domain"
)

// TokenResponse is returned by the callback and refresh endpoints. The
// refresh token never appears here; it travels only in the cookie.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// LogoutResponse confirms the refresh cookie was cleared.
type LogoutResponse struct {
	Message string `json:"message"`
}

// UserResponse is the wire shape of a user record.
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Picture   *string   `json:"picture"`
	Timezone  string    `json:"timezone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toUserResponse(u domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Picture:   u.Picture,
		Timezone:  u.Timezone,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// Task payloads.

type TaskCreate struct {
	Name string `json:"name"`
}

type TaskUpdate struct {
	Name string `json:"name"`
}

type TaskResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	IsArchived bool      `json:"is_archived"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type TaskListResponse struct {
	Tasks []TaskResponse `json:"tasks"`
}

// Week payloads.

type WeekUpdate struct {
	UnitDurationMinutes int `json:"unit_duration_minutes"`
}

type WeekResponse struct {
	ID                  string    `json:"id"`
	UserID              string    `json:"user_id"`
	StartDate           string    `json:"start_date"` // YYYY-MM-DD
	EndDate             string    `json:"end_date"`   // YYYY-MM-DD
	UnitDurationMinutes int       `json:"unit_duration_minutes"`
	WeekStartDay        string    `json:"week_start_day"` // monday or sunday
	WeekStartHour       int       `json:"week_start_hour"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// Goal payloads. DailyUnits doubles as targets and actuals: it maps each
// weekday to a unit count.

type DailyUnits struct {
	Monday    float64 `json:"monday"`
	Tuesday   float64 `json:"tuesday"`
	Wednesday float64 `json:"wednesday"`
	Thursday  float64 `json:"thursday"`
	Friday    float64 `json:"friday"`
	Saturday  float64 `json:"saturday"`
	Sunday    float64 `json:"sunday"`
}

type GoalItem struct {
	TaskID       string     `json:"task_id"`
	TaskName     string     `json:"task_name"`
	DailyTargets DailyUnits `json:"daily_targets"`
}

type GoalsResponse struct {
	WeekID              string     `json:"week_id"`
	UnitDurationMinutes int        `json:"unit_duration_minutes"`
	Goals               []GoalItem `json:"goals"`
}

type GoalUpdateItem struct {
	TaskID       string     `json:"task_id,omitempty"`
	NewTaskName  string     `json:"new_task_name,omitempty"`
	DailyTargets DailyUnits `json:"daily_targets"`
}

type GoalsUpdate struct {
	UnitDurationMinutes int              `json:"unit_duration_minutes"`
	Goals               []GoalUpdateItem `json:"goals"`
}

type CreatedTask struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type GoalsUpdateResponse struct {
	WeekID              string        `json:"week_id"`
	UnitDurationMinutes int           `json:"unit_duration_minutes"`
	Goals               []GoalItem    `json:"goals"`
	CreatedTasks        []CreatedTask `json:"created_tasks"`
}

// Record payloads.

type RecordItem struct {
	TaskID       string     `json:"task_id"`
	TaskName     string     `json:"task_name"`
	DailyActuals DailyUnits `json:"daily_actuals"`
}

type RecordsResponse struct {
	WeekID              string       `json:"week_id"`
	UnitDurationMinutes int          `json:"unit_duration_minutes"`
	Records             []RecordItem `json:"records"`
}

type RecordCreate struct {
	TaskID      string           `json:"task_id"`
	DayOfWeek   domain.DayOfWeek `json:"day_of_week"`
	ActualUnits float64          `json:"actual_units"`
}

type RecordResponse struct {
	ID          string           `json:"id"`
	WeekID      string           `json:"week_id"`
	TaskID      string           `json:"task_id"`
	TaskName    string           `json:"task_name"`
	DayOfWeek   domain.DayOfWeek `json:"day_of_week"`
	ActualUnits float64          `json:"actual_units"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// Dashboard payloads.

type WeekInfo struct {
	ID                  string `json:"id"`
	StartDate           string `json:"start_date"`
	EndDate             string `json:"end_date"`
	UnitDurationMinutes int    `json:"unit_duration_minutes"`
}

type TodayGoal struct {
	TaskID         string   `json:"task_id"`
	TaskName       string   `json:"task_name"`
	TargetUnits    float64  `json:"target_units"`
	ActualUnits    float64  `json:"actual_units"`
	CompletionRate *float64 `json:"completion_rate"` // nil when no target is set
}

type DailyData struct {
	TargetUnits    float64  `json:"target_units"`
	ActualUnits    float64  `json:"actual_units"`
	CompletionRate *float64 `json:"completion_rate"`
}

type WeeklyMatrixItem struct {
	TaskID    string                         `json:"task_id"`
	TaskName  string                         `json:"task_name"`
	DailyData map[domain.DayOfWeek]DailyData `json:"daily_data"`
}

type DashboardResponse struct {
	CurrentDate        string             `json:"current_date"`
	CurrentDayOfWeek   domain.DayOfWeek   `json:"current_day_of_week"`
	Week               WeekInfo           `json:"week"`
	TodayGoals         []TodayGoal        `json:"today_goals"`
	WeeklyMatrix       []WeeklyMatrixItem `json:"weekly_matrix"`
	HasGoalsConfigured bool               `json:"has_goals_configured"`
}

// Health payloads.

type HealthChecks struct {
	Database string `json:"database"`
}

type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}
