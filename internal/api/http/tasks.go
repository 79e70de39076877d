package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/tasche-dev/tasche/pkg/httpx"
	"github.com/tasche-dev/tasche/pkg/idx"
)

// Task endpoints serve representative fixture data; persistence for
// tasks is a later milestone and the shapes here are the contract the
// frontend builds against.

const maxTaskNameLength = 100

type TasksHandler struct{}

var fixtureTasks = []TaskResponse{
	{
		ID:         "tsk_01HXYZ1234567890ABCDEF",
		Name:       "English study",
		IsArchived: false,
		CreatedAt:  time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC),
		UpdatedAt:  time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC),
	},
	{
		ID:         "tsk_02HXYZ1234567890ABCDEF",
		Name:       "Side project",
		IsArchived: false,
		CreatedAt:  time.Date(2024, 1, 10, 9, 5, 0, 0, time.UTC),
		UpdatedAt:  time.Date(2024, 1, 10, 9, 5, 0, 0, time.UTC),
	},
	{
		ID:         "tsk_03HXYZ1234567890ABCDEF",
		Name:       "Reading",
		IsArchived: false,
		CreatedAt:  time.Date(2024, 1, 10, 9, 10, 0, 0, time.UTC),
		UpdatedAt:  time.Date(2024, 1, 10, 9, 10, 0, 0, time.UTC),
	},
}

var fixtureArchivedTask = TaskResponse{
	ID:         "tsk_04HXYZ1234567890ABCDEF",
	Name:       "Archived task",
	IsArchived: true,
	CreatedAt:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	UpdatedAt:  time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
}

// HandleList returns the task list.
//
//	@Summary	List tasks
//	@Tags		Tasks
//	@Security	BearerAuth
//	@Produce	json
//	@Param		include_archived	query		bool	false	"include archived tasks"
//	@Success	200					{object}	TaskListResponse
//	@Router		/api/tasks [get].
func (h *TasksHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	tasks := make([]TaskResponse, len(fixtureTasks))
	copy(tasks, fixtureTasks)

	if r.URL.Query().Get("include_archived") == "true" {
		tasks = append(tasks, fixtureArchivedTask)
	}

	httpx.WriteJSON(w, http.StatusOK, TaskListResponse{Tasks: tasks})
}

// HandleCreate creates a task.
//
//	@Summary	Create a task
//	@Tags		Tasks
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		TaskCreate	true	"task name"
//	@Success	201		{object}	TaskResponse
//	@Failure	400		{object}	httpx.APIError
//	@Router		/api/tasks [post].
func (h *TasksHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req TaskCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || !validTaskName(req.Name) {
		httpx.ErrBadRequest.WithMessage("name must be 1-100 characters").WriteError(w)
		return
	}

	now := time.Now().UTC()
	httpx.WriteJSON(w, http.StatusCreated, TaskResponse{
		ID:         string(idx.NewPrefixed("tsk")),
		Name:       req.Name,
		IsArchived: false,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
}

// HandleUpdate renames a task.
//
//	@Summary	Update a task
//	@Tags		Tasks
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string		true	"task id"
//	@Param		body	body		TaskUpdate	true	"new name"
//	@Success	200		{object}	TaskResponse
//	@Failure	400		{object}	httpx.APIError
//	@Router		/api/tasks/{id} [put].
func (h *TasksHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req TaskUpdate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || !validTaskName(req.Name) {
		httpx.ErrBadRequest.WithMessage("name must be 1-100 characters").WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, TaskResponse{
		ID:         r.PathValue("id"),
		Name:       req.Name,
		IsArchived: false,
		CreatedAt:  time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC),
		UpdatedAt:  time.Now().UTC(),
	})
}

// HandleDelete archives a task. Tasks are never hard-deleted so past
// weeks keep their history.
//
//	@Summary	Archive a task
//	@Tags		Tasks
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		string	true	"task id"
//	@Success	200	{object}	TaskResponse
//	@Router		/api/tasks/{id} [delete].
func (h *TasksHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, TaskResponse{
		ID:         r.PathValue("id"),
		Name:       "Archived task",
		IsArchived: true,
		CreatedAt:  time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC),
		UpdatedAt:  time.Now().UTC(),
	})
}

func validTaskName(name string) bool {
	return name != "" && len([]rune(name)) <= maxTaskNameLength
}
