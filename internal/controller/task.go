package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ujenziiq/ujenziiq-go/internal/constant"
	"github.com/ujenziiq/ujenziiq-go/internal/model"
	"github.com/ujenziiq/ujenziiq-go/internal/repository"
	"github.com/ujenziiq/ujenziiq-go/internal/util"
)

type TaskController struct {
	*baseController
}

const (
	ErrTaskIdRequired = "task ID is required"
	ErrTaskNotFound   = "task not found"
)

func (tc TaskController) CreateTask(ctx *gin.Context) {
	type Request struct {
		ProjectID     string                `json:"project_id" form:"project_id" binding:"required"`
		Name          string                `json:"name" form:"name" binding:"required,strNotEmpty,max=255"`
		Description   string                `json:"description" form:"description" binding:"required"`
		Status        constant.TaskStatus   `json:"status" form:"status" binding:"omitempty,oneof=pending in_progress completed blocked"`
		Priority      constant.TaskPriority `json:"priority" form:"priority" binding:"omitempty,oneof=low medium high critical"`
		StartDate     time.Time             `json:"start_date" form:"start_date" binding:"required" time_format:"2006-01-02"`
		DueDate       time.Time             `json:"due_date" form:"due_date" binding:"required" time_format:"2006-01-02"`
		AssigneeIds   []string              `json:"assignee_ids" form:"assignee_ids"`
		DependencyIds []string              `json:"dependency_ids" form:"dependency_ids"`
	}
	var body Request

	if err := ctx.ShouldBind(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	if body.Status == "" {
		body.Status = constant.TaskStatusPending
	}
	if body.Priority == "" {
		body.Priority = constant.TaskPriorityMedium
	}

	task := model.Task{
		ProjectID:   body.ProjectID,
		Name:        body.Name,
		Description: body.Description,
		Status:      body.Status,
		Priority:    body.Priority,
		StartDate:   body.StartDate,
		DueDate:     body.DueDate,
	}

	created, err := tc.app.Repository.Task.Create(ctx, nil, &task, body.AssigneeIds, body.DependencyIds)
	if err != nil {
		tc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to create task", util.GenerateErrorMessages(err), nil)
		return
	}

	tc.warnOnDependencyCycle(ctx, created.ProjectID)

	util.ResponseSuccess(ctx, gin.H{
		"taskId": created.ID,
	})
}

func (tc TaskController) GetTaskById(ctx *gin.Context) {
	taskId := ctx.Params.ByName("taskId")
	if taskId == "" {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Task id is required", util.GenerateErrorMessages(errors.New(ErrTaskIdRequired), "taskId"), nil)
		return
	}

	task, err := tc.app.Repository.Task.GetById(ctx, nil, taskId)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Task not found", util.GenerateErrorMessages(errors.New(ErrTaskNotFound)), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"task": toTaskDetail(*task),
	})
}

// GetTaskDependencies resolves a task's transitive dependency closure from
// its project's dependency graph, reporting whether the graph contains a
// cycle. Cycles are allowed on write, so readers need to know.
func (tc TaskController) GetTaskDependencies(ctx *gin.Context) {
	taskId := ctx.Params.ByName("taskId")
	if taskId == "" {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Task id is required", util.GenerateErrorMessages(errors.New(ErrTaskIdRequired), "taskId"), nil)
		return
	}

	task, err := tc.app.Repository.Task.GetById(ctx, nil, taskId)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Task not found", util.GenerateErrorMessages(errors.New(ErrTaskNotFound)), nil)
		return
	}

	graph, err := tc.app.Repository.Task.DependencyGraph(ctx, nil, task.ProjectID)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to resolve dependencies", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"taskId":                  task.ID,
		"direct_dependencies":     graph.Dependencies(task.ID),
		"transitive_dependencies": graph.TransitiveDependencies(task.ID),
		"project_graph_has_cycle": graph.HasCycle(),
	})
}

type GetTasksRequest struct {
	Page      uint                  `json:"page" form:"page" binding:"omitempty"`
	PageSize  uint                  `json:"pageSize" form:"pageSize" binding:"omitempty"`
	ProjectID string                `json:"project" form:"project" binding:"omitempty"`
	Status    constant.TaskStatus   `json:"status" form:"status" binding:"omitempty,oneof=pending in_progress completed blocked"`
	Priority  constant.TaskPriority `json:"priority" form:"priority" binding:"omitempty,oneof=low medium high critical"`
}

func (tc TaskController) GetTaskList(ctx *gin.Context) {
	var params GetTasksRequest

	if err := ctx.ShouldBindQuery(&params); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	params.Page, params.PageSize = util.NormalizePage(params.Page, params.PageSize)

	filter := repository.TaskFilter{
		ProjectID: params.ProjectID,
		Status:    params.Status,
		Priority:  params.Priority,
	}
	tasks, totalCount, err := tc.app.Repository.Task.List(ctx, nil, filter, params.Page, params.PageSize)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to get task list", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"total":     totalCount,
		"tasks":     toTaskListItems(tasks),
		"page":      params.Page,
		"pageSize":  params.PageSize,
		"totalPage": util.CalculateTotalPage(totalCount, params.PageSize),
	})
}

// GetOwnTaskList backs /tasks/my_tasks: tasks the caller is assigned to.
func (tc TaskController) GetOwnTaskList(ctx *gin.Context) {
	var params GetTasksRequest

	user, err := tc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := ctx.ShouldBindQuery(&params); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	params.Page, params.PageSize = util.NormalizePage(params.Page, params.PageSize)

	filter := repository.TaskFilter{
		ProjectID: params.ProjectID,
		Status:    params.Status,
		Priority:  params.Priority,
	}
	tasks, totalCount, err := tc.app.Repository.Task.ListForUser(ctx, nil, user, filter, params.Page, params.PageSize)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to get task list", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"total":     totalCount,
		"tasks":     toTaskListItems(tasks),
		"page":      params.Page,
		"pageSize":  params.PageSize,
		"totalPage": util.CalculateTotalPage(totalCount, params.PageSize),
	})
}

func (tc TaskController) UpdateTask(ctx *gin.Context) {
	taskId := ctx.Params.ByName("taskId")
	if taskId == "" {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Task id is required", util.GenerateErrorMessages(errors.New(ErrTaskIdRequired), "taskId"), nil)
		return
	}

	type Request struct {
		Name          *string                `json:"name" form:"name" binding:"omitempty,max=255"`
		Description   *string                `json:"description" form:"description"`
		Status        *constant.TaskStatus   `json:"status" form:"status" binding:"omitempty,oneof=pending in_progress completed blocked"`
		Priority      *constant.TaskPriority `json:"priority" form:"priority" binding:"omitempty,oneof=low medium high critical"`
		StartDate     *time.Time             `json:"start_date" form:"start_date" time_format:"2006-01-02"`
		DueDate       *time.Time             `json:"due_date" form:"due_date" time_format:"2006-01-02"`
		AssigneeIds   []string               `json:"assignee_ids" form:"assignee_ids"`
		DependencyIds []string               `json:"dependency_ids" form:"dependency_ids"`
	}
	var body Request

	if err := ctx.ShouldBind(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	updates := map[string]any{}
	if body.Name != nil {
		updates["name"] = *body.Name
	}
	if body.Description != nil {
		updates["description"] = *body.Description
	}
	if body.Status != nil {
		updates["status"] = *body.Status
	}
	if body.Priority != nil {
		updates["priority"] = *body.Priority
	}
	if body.StartDate != nil {
		updates["start_date"] = *body.StartDate
	}
	if body.DueDate != nil {
		updates["due_date"] = *body.DueDate
	}

	if err := tc.app.Repository.Task.Update(ctx, nil, taskId, updates, body.AssigneeIds, body.DependencyIds); err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Failed to update task", util.GenerateErrorMessages(err), nil)
		return
	}

	if body.DependencyIds != nil {
		if task, err := tc.app.Repository.Task.GetById(ctx, nil, taskId); err == nil {
			tc.warnOnDependencyCycle(ctx, task.ProjectID)
		}
	}

	util.ResponseSuccess(ctx, nil)
}

func (tc TaskController) DeleteTask(ctx *gin.Context) {
	taskId := ctx.Params.ByName("taskId")
	if taskId == "" {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Task id is required", util.GenerateErrorMessages(errors.New(ErrTaskIdRequired), "taskId"), nil)
		return
	}

	if err := tc.app.Repository.Task.Delete(ctx, nil, taskId); err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to delete task", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, nil)
}

func (tc TaskController) warnOnDependencyCycle(ctx *gin.Context, projectId string) {
	graph, err := tc.app.Repository.Task.DependencyGraph(ctx, nil, projectId)
	if err != nil {
		tc.app.Logger.Debugf("Failed to load dependency graph for project %s: %v", projectId, err)
		return
	}

	if graph.HasCycle() {
		tc.app.Logger.Warnf("Project %s task dependency graph contains a cycle", projectId)
	}
}
