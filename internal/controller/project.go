package controller

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ujenziiq/ujenziiq-go/internal/constant"
	"github.com/ujenziiq/ujenziiq-go/internal/export"
	"github.com/ujenziiq/ujenziiq-go/internal/model"
	"github.com/ujenziiq/ujenziiq-go/internal/repository"
	"github.com/ujenziiq/ujenziiq-go/internal/util"
)

type ProjectController struct {
	*baseController
}

const (
	ErrProjectIdRequired = "project ID is required"
	ErrProjectNotFound   = "project not found"
)

func (pc ProjectController) CreateProject(ctx *gin.Context) {
	type Request struct {
		Name             string                 `json:"name" form:"name" binding:"required,strNotEmpty,max=255"`
		Description      string                 `json:"description" form:"description" binding:"required"`
		ProjectType      constant.ProjectType   `json:"project_type" form:"project_type" binding:"required,oneof=residential commercial industrial infrastructure renovation other"`
		Location         string                 `json:"location" form:"location" binding:"required"`
		GPSCoordinates   string                 `json:"gps_coordinates" form:"gps_coordinates"`
		StartDate        time.Time              `json:"start_date" form:"start_date" binding:"required" time_format:"2006-01-02"`
		ExpectedEnd      time.Time              `json:"expected_end_date" form:"expected_end_date" binding:"required" time_format:"2006-01-02"`
		Status           constant.ProjectStatus `json:"status" form:"status" binding:"omitempty,oneof=planning in_progress on_hold completed cancelled"`
		Budget           float64                `json:"budget" form:"budget" binding:"required"`
		ClientID         string                 `json:"client_id" form:"client_id" binding:"required"`
		ProjectManagerID string                 `json:"project_manager_id" form:"project_manager_id" binding:"required"`
		TeamMemberIds    []string               `json:"team_member_ids" form:"team_member_ids"`
	}
	var body Request

	if err := ctx.ShouldBind(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	if body.Status == "" {
		body.Status = constant.ProjectStatusPlanning
	}

	project := model.Project{
		Name:             body.Name,
		Description:      body.Description,
		ProjectType:      body.ProjectType,
		Location:         body.Location,
		GPSCoordinates:   body.GPSCoordinates,
		StartDate:        body.StartDate,
		ExpectedEnd:      body.ExpectedEnd,
		Status:           body.Status,
		Budget:           body.Budget,
		ClientID:         body.ClientID,
		ProjectManagerID: body.ProjectManagerID,
	}

	created, err := pc.app.Repository.Project.Create(ctx, nil, &project, body.TeamMemberIds)
	if err != nil {
		pc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to create project", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"projectId": created.ID,
		"slug":      created.Slug,
	})
}

func (pc ProjectController) GetProjectById(ctx *gin.Context) {
	projectId := ctx.Params.ByName("projectId")
	if projectId == "" {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Project id is required", util.GenerateErrorMessages(errors.New(ErrProjectIdRequired), "projectId"), nil)
		return
	}

	project, err := pc.app.Repository.Project.GetById(ctx, nil, projectId)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Project not found", util.GenerateErrorMessages(errors.New(ErrProjectNotFound)), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"project": pc.toProjectDetail(ctx, project),
	})
}

type GetProjectsRequest struct {
	Page        uint                     `json:"page" form:"page" binding:"omitempty"`
	PageSize    uint                     `json:"pageSize" form:"pageSize" binding:"omitempty"`
	Status      []constant.ProjectStatus `json:"status" form:"status" binding:"omitempty"`
	ProjectType constant.ProjectType     `json:"project_type" form:"project_type" binding:"omitempty,oneof=residential commercial industrial infrastructure renovation other"`
	Search      string                   `json:"search" form:"search" binding:"omitempty"`
}

func (pc ProjectController) GetProjectList(ctx *gin.Context) {
	var params GetProjectsRequest

	if err := ctx.ShouldBindQuery(&params); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	params.Page, params.PageSize = util.NormalizePage(params.Page, params.PageSize)

	filter := repositoryProjectFilter(params)
	projects, totalCount, err := pc.app.Repository.Project.List(ctx, nil, filter, params.Page, params.PageSize)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to get project list", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"total":     totalCount,
		"projects":  toProjectListItems(projects),
		"page":      params.Page,
		"pageSize":  params.PageSize,
		"totalPage": util.CalculateTotalPage(totalCount, params.PageSize),
		"search":    params.Search,
		"status":    params.Status,
	})
}

// GetOwnProjectList backs /projects/my_projects: projects the caller manages,
// owns as client, or belongs to as a team member.
func (pc ProjectController) GetOwnProjectList(ctx *gin.Context) {
	var params GetProjectsRequest

	user, err := pc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := ctx.ShouldBindQuery(&params); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	params.Page, params.PageSize = util.NormalizePage(params.Page, params.PageSize)

	filter := repositoryProjectFilter(params)
	projects, totalCount, err := pc.app.Repository.Project.ListForUser(ctx, nil, user, filter, params.Page, params.PageSize)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to get project list", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"total":     totalCount,
		"projects":  toProjectListItems(projects),
		"page":      params.Page,
		"pageSize":  params.PageSize,
		"totalPage": util.CalculateTotalPage(totalCount, params.PageSize),
		"search":    params.Search,
		"status":    params.Status,
	})
}

func (pc ProjectController) UpdateProject(ctx *gin.Context) {
	projectId := ctx.Params.ByName("projectId")
	if projectId == "" {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Project id is required", util.GenerateErrorMessages(errors.New(ErrProjectIdRequired), "projectId"), nil)
		return
	}

	type Request struct {
		Name             *string                 `json:"name" form:"name" binding:"omitempty,max=255"`
		Description      *string                 `json:"description" form:"description"`
		ProjectType      *constant.ProjectType   `json:"project_type" form:"project_type" binding:"omitempty,oneof=residential commercial industrial infrastructure renovation other"`
		Location         *string                 `json:"location" form:"location"`
		GPSCoordinates   *string                 `json:"gps_coordinates" form:"gps_coordinates"`
		StartDate        *time.Time              `json:"start_date" form:"start_date" time_format:"2006-01-02"`
		ExpectedEnd      *time.Time              `json:"expected_end_date" form:"expected_end_date" time_format:"2006-01-02"`
		ActualEnd        *time.Time              `json:"actual_end_date" form:"actual_end_date" time_format:"2006-01-02"`
		Status           *constant.ProjectStatus `json:"status" form:"status" binding:"omitempty,oneof=planning in_progress on_hold completed cancelled"`
		Budget           *float64                `json:"budget" form:"budget"`
		ClientID         *string                 `json:"client_id" form:"client_id"`
		ProjectManagerID *string                 `json:"project_manager_id" form:"project_manager_id"`
		TeamMemberIds    []string                `json:"team_member_ids" form:"team_member_ids"`
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
	if body.ProjectType != nil {
		updates["project_type"] = *body.ProjectType
	}
	if body.Location != nil {
		updates["location"] = *body.Location
	}
	if body.GPSCoordinates != nil {
		updates["gps_coordinates"] = *body.GPSCoordinates
	}
	if body.StartDate != nil {
		updates["start_date"] = *body.StartDate
	}
	if body.ExpectedEnd != nil {
		updates["expected_end_date"] = *body.ExpectedEnd
	}
	if body.ActualEnd != nil {
		updates["actual_end_date"] = *body.ActualEnd
	}
	if body.Status != nil {
		updates["status"] = *body.Status
	}
	if body.Budget != nil {
		updates["budget"] = *body.Budget
	}
	if body.ClientID != nil {
		updates["client_id"] = *body.ClientID
	}
	if body.ProjectManagerID != nil {
		updates["project_manager_id"] = *body.ProjectManagerID
	}

	if err := pc.app.Repository.Project.Update(ctx, nil, projectId, updates, body.TeamMemberIds); err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Failed to update project", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, nil)
}

func (pc ProjectController) DeleteProject(ctx *gin.Context) {
	projectId := ctx.Params.ByName("projectId")
	if projectId == "" {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Project id is required", util.GenerateErrorMessages(errors.New(ErrProjectIdRequired), "projectId"), nil)
		return
	}

	if err := pc.app.Repository.Project.Delete(ctx, nil, projectId); err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to delete project", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, nil)
}

// GetDashboard aggregates task progress and recent site activity for one
// project. Recomputed on every call.
func (pc ProjectController) GetDashboard(ctx *gin.Context) {
	projectId := ctx.Params.ByName("projectId")
	if projectId == "" {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Project id is required", util.GenerateErrorMessages(errors.New(ErrProjectIdRequired), "projectId"), nil)
		return
	}

	dashboard, err := pc.app.Repository.Project.GetDashboard(ctx, nil, projectId)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Project not found", util.GenerateErrorMessages(errors.New(ErrProjectNotFound)), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"project": pc.toProjectDetail(ctx, dashboard.Project),
		"task_summary": gin.H{
			"pending":               dashboard.Pending,
			"completed":             dashboard.Completed,
			"completion_percentage": dashboard.Completion,
		},
		"recent_safety":    pc.toSafetyItems(ctx, dashboard.RecentSafety),
		"recent_materials": toResourceAllocationItems(dashboard.RecentResource),
	})
}

// ExportProject streams the project's tasks and resource allocations as an
// xlsx workbook.
func (pc ProjectController) ExportProject(ctx *gin.Context) {
	projectId := ctx.Params.ByName("projectId")
	if projectId == "" {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Project id is required", util.GenerateErrorMessages(errors.New(ErrProjectIdRequired), "projectId"), nil)
		return
	}

	project, err := pc.app.Repository.Project.GetById(ctx, nil, projectId)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Project not found", util.GenerateErrorMessages(errors.New(ErrProjectNotFound)), nil)
		return
	}

	workbook, err := export.ProjectWorkbook(project)
	if err != nil {
		pc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to export project", util.GenerateErrorMessages(err), nil)
		return
	}

	filename := fmt.Sprintf("%s-export.xlsx", project.Slug)
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	ctx.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", workbook)
}

func repositoryProjectFilter(params GetProjectsRequest) repository.ProjectFilter {
	return repository.ProjectFilter{
		Status:      params.Status,
		ProjectType: params.ProjectType,
		Search:      params.Search,
	}
}
