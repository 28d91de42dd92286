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

type SafetyController struct {
	*baseController
}

const (
	ErrIncidentIdRequired = "safety incident ID is required"
	ErrIncidentNotFound   = "safety incident not found"
)

// CreateIncident stamps reported_by from the JWT principal; body values for
// it are ignored.
func (sc SafetyController) CreateIncident(ctx *gin.Context) {
	type Request struct {
		ProjectID      string                  `json:"project_id" form:"project_id" binding:"required"`
		Title          string                  `json:"title" form:"title" binding:"required,strNotEmpty,max=255"`
		Description    string                  `json:"description" form:"description" binding:"required"`
		DateOccurred   time.Time               `json:"date_occurred" form:"date_occurred" binding:"required"`
		LocationInSite string                  `json:"location_in_site" form:"location_in_site" binding:"required"`
		Severity       constant.SafetySeverity `json:"severity" form:"severity" binding:"required,oneof=low medium high critical"`
		Status         constant.SafetyStatus   `json:"status" form:"status" binding:"omitempty,oneof=reported under_investigation resolved"`
		AssignedToID   *string                 `json:"assigned_to_id" form:"assigned_to_id"`
		ImageIds       []string                `json:"image_ids" form:"image_ids"`
	}
	var body Request

	user, err := sc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := ctx.ShouldBind(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	if body.Status == "" {
		body.Status = constant.SafetyStatusReported
	}

	incident := model.Safety{
		ProjectID:      body.ProjectID,
		Title:          body.Title,
		Description:    body.Description,
		DateOccurred:   body.DateOccurred,
		LocationInSite: body.LocationInSite,
		Severity:       body.Severity,
		Status:         body.Status,
		ReportedByID:   user.ID,
		AssignedToID:   body.AssignedToID,
	}

	created, err := sc.app.Repository.Safety.Create(ctx, nil, &incident, body.ImageIds)
	if err != nil {
		sc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to create safety incident", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"incidentId": created.ID,
	})
}

func (sc SafetyController) GetIncidentById(ctx *gin.Context) {
	incidentId := ctx.Params.ByName("incidentId")
	if incidentId == "" {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Incident id is required", util.GenerateErrorMessages(errors.New(ErrIncidentIdRequired), "incidentId"), nil)
		return
	}

	incident, err := sc.app.Repository.Safety.GetById(ctx, nil, incidentId)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Safety incident not found", util.GenerateErrorMessages(errors.New(ErrIncidentNotFound)), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"safety_incident": sc.toSafetyItem(ctx, *incident),
	})
}

func (sc SafetyController) GetIncidentList(ctx *gin.Context) {
	type Params struct {
		Page      uint                    `json:"page" form:"page" binding:"omitempty"`
		PageSize  uint                    `json:"pageSize" form:"pageSize" binding:"omitempty"`
		ProjectID string                  `json:"project" form:"project" binding:"omitempty"`
		Severity  constant.SafetySeverity `json:"severity" form:"severity" binding:"omitempty,oneof=low medium high critical"`
		Status    constant.SafetyStatus   `json:"status" form:"status" binding:"omitempty,oneof=reported under_investigation resolved"`
	}
	var params Params

	if err := ctx.ShouldBindQuery(&params); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	params.Page, params.PageSize = util.NormalizePage(params.Page, params.PageSize)

	filter := repository.SafetyFilter{
		ProjectID: params.ProjectID,
		Severity:  params.Severity,
		Status:    params.Status,
	}
	incidents, totalCount, err := sc.app.Repository.Safety.List(ctx, nil, filter, params.Page, params.PageSize)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to get safety incident list", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"total":            totalCount,
		"safety_incidents": sc.toSafetyItems(ctx, incidents),
		"page":             params.Page,
		"pageSize":         params.PageSize,
		"totalPage":        util.CalculateTotalPage(totalCount, params.PageSize),
	})
}

func (sc SafetyController) UpdateIncident(ctx *gin.Context) {
	incidentId := ctx.Params.ByName("incidentId")
	if incidentId == "" {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Incident id is required", util.GenerateErrorMessages(errors.New(ErrIncidentIdRequired), "incidentId"), nil)
		return
	}

	type Request struct {
		Title           *string                  `json:"title" form:"title" binding:"omitempty,max=255"`
		Description     *string                  `json:"description" form:"description"`
		DateOccurred    *time.Time               `json:"date_occurred" form:"date_occurred"`
		LocationInSite  *string                  `json:"location_in_site" form:"location_in_site"`
		Severity        *constant.SafetySeverity `json:"severity" form:"severity" binding:"omitempty,oneof=low medium high critical"`
		Status          *constant.SafetyStatus   `json:"status" form:"status" binding:"omitempty,oneof=reported under_investigation resolved"`
		AssignedToID    *string                  `json:"assigned_to_id" form:"assigned_to_id"`
		ResolutionNotes *string                  `json:"resolution_notes" form:"resolution_notes"`
	}
	var body Request

	if err := ctx.ShouldBind(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	updates := map[string]any{}
	if body.Title != nil {
		updates["title"] = *body.Title
	}
	if body.Description != nil {
		updates["description"] = *body.Description
	}
	if body.DateOccurred != nil {
		updates["date_occurred"] = *body.DateOccurred
	}
	if body.LocationInSite != nil {
		updates["location_in_site"] = *body.LocationInSite
	}
	if body.Severity != nil {
		updates["severity"] = *body.Severity
	}
	if body.Status != nil {
		updates["status"] = *body.Status
	}
	if body.AssignedToID != nil {
		updates["assigned_to_id"] = *body.AssignedToID
	}
	if body.ResolutionNotes != nil {
		updates["resolution_notes"] = *body.ResolutionNotes
	}

	if len(updates) == 0 {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Nothing to update", util.GenerateErrorMessages(errors.New("empty update")), nil)
		return
	}

	if err := sc.app.Repository.Safety.Update(ctx, nil, incidentId, updates); err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Failed to update safety incident", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, nil)
}

func (sc SafetyController) DeleteIncident(ctx *gin.Context) {
	incidentId := ctx.Params.ByName("incidentId")
	if incidentId == "" {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Incident id is required", util.GenerateErrorMessages(errors.New(ErrIncidentIdRequired), "incidentId"), nil)
		return
	}

	if err := sc.app.Repository.Safety.Delete(ctx, nil, incidentId); err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to delete safety incident", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, nil)
}
