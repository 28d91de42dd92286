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

type ProgressReportController struct {
	*baseController
}

const (
	ErrReportIdRequired = "progress report ID is required"
	ErrReportNotFound   = "progress report not found"
)

// CreateReport stamps submitted_by from the JWT principal.
func (rc ProgressReportController) CreateReport(ctx *gin.Context) {
	type Request struct {
		ProjectID        string              `json:"project_id" form:"project_id" binding:"required"`
		ReportType       constant.ReportType `json:"report_type" form:"report_type" binding:"required,oneof=daily weekly monthly special"`
		Title            string              `json:"title" form:"title" binding:"required,strNotEmpty,max=255"`
		Summary          string              `json:"summary" form:"summary" binding:"required"`
		PeriodStart      time.Time           `json:"period_start" form:"period_start" binding:"required" time_format:"2006-01-02"`
		PeriodEnd        time.Time           `json:"period_end" form:"period_end" binding:"required" time_format:"2006-01-02"`
		MaterialsUsed    string              `json:"materials_used" form:"materials_used"`
		Challenges       string              `json:"challenges" form:"challenges"`
		NextSteps        string              `json:"next_steps" form:"next_steps"`
		CompletedTaskIds []string            `json:"completed_task_ids" form:"completed_task_ids"`
		ImageIds         []string            `json:"image_ids" form:"image_ids"`
	}
	var body Request

	user, err := rc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := ctx.ShouldBind(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	report := model.ProgressReport{
		ProjectID:     body.ProjectID,
		ReportType:    body.ReportType,
		Title:         body.Title,
		Summary:       body.Summary,
		PeriodStart:   body.PeriodStart,
		PeriodEnd:     body.PeriodEnd,
		MaterialsUsed: body.MaterialsUsed,
		Challenges:    body.Challenges,
		NextSteps:     body.NextSteps,
		SubmittedByID: user.ID,
	}

	created, err := rc.app.Repository.ProgressReport.Create(ctx, nil, &report, body.CompletedTaskIds, body.ImageIds)
	if err != nil {
		rc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to create progress report", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"reportId": created.ID,
	})
}

func (rc ProgressReportController) GetReportById(ctx *gin.Context) {
	reportId := ctx.Params.ByName("reportId")
	if reportId == "" {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Report id is required", util.GenerateErrorMessages(errors.New(ErrReportIdRequired), "reportId"), nil)
		return
	}

	report, err := rc.app.Repository.ProgressReport.GetById(ctx, nil, reportId)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Progress report not found", util.GenerateErrorMessages(errors.New(ErrReportNotFound)), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"progress_report": rc.toProgressReportItem(ctx, *report),
	})
}

func (rc ProgressReportController) GetReportList(ctx *gin.Context) {
	type Params struct {
		Page       uint                `json:"page" form:"page" binding:"omitempty"`
		PageSize   uint                `json:"pageSize" form:"pageSize" binding:"omitempty"`
		ProjectID  string              `json:"project" form:"project" binding:"omitempty"`
		ReportType constant.ReportType `json:"report_type" form:"report_type" binding:"omitempty,oneof=daily weekly monthly special"`
	}
	var params Params

	if err := ctx.ShouldBindQuery(&params); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	params.Page, params.PageSize = util.NormalizePage(params.Page, params.PageSize)

	filter := repository.ProgressReportFilter{
		ProjectID:  params.ProjectID,
		ReportType: params.ReportType,
	}
	reports, totalCount, err := rc.app.Repository.ProgressReport.List(ctx, nil, filter, params.Page, params.PageSize)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to get progress report list", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"total":            totalCount,
		"progress_reports": rc.toProgressReportItems(ctx, reports),
		"page":             params.Page,
		"pageSize":         params.PageSize,
		"totalPage":        util.CalculateTotalPage(totalCount, params.PageSize),
	})
}

func (rc ProgressReportController) UpdateReport(ctx *gin.Context) {
	reportId := ctx.Params.ByName("reportId")
	if reportId == "" {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Report id is required", util.GenerateErrorMessages(errors.New(ErrReportIdRequired), "reportId"), nil)
		return
	}

	type Request struct {
		Title         *string    `json:"title" form:"title" binding:"omitempty,max=255"`
		Summary       *string    `json:"summary" form:"summary"`
		PeriodStart   *time.Time `json:"period_start" form:"period_start" time_format:"2006-01-02"`
		PeriodEnd     *time.Time `json:"period_end" form:"period_end" time_format:"2006-01-02"`
		MaterialsUsed *string    `json:"materials_used" form:"materials_used"`
		Challenges    *string    `json:"challenges" form:"challenges"`
		NextSteps     *string    `json:"next_steps" form:"next_steps"`
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
	if body.Summary != nil {
		updates["summary"] = *body.Summary
	}
	if body.PeriodStart != nil {
		updates["period_start"] = *body.PeriodStart
	}
	if body.PeriodEnd != nil {
		updates["period_end"] = *body.PeriodEnd
	}
	if body.MaterialsUsed != nil {
		updates["materials_used"] = *body.MaterialsUsed
	}
	if body.Challenges != nil {
		updates["challenges"] = *body.Challenges
	}
	if body.NextSteps != nil {
		updates["next_steps"] = *body.NextSteps
	}

	if len(updates) == 0 {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Nothing to update", util.GenerateErrorMessages(errors.New("empty update")), nil)
		return
	}

	if err := rc.app.Repository.ProgressReport.Update(ctx, nil, reportId, updates); err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Failed to update progress report", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, nil)
}

func (rc ProgressReportController) DeleteReport(ctx *gin.Context) {
	reportId := ctx.Params.ByName("reportId")
	if reportId == "" {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Report id is required", util.GenerateErrorMessages(errors.New(ErrReportIdRequired), "reportId"), nil)
		return
	}

	if err := rc.app.Repository.ProgressReport.Delete(ctx, nil, reportId); err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to delete progress report", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, nil)
}
