package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ujenziiq/ujenziiq-go/internal/constant"
	"github.com/ujenziiq/ujenziiq-go/internal/model"
	"github.com/ujenziiq/ujenziiq-go/internal/policy"
	"github.com/ujenziiq/ujenziiq-go/internal/util"
)

type SMSLogController struct {
	*baseController
}

const (
	ErrSMSLogIdRequired = "SMS log ID is required"
	ErrSMSLogNotFound   = "SMS log not found"
	ErrSMSLogAdminOnly  = "SMS logs are restricted to admins"
)

// CreateSMSLog records a delivery attempt made outside the notifier, e.g. a
// gateway callback or a manual send. Any authenticated principal may write.
func (sc SMSLogController) CreateSMSLog(ctx *gin.Context) {
	var body model.SMSLog

	if err := ctx.ShouldBind(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	if body.Status == "" {
		body.Status = constant.SMSStatusPending
	}

	created, err := sc.app.Repository.SMSLog.Create(ctx, nil, &body)
	if err != nil {
		sc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to create SMS log", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"smsLogId": created.ID,
	})
}

// GetSMSLogList is admin-only. Most rows are written by the notification
// fan-out rather than through the create endpoint.
func (sc SMSLogController) GetSMSLogList(ctx *gin.Context) {
	type Params struct {
		Page     uint               `json:"page" form:"page" binding:"omitempty"`
		PageSize uint               `json:"pageSize" form:"pageSize" binding:"omitempty"`
		UserID   string             `json:"user" form:"user" binding:"omitempty"`
		Status   constant.SMSStatus `json:"status" form:"status" binding:"omitempty,oneof=pending sent failed"`
	}
	var params Params

	user, err := sc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err), nil)
		return
	}

	if !policy.CanReadAdminOnly(user) {
		util.ResponseFailed(ctx, http.StatusForbidden, "Forbidden", util.GenerateErrorMessages(errors.New(ErrSMSLogAdminOnly)), nil)
		return
	}

	if err := ctx.ShouldBindQuery(&params); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	params.Page, params.PageSize = util.NormalizePage(params.Page, params.PageSize)

	logs, totalCount, err := sc.app.Repository.SMSLog.List(ctx, nil, params.UserID, params.Status, params.Page, params.PageSize)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to get SMS log list", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"total":     totalCount,
		"sms_logs":  toSMSLogItems(logs),
		"page":      params.Page,
		"pageSize":  params.PageSize,
		"totalPage": util.CalculateTotalPage(totalCount, params.PageSize),
	})
}

func (sc SMSLogController) GetSMSLogById(ctx *gin.Context) {
	logId := ctx.Params.ByName("logId")
	if logId == "" {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Log id is required", util.GenerateErrorMessages(errors.New(ErrSMSLogIdRequired), "logId"), nil)
		return
	}

	user, err := sc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err), nil)
		return
	}

	if !policy.CanReadAdminOnly(user) {
		util.ResponseFailed(ctx, http.StatusForbidden, "Forbidden", util.GenerateErrorMessages(errors.New(ErrSMSLogAdminOnly)), nil)
		return
	}

	log, err := sc.app.Repository.SMSLog.GetById(ctx, nil, logId)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "SMS log not found", util.GenerateErrorMessages(errors.New(ErrSMSLogNotFound)), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"sms_log": SMSLogItem{SMSLog: *log, User: log.User.MiniPtr()},
	})
}
