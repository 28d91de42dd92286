package controller

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ujenziiq/ujenziiq-go/internal/constant"
	"github.com/ujenziiq/ujenziiq-go/internal/model"
	"github.com/ujenziiq/ujenziiq-go/internal/policy"
	"github.com/ujenziiq/ujenziiq-go/internal/repository"
	"github.com/ujenziiq/ujenziiq-go/internal/util"
)

type NotificationController struct {
	*baseController
}

const (
	ErrNotificationIdRequired = "notification ID is required"
	ErrNotificationNotFound   = "notification not found"
	ErrNotNotificationOwner   = "only the notification's owner may mark it read"
)

// CreateNotification persists the row, then fans out email and SMS delivery
// in the background. Delivery failures never fail the request.
func (nc NotificationController) CreateNotification(ctx *gin.Context) {
	var body model.Notification

	if err := ctx.ShouldBind(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	created, err := nc.app.Repository.Notification.Create(ctx, nil, &body)
	if err != nil {
		nc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to create notification", util.GenerateErrorMessages(err), nil)
		return
	}

	go nc.app.Notifier.Dispatch(context.Background(), created)

	util.ResponseSuccess(ctx, gin.H{
		"notificationId": created.ID,
	})
}

func (nc NotificationController) GetNotificationById(ctx *gin.Context) {
	notificationId := ctx.Params.ByName("notificationId")
	if notificationId == "" {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Notification id is required", util.GenerateErrorMessages(errors.New(ErrNotificationIdRequired), "notificationId"), nil)
		return
	}

	user, err := nc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err), nil)
		return
	}

	notification, err := nc.app.Repository.Notification.GetById(ctx, nil, notificationId)
	if err != nil || notification.UserID != user.ID {
		util.ResponseFailed(ctx, http.StatusNotFound, "Notification not found", util.GenerateErrorMessages(errors.New(ErrNotificationNotFound)), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"notification": notification,
	})
}

// GetNotificationList returns the caller's own notifications, newest first.
func (nc NotificationController) GetNotificationList(ctx *gin.Context) {
	type Params struct {
		Page             uint                      `json:"page" form:"page" binding:"omitempty"`
		PageSize         uint                      `json:"pageSize" form:"pageSize" binding:"omitempty"`
		IsRead           *bool                     `json:"is_read" form:"is_read" binding:"omitempty"`
		NotificationType constant.NotificationType `json:"notification_type" form:"notification_type" binding:"omitempty"`
	}
	var params Params

	user, err := nc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := ctx.ShouldBindQuery(&params); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	params.Page, params.PageSize = util.NormalizePage(params.Page, params.PageSize)

	filter := repository.NotificationFilter{
		IsRead:           params.IsRead,
		NotificationType: params.NotificationType,
	}
	notifications, totalCount, err := nc.app.Repository.Notification.ListForUser(ctx, nil, user, filter, params.Page, params.PageSize)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to get notification list", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"total":         totalCount,
		"notifications": toNotificationItems(notifications),
		"page":          params.Page,
		"pageSize":      params.PageSize,
		"totalPage":     util.CalculateTotalPage(totalCount, params.PageSize),
	})
}

// MarkAsRead flips is_read for a single notification the caller owns.
func (nc NotificationController) MarkAsRead(ctx *gin.Context) {
	notificationId := ctx.Params.ByName("notificationId")
	if notificationId == "" {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Notification id is required", util.GenerateErrorMessages(errors.New(ErrNotificationIdRequired), "notificationId"), nil)
		return
	}

	user, err := nc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err), nil)
		return
	}

	notification, err := nc.app.Repository.Notification.GetById(ctx, nil, notificationId)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Notification not found", util.GenerateErrorMessages(errors.New(ErrNotificationNotFound)), nil)
		return
	}

	if !policy.CanMarkNotificationRead(notification, user.ID) {
		util.ResponseFailed(ctx, http.StatusForbidden, "Forbidden", util.GenerateErrorMessages(errors.New(ErrNotNotificationOwner)), nil)
		return
	}

	if err := nc.app.Repository.Notification.MarkAsRead(ctx, nil, notificationId); err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to mark notification as read", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"status": "notification marked as read",
	})
}

// MarkAllAsRead flips is_read on every unread notification the caller owns.
func (nc NotificationController) MarkAllAsRead(ctx *gin.Context) {
	user, err := nc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err), nil)
		return
	}

	updated, err := nc.app.Repository.Notification.MarkAllAsRead(ctx, nil, user.ID)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to mark notifications as read", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"status":  "all notifications marked as read",
		"updated": updated,
	})
}
