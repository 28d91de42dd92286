package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ujenziiq/ujenziiq-go/internal/model"
	"github.com/ujenziiq/ujenziiq-go/internal/policy"
	"github.com/ujenziiq/ujenziiq-go/internal/repository"
	"github.com/ujenziiq/ujenziiq-go/internal/util"
)

type MessageController struct {
	*baseController
}

const (
	ErrMessageIdRequired  = "message ID is required"
	ErrMessageNotFound    = "message not found"
	ErrNotMessageReceiver = "only the recipient or a project team member may mark a message read"
)

// SendMessage stamps sender from the JWT principal. A group message goes to
// the whole project team, so any body-supplied recipient is dropped.
func (mc MessageController) SendMessage(ctx *gin.Context) {
	type Request struct {
		ProjectID       string  `json:"project_id" form:"project_id" binding:"required"`
		RecipientID     *string `json:"recipient_id" form:"recipient_id"`
		Content         string  `json:"content" form:"content" binding:"required,strNotEmpty"`
		ParentMessageID *string `json:"parent_message_id" form:"parent_message_id"`
		IsGroupMessage  bool    `json:"is_group_message" form:"is_group_message"`
	}
	var body Request

	user, err := mc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := ctx.ShouldBind(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	if body.IsGroupMessage {
		body.RecipientID = nil
	}

	message := model.Message{
		SenderID:       user.ID,
		RecipientID:    body.RecipientID,
		ProjectID:      body.ProjectID,
		Content:        body.Content,
		ParentID:       body.ParentMessageID,
		IsGroupMessage: body.IsGroupMessage,
	}

	created, err := mc.app.Repository.Message.Create(ctx, nil, &message)
	if err != nil {
		mc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to send message", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"messageId": created.ID,
	})
}

func (mc MessageController) GetMessageById(ctx *gin.Context) {
	messageId := ctx.Params.ByName("messageId")
	if messageId == "" {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Message id is required", util.GenerateErrorMessages(errors.New(ErrMessageIdRequired), "messageId"), nil)
		return
	}

	message, err := mc.app.Repository.Message.GetById(ctx, nil, messageId)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Message not found", util.GenerateErrorMessages(errors.New(ErrMessageNotFound)), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"message": toMessageItem(*message),
	})
}

// GetMessageList returns messages the caller may see: sent, received, or
// group messages on projects they belong to. Oldest first.
func (mc MessageController) GetMessageList(ctx *gin.Context) {
	type Params struct {
		Page           uint   `json:"page" form:"page" binding:"omitempty"`
		PageSize       uint   `json:"pageSize" form:"pageSize" binding:"omitempty"`
		ProjectID      string `json:"project" form:"project" binding:"omitempty"`
		IsGroupMessage *bool  `json:"is_group_message" form:"is_group_message" binding:"omitempty"`
	}
	var params Params

	user, err := mc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := ctx.ShouldBindQuery(&params); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	params.Page, params.PageSize = util.NormalizePage(params.Page, params.PageSize)

	filter := repository.MessageFilter{
		ProjectID:      params.ProjectID,
		IsGroupMessage: params.IsGroupMessage,
	}
	messages, totalCount, err := mc.app.Repository.Message.ListForUser(ctx, nil, user, filter, params.Page, params.PageSize)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to get message list", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"total":     totalCount,
		"messages":  toMessageItems(messages),
		"page":      params.Page,
		"pageSize":  params.PageSize,
		"totalPage": util.CalculateTotalPage(totalCount, params.PageSize),
	})
}

// MarkAsRead flips is_read. Allowed for the direct recipient, or for any
// project team member when the message is a group message. Anyone else gets
// 403 and the flag stays untouched.
func (mc MessageController) MarkAsRead(ctx *gin.Context) {
	messageId := ctx.Params.ByName("messageId")
	if messageId == "" {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Message id is required", util.GenerateErrorMessages(errors.New(ErrMessageIdRequired), "messageId"), nil)
		return
	}

	user, err := mc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err), nil)
		return
	}

	message, err := mc.app.Repository.Message.GetById(ctx, nil, messageId)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Message not found", util.GenerateErrorMessages(errors.New(ErrMessageNotFound)), nil)
		return
	}

	isTeamMember := false
	if message.IsGroupMessage {
		isTeamMember, err = mc.app.Repository.Project.IsTeamMember(ctx, nil, message.ProjectID, user.ID)
		if err != nil {
			util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to check membership", util.GenerateErrorMessages(err), nil)
			return
		}
	}

	if !policy.CanMarkMessageRead(message, user.ID, isTeamMember) {
		util.ResponseFailed(ctx, http.StatusForbidden, "Forbidden", util.GenerateErrorMessages(errors.New(ErrNotMessageReceiver)), nil)
		return
	}

	if err := mc.app.Repository.Message.MarkAsRead(ctx, nil, messageId); err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to mark message as read", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"status": "message marked as read",
	})
}
