package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ujenziiq/ujenziiq-go/internal/constant"
	"github.com/ujenziiq/ujenziiq-go/internal/mailer"
	"github.com/ujenziiq/ujenziiq-go/internal/model"
	"github.com/ujenziiq/ujenziiq-go/internal/util"
)

type UserController struct {
	*baseController
}

const (
	ErrUserIdRequired = "user ID is required"
	ErrUserNotFound   = "user not found"
)

// Register creates an account. This is the only unauthenticated write.
func (uc UserController) Register(ctx *gin.Context) {
	type Request struct {
		Email                   string            `json:"email" form:"email" binding:"required,email"`
		Username                string            `json:"username" form:"username" binding:"required,strNotEmpty,max=150"`
		Password                string            `json:"password" form:"password" binding:"required,min=8"`
		FirstName               string            `json:"first_name" form:"first_name" binding:"required"`
		LastName                string            `json:"last_name" form:"last_name" binding:"required"`
		UserType                constant.UserType `json:"user_type" form:"user_type" binding:"omitempty,oneof=admin project_manager site_engineer contractor foreman worker client supplier"`
		PhoneNumber             string            `json:"phone_number" form:"phone_number" binding:"omitempty,max=15"`
		Organization            string            `json:"organization" form:"organization" binding:"omitempty,max=100"`
		Position                string            `json:"position" form:"position" binding:"omitempty,max=100"`
		ReceiveSMSNotifications bool              `json:"receive_sms_notifications" form:"receive_sms_notifications"`
	}
	var body Request

	if err := ctx.ShouldBind(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	if body.UserType == "" {
		body.UserType = constant.UserTypeWorker
	}

	hashed, err := util.HashPassword(body.Password)
	if err != nil {
		uc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to register", util.GenerateErrorMessages(err), nil)
		return
	}

	newUser := model.User{
		Email:                   body.Email,
		Username:                body.Username,
		Password:                hashed,
		FirstName:               body.FirstName,
		LastName:                body.LastName,
		UserType:                body.UserType,
		PhoneNumber:             body.PhoneNumber,
		Organization:            body.Organization,
		Position:                body.Position,
		ReceiveSMSNotifications: body.ReceiveSMSNotifications,
	}

	if err := uc.app.Repository.User.CheckDupAndCreate(ctx, nil, &newUser); err != nil {
		uc.app.Logger.Debugf("Register failed: %v", err)
		util.ResponseFailed(ctx, http.StatusConflict, "Failed to register", util.GenerateErrorMessages(err, "email"), nil)
		return
	}

	go uc.sendWelcomeEmail(newUser.Username, newUser.Email)

	util.ResponseSuccess(ctx, gin.H{
		"user": newUser,
	})
}

func (uc UserController) sendWelcomeEmail(username, email string) {
	if _, err := uc.app.Mailer.Send(mailer.WELCOME_TEMPLATE, username, email, gin.H{
		"Username": username,
	}); err != nil {
		uc.app.Logger.Errorf("Failed to send welcome email to %s: %v", email, err)
	}
}

// Me returns the authenticated user's own profile.
func (uc UserController) Me(ctx *gin.Context) {
	authUser, err := uc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err), nil)
		return
	}

	user, err := uc.app.Repository.User.GetById(ctx, nil, authUser.ID)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "User not found", util.GenerateErrorMessages(errors.New(ErrUserNotFound)), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"user": user,
	})
}

func (uc UserController) GetUserById(ctx *gin.Context) {
	userId := ctx.Params.ByName("userId")
	if userId == "" {
		util.ResponseFailed(ctx, http.StatusBadRequest, "User id is required", util.GenerateErrorMessages(errors.New(ErrUserIdRequired), "userId"), nil)
		return
	}

	user, err := uc.app.Repository.User.GetById(ctx, nil, userId)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "User not found", util.GenerateErrorMessages(errors.New(ErrUserNotFound)), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"user": user,
	})
}

type GetUsersRequest struct {
	Page     uint              `json:"page" form:"page" binding:"omitempty"`
	PageSize uint              `json:"pageSize" form:"pageSize" binding:"omitempty"`
	UserType constant.UserType `json:"user_type" form:"user_type" binding:"omitempty,oneof=admin project_manager site_engineer contractor foreman worker client supplier"`
}

// GetUserList also serves /users/by_user_type with the user_type query set.
func (uc UserController) GetUserList(ctx *gin.Context) {
	var params GetUsersRequest

	if err := ctx.ShouldBindQuery(&params); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	params.Page, params.PageSize = util.NormalizePage(params.Page, params.PageSize)

	users, totalCount, err := uc.app.Repository.User.List(ctx, nil, params.UserType, params.Page, params.PageSize)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to get user list", util.GenerateErrorMessages(err), nil)
		return
	}

	if len(users) == 0 {
		users = []model.User{}
	}

	util.ResponseSuccess(ctx, gin.H{
		"total":     totalCount,
		"users":     users,
		"page":      params.Page,
		"pageSize":  params.PageSize,
		"totalPage": util.CalculateTotalPage(totalCount, params.PageSize),
	})
}

func (uc UserController) UpdateUser(ctx *gin.Context) {
	userId := ctx.Params.ByName("userId")
	if userId == "" {
		util.ResponseFailed(ctx, http.StatusBadRequest, "User id is required", util.GenerateErrorMessages(errors.New(ErrUserIdRequired), "userId"), nil)
		return
	}

	type Request struct {
		FirstName               *string `json:"first_name" form:"first_name"`
		LastName                *string `json:"last_name" form:"last_name"`
		PhoneNumber             *string `json:"phone_number" form:"phone_number" binding:"omitempty,max=15"`
		Organization            *string `json:"organization" form:"organization" binding:"omitempty,max=100"`
		Position                *string `json:"position" form:"position" binding:"omitempty,max=100"`
		ProfileImage            *string `json:"profile_image" form:"profile_image"`
		ReceiveSMSNotifications *bool   `json:"receive_sms_notifications" form:"receive_sms_notifications"`
	}
	var body Request

	if err := ctx.ShouldBind(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	updates := map[string]any{}
	if body.FirstName != nil {
		updates["first_name"] = *body.FirstName
	}
	if body.LastName != nil {
		updates["last_name"] = *body.LastName
	}
	if body.PhoneNumber != nil {
		updates["phone_number"] = *body.PhoneNumber
	}
	if body.Organization != nil {
		updates["organization"] = *body.Organization
	}
	if body.Position != nil {
		updates["position"] = *body.Position
	}
	if body.ProfileImage != nil {
		updates["profile_image"] = *body.ProfileImage
	}
	if body.ReceiveSMSNotifications != nil {
		updates["receive_sms_notifications"] = *body.ReceiveSMSNotifications
	}

	if len(updates) == 0 {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Nothing to update", util.GenerateErrorMessages(errors.New("empty update")), nil)
		return
	}

	if err := uc.app.Repository.User.Update(ctx, nil, userId, updates); err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Failed to update user", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, nil)
}

func (uc UserController) DeleteUser(ctx *gin.Context) {
	userId := ctx.Params.ByName("userId")
	if userId == "" {
		util.ResponseFailed(ctx, http.StatusBadRequest, "User id is required", util.GenerateErrorMessages(errors.New(ErrUserIdRequired), "userId"), nil)
		return
	}

	if err := uc.app.Repository.User.Delete(ctx, nil, userId); err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to delete user", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, nil)
}
