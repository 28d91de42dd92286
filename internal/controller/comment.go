package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ujenziiq/ujenziiq-go/internal/constant"
	"github.com/ujenziiq/ujenziiq-go/internal/model"
	"github.com/ujenziiq/ujenziiq-go/internal/repository"
	"github.com/ujenziiq/ujenziiq-go/internal/util"
)

type CommentController struct {
	*baseController
}

const (
	ErrCommentIdRequired = "comment ID is required"
	ErrCommentNotFound   = "comment not found"
)

// CommentNode is a comment with its replies nested.
type CommentNode struct {
	model.Comment
	Author  *model.UserMini `json:"author"`
	Replies []CommentNode   `json:"replies"`
}

// BuildCommentTree shapes flat comment rows into reply trees. Roots keep
// input order. A visited set guards against cyclic parent references in bad
// data, so shaping always terminates; a comment inside a cycle is emitted as
// a root rather than dropped.
func BuildCommentTree(comments []model.Comment) []CommentNode {
	children := make(map[string][]model.Comment)
	byId := make(map[string]model.Comment, len(comments))
	for _, c := range comments {
		byId[c.ID] = c
		if c.ParentID != nil {
			children[*c.ParentID] = append(children[*c.ParentID], c)
		}
	}

	visited := make(map[string]bool, len(comments))

	var build func(c model.Comment) CommentNode
	build = func(c model.Comment) CommentNode {
		visited[c.ID] = true
		node := CommentNode{
			Comment: c,
			Author:  c.Author.MiniPtr(),
			Replies: []CommentNode{},
		}
		for _, child := range children[c.ID] {
			if visited[child.ID] {
				continue
			}
			node.Replies = append(node.Replies, build(child))
		}
		return node
	}

	roots := []CommentNode{}
	for _, c := range comments {
		if visited[c.ID] {
			continue
		}
		if c.ParentID == nil {
			roots = append(roots, build(c))
			continue
		}
		// Orphaned or cyclic parents surface the comment at top level.
		if _, ok := byId[*c.ParentID]; !ok {
			roots = append(roots, build(c))
		}
	}

	// Anything still unvisited sits on a pure parent cycle.
	for _, c := range comments {
		if !visited[c.ID] {
			roots = append(roots, build(c))
		}
	}

	return roots
}

// findCommentNode walks a built forest for the node with the given id.
func findCommentNode(nodes []CommentNode, id string) *CommentNode {
	for i := range nodes {
		if nodes[i].ID == id {
			return &nodes[i]
		}
		if found := findCommentNode(nodes[i].Replies, id); found != nil {
			return found
		}
	}
	return nil
}

// CreateComment stamps author from the JWT principal.
func (cc CommentController) CreateComment(ctx *gin.Context) {
	type Request struct {
		Content          string             `json:"content" form:"content" binding:"required,strNotEmpty"`
		CommentOn        constant.CommentOn `json:"comment_on" form:"comment_on" binding:"required,oneof=task project safety progress_report"`
		ProjectID        string             `json:"project_id" form:"project_id" binding:"required"`
		TaskID           *string            `json:"task_id" form:"task_id"`
		SafetyIncidentID *string            `json:"safety_incident_id" form:"safety_incident_id"`
		ParentCommentID  *string            `json:"parent_comment_id" form:"parent_comment_id"`
	}
	var body Request

	user, err := cc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := ctx.ShouldBind(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	comment := model.Comment{
		AuthorID:         user.ID,
		Content:          body.Content,
		CommentOn:        body.CommentOn,
		ProjectID:        body.ProjectID,
		TaskID:           body.TaskID,
		SafetyIncidentID: body.SafetyIncidentID,
		ParentID:         body.ParentCommentID,
	}

	created, err := cc.app.Repository.Comment.Create(ctx, nil, &comment)
	if err != nil {
		cc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to create comment", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"commentId": created.ID,
	})
}

func (cc CommentController) GetCommentById(ctx *gin.Context) {
	commentId := ctx.Params.ByName("commentId")
	if commentId == "" {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Comment id is required", util.GenerateErrorMessages(errors.New(ErrCommentIdRequired), "commentId"), nil)
		return
	}

	comment, err := cc.app.Repository.Comment.GetById(ctx, nil, commentId)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Comment not found", util.GenerateErrorMessages(errors.New(ErrCommentNotFound)), nil)
		return
	}

	// The reply thread is assembled from the project's flat rows, same as the
	// list endpoint, so nested replies show up on a single-comment fetch too.
	siblings, err := cc.app.Repository.Comment.List(ctx, nil, repository.CommentFilter{ProjectID: comment.ProjectID})
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to get comment", util.GenerateErrorMessages(err), nil)
		return
	}

	node := findCommentNode(BuildCommentTree(siblings), commentId)
	if node == nil {
		node = &CommentNode{Comment: *comment, Author: comment.Author.MiniPtr(), Replies: []CommentNode{}}
	}

	util.ResponseSuccess(ctx, gin.H{
		"comment": node,
	})
}

// GetCommentList returns comments as nested reply trees.
func (cc CommentController) GetCommentList(ctx *gin.Context) {
	type Params struct {
		ProjectID        string             `json:"project" form:"project" binding:"omitempty"`
		TaskID           string             `json:"task" form:"task" binding:"omitempty"`
		SafetyIncidentID string             `json:"safety_incident" form:"safety_incident" binding:"omitempty"`
		CommentOn        constant.CommentOn `json:"comment_on" form:"comment_on" binding:"omitempty,oneof=task project safety progress_report"`
	}
	var params Params

	if err := ctx.ShouldBindQuery(&params); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	filter := repository.CommentFilter{
		ProjectID:        params.ProjectID,
		TaskID:           params.TaskID,
		SafetyIncidentID: params.SafetyIncidentID,
		CommentOn:        params.CommentOn,
	}
	comments, err := cc.app.Repository.Comment.List(ctx, nil, filter)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to get comment list", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"comments": BuildCommentTree(comments),
	})
}

func (cc CommentController) UpdateComment(ctx *gin.Context) {
	commentId := ctx.Params.ByName("commentId")
	if commentId == "" {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Comment id is required", util.GenerateErrorMessages(errors.New(ErrCommentIdRequired), "commentId"), nil)
		return
	}

	type Request struct {
		Content string `json:"content" form:"content" binding:"required,strNotEmpty"`
	}
	var body Request

	if err := ctx.ShouldBind(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := cc.app.Repository.Comment.Update(ctx, nil, commentId, map[string]any{"content": body.Content}); err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Failed to update comment", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, nil)
}

func (cc CommentController) DeleteComment(ctx *gin.Context) {
	commentId := ctx.Params.ByName("commentId")
	if commentId == "" {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Comment id is required", util.GenerateErrorMessages(errors.New(ErrCommentIdRequired), "commentId"), nil)
		return
	}

	if err := cc.app.Repository.Comment.Delete(ctx, nil, commentId); err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to delete comment", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, nil)
}
