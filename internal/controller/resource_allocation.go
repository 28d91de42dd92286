package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ujenziiq/ujenziiq-go/internal/model"
	"github.com/ujenziiq/ujenziiq-go/internal/util"
)

type ResourceAllocationController struct {
	*baseController
}

const (
	ErrAllocationIdRequired = "resource allocation ID is required"
	ErrAllocationNotFound   = "resource allocation not found"
)

func (rc ResourceAllocationController) CreateAllocation(ctx *gin.Context) {
	var body model.ResourceAllocation

	if err := ctx.ShouldBind(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	created, err := rc.app.Repository.ResourceAllocation.Create(ctx, nil, &body)
	if err != nil {
		rc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to create resource allocation", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"allocationId": created.ID,
	})
}

func (rc ResourceAllocationController) GetAllocationById(ctx *gin.Context) {
	allocationId := ctx.Params.ByName("allocationId")
	if allocationId == "" {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Allocation id is required", util.GenerateErrorMessages(errors.New(ErrAllocationIdRequired), "allocationId"), nil)
		return
	}

	allocation, err := rc.app.Repository.ResourceAllocation.GetById(ctx, nil, allocationId)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Resource allocation not found", util.GenerateErrorMessages(errors.New(ErrAllocationNotFound)), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"resource_allocation": toResourceAllocationItem(*allocation),
	})
}

func (rc ResourceAllocationController) GetAllocationList(ctx *gin.Context) {
	type Params struct {
		Page      uint   `json:"page" form:"page" binding:"omitempty"`
		PageSize  uint   `json:"pageSize" form:"pageSize" binding:"omitempty"`
		ProjectID string `json:"project" form:"project" binding:"omitempty"`
	}
	var params Params

	if err := ctx.ShouldBindQuery(&params); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	params.Page, params.PageSize = util.NormalizePage(params.Page, params.PageSize)

	allocations, totalCount, err := rc.app.Repository.ResourceAllocation.List(ctx, nil, params.ProjectID, params.Page, params.PageSize)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to get resource allocation list", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"total":                totalCount,
		"resource_allocations": toResourceAllocationItems(allocations),
		"page":                 params.Page,
		"pageSize":             params.PageSize,
		"totalPage":            util.CalculateTotalPage(totalCount, params.PageSize),
	})
}

func (rc ResourceAllocationController) UpdateAllocation(ctx *gin.Context) {
	allocationId := ctx.Params.ByName("allocationId")
	if allocationId == "" {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Allocation id is required", util.GenerateErrorMessages(errors.New(ErrAllocationIdRequired), "allocationId"), nil)
		return
	}

	type Request struct {
		Quantity         *float64   `json:"quantity" form:"quantity"`
		AllocatedDate    *time.Time `json:"allocated_date" form:"allocated_date" time_format:"2006-01-02"`
		ReceivedDate     *time.Time `json:"received_date" form:"received_date" time_format:"2006-01-02"`
		ReceivedQuantity *float64   `json:"received_quantity" form:"received_quantity"`
		Notes            *string    `json:"notes" form:"notes"`
	}
	var body Request

	if err := ctx.ShouldBind(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	updates := map[string]any{}
	if body.Quantity != nil {
		updates["quantity"] = *body.Quantity
	}
	if body.AllocatedDate != nil {
		updates["allocated_date"] = *body.AllocatedDate
	}
	if body.ReceivedDate != nil {
		updates["received_date"] = *body.ReceivedDate
	}
	if body.ReceivedQuantity != nil {
		updates["received_quantity"] = *body.ReceivedQuantity
	}
	if body.Notes != nil {
		updates["notes"] = *body.Notes
	}

	if len(updates) == 0 {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Nothing to update", util.GenerateErrorMessages(errors.New("empty update")), nil)
		return
	}

	if err := rc.app.Repository.ResourceAllocation.Update(ctx, nil, allocationId, updates); err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Failed to update resource allocation", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, nil)
}

func (rc ResourceAllocationController) DeleteAllocation(ctx *gin.Context) {
	allocationId := ctx.Params.ByName("allocationId")
	if allocationId == "" {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Allocation id is required", util.GenerateErrorMessages(errors.New(ErrAllocationIdRequired), "allocationId"), nil)
		return
	}

	if err := rc.app.Repository.ResourceAllocation.Delete(ctx, nil, allocationId); err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to delete resource allocation", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, nil)
}
