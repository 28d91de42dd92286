package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ujenziiq/ujenziiq-go/internal/constant"
	"github.com/ujenziiq/ujenziiq-go/internal/model"
	"github.com/ujenziiq/ujenziiq-go/internal/util"
)

type MaterialController struct {
	*baseController
}

const (
	ErrMaterialIdRequired = "material ID is required"
	ErrMaterialNotFound   = "material not found"
)

func (mc MaterialController) CreateMaterial(ctx *gin.Context) {
	var body model.Material

	if err := ctx.ShouldBind(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	created, err := mc.app.Repository.Material.Create(ctx, nil, &body)
	if err != nil {
		mc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to create material", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"materialId": created.ID,
	})
}

func (mc MaterialController) GetMaterialById(ctx *gin.Context) {
	materialId := ctx.Params.ByName("materialId")
	if materialId == "" {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Material id is required", util.GenerateErrorMessages(errors.New(ErrMaterialIdRequired), "materialId"), nil)
		return
	}

	material, err := mc.app.Repository.Material.GetById(ctx, nil, materialId)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Material not found", util.GenerateErrorMessages(errors.New(ErrMaterialNotFound)), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"material": toMaterialItem(*material),
	})
}

func (mc MaterialController) GetMaterialList(ctx *gin.Context) {
	type Params struct {
		Page     uint   `json:"page" form:"page" binding:"omitempty"`
		PageSize uint   `json:"pageSize" form:"pageSize" binding:"omitempty"`
		Search   string `json:"search" form:"search" binding:"omitempty"`
	}
	var params Params

	if err := ctx.ShouldBindQuery(&params); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	params.Page, params.PageSize = util.NormalizePage(params.Page, params.PageSize)

	materials, totalCount, err := mc.app.Repository.Material.List(ctx, nil, params.Search, params.Page, params.PageSize)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to get material list", util.GenerateErrorMessages(err), nil)
		return
	}

	items := make([]MaterialItem, 0, len(materials))
	for _, m := range materials {
		items = append(items, toMaterialItem(m))
	}

	util.ResponseSuccess(ctx, gin.H{
		"total":     totalCount,
		"materials": items,
		"page":      params.Page,
		"pageSize":  params.PageSize,
		"totalPage": util.CalculateTotalPage(totalCount, params.PageSize),
	})
}

func (mc MaterialController) UpdateMaterial(ctx *gin.Context) {
	materialId := ctx.Params.ByName("materialId")
	if materialId == "" {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Material id is required", util.GenerateErrorMessages(errors.New(ErrMaterialIdRequired), "materialId"), nil)
		return
	}

	type Request struct {
		Name        *string                `json:"name" form:"name" binding:"omitempty,max=255"`
		Description *string                `json:"description" form:"description"`
		Unit        *constant.MaterialUnit `json:"unit" form:"unit" binding:"omitempty,oneof=kg ton pc l m m2 m3 bag"`
		UnitPrice   *float64               `json:"unit_price" form:"unit_price"`
		SupplierID  *string                `json:"supplier_id" form:"supplier_id"`
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
	if body.Unit != nil {
		updates["unit"] = *body.Unit
	}
	if body.UnitPrice != nil {
		updates["unit_price"] = *body.UnitPrice
	}
	if body.SupplierID != nil {
		updates["supplier_id"] = *body.SupplierID
	}

	if len(updates) == 0 {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Nothing to update", util.GenerateErrorMessages(errors.New("empty update")), nil)
		return
	}

	if err := mc.app.Repository.Material.Update(ctx, nil, materialId, updates); err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Failed to update material", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, nil)
}

func (mc MaterialController) DeleteMaterial(ctx *gin.Context) {
	materialId := ctx.Params.ByName("materialId")
	if materialId == "" {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Material id is required", util.GenerateErrorMessages(errors.New(ErrMaterialIdRequired), "materialId"), nil)
		return
	}

	if err := mc.app.Repository.Material.Delete(ctx, nil, materialId); err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to delete material", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, nil)
}
