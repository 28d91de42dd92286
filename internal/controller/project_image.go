package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/minio/minio-go/v7"
	"github.com/ujenziiq/ujenziiq-go/internal/model"
	"github.com/ujenziiq/ujenziiq-go/internal/util"
)

type ProjectImageController struct {
	*baseController
}

const (
	ErrImageIdRequired  = "image ID is required"
	ErrImageNotFound    = "image not found"
	ErrImageFileMissing = "image file is required"
)

// UploadImage accepts a multipart image, stores the bytes in the image
// bucket, and records the object reference. uploaded_by comes from the JWT
// principal.
func (ic ProjectImageController) UploadImage(ctx *gin.Context) {
	type Request struct {
		ProjectID   string `json:"project_id" form:"project_id" binding:"required"`
		Title       string `json:"title" form:"title" binding:"required,strNotEmpty,max=255"`
		Description string `json:"description" form:"description"`
	}
	var body Request

	user, err := ic.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := ctx.ShouldBind(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	file, err := ctx.FormFile("image")
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "No image uploaded", util.GenerateErrorMessages(errors.New(ErrImageFileMissing), "image"), nil)
		return
	}

	info, err := util.UploadFileToS3ByFileHeader(file, &util.FileUploadOptions{
		DirectoryPath: util.GetProjectImageDirectoryPath(body.ProjectID),
		UniquePrefix:  true,
		Bucket:        ic.app.Config.Minio.BUCKET,
		S3:            ic.app.S3,
	})
	if err != nil {
		ic.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to upload image", util.GenerateErrorMessages(err), nil)
		return
	}

	image := model.ProjectImage{
		ProjectID:    body.ProjectID,
		Title:        body.Title,
		Description:  body.Description,
		ObjectKey:    info.Key,
		BucketName:   info.Bucket,
		Size:         info.Size,
		UploadedByID: user.ID,
	}

	created, err := ic.app.Repository.ProjectImage.Create(ctx, nil, &image)
	if err != nil {
		// keep the bucket consistent with the database
		if rmErr := ic.app.S3.RemoveObject(ctx, info.Bucket, info.Key, minio.RemoveObjectOptions{}); rmErr != nil {
			ic.app.Logger.Errorf("Failed to delete orphaned object %s: %v", info.Key, rmErr)
		}
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to save image", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"image": ic.toProjectImageItem(ctx, *created),
	})
}

func (ic ProjectImageController) GetImageById(ctx *gin.Context) {
	imageId := ctx.Params.ByName("imageId")
	if imageId == "" {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Image id is required", util.GenerateErrorMessages(errors.New(ErrImageIdRequired), "imageId"), nil)
		return
	}

	image, err := ic.app.Repository.ProjectImage.GetById(ctx, nil, imageId)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Image not found", util.GenerateErrorMessages(errors.New(ErrImageNotFound)), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"image": ic.toProjectImageItem(ctx, *image),
	})
}

func (ic ProjectImageController) GetImageList(ctx *gin.Context) {
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

	images, totalCount, err := ic.app.Repository.ProjectImage.List(ctx, nil, params.ProjectID, params.Page, params.PageSize)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to get image list", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"total":     totalCount,
		"images":    ic.toProjectImageItems(ctx, images),
		"page":      params.Page,
		"pageSize":  params.PageSize,
		"totalPage": util.CalculateTotalPage(totalCount, params.PageSize),
	})
}

// DeleteImage removes the database row first, then the stored object.
func (ic ProjectImageController) DeleteImage(ctx *gin.Context) {
	imageId := ctx.Params.ByName("imageId")
	if imageId == "" {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Image id is required", util.GenerateErrorMessages(errors.New(ErrImageIdRequired), "imageId"), nil)
		return
	}

	image, err := ic.app.Repository.ProjectImage.GetById(ctx, nil, imageId)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Image not found", util.GenerateErrorMessages(errors.New(ErrImageNotFound)), nil)
		return
	}

	if err := ic.app.Repository.ProjectImage.Delete(ctx, nil, imageId); err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to delete image", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := ic.app.S3.RemoveObject(ctx, image.BucketName, image.ObjectKey, minio.RemoveObjectOptions{}); err != nil {
		ic.app.Logger.Errorf("Failed to delete object %s: %v", image.ObjectKey, err)
	}

	util.ResponseSuccess(ctx, nil)
}
