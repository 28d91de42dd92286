package repository

import (
	"context"

	constant "github.com/ujenziiq/ujenziiq-go/internal/constant"
	"github.com/ujenziiq/ujenziiq-go/internal/model"
	"gorm.io/gorm"
)

type ProjectImageRepository struct {
	*baseRepository
}

func (ir *ProjectImageRepository) Create(ctx context.Context, tx *gorm.DB, image *model.ProjectImage) (*model.ProjectImage, error) {
	ir.logger.Debugf("Create project image %s for project %s \n", image.Title, image.ProjectID)

	db := ir.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Create(image).Error; err != nil {
		return nil, err
	}

	return image, nil
}

func (ir ProjectImageRepository) GetById(ctx context.Context, tx *gorm.DB, imageId string) (*model.ProjectImage, error) {
	ir.logger.Debugf("Get project image by id: %s \n", imageId)

	db := ir.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var image model.ProjectImage
	if err := db.WithContext(ctx).Model(&model.ProjectImage{}).
		Preload("UploadedBy").
		Where("project_images.id = ?", imageId).
		First(&image).Error; err != nil {
		return nil, err
	}

	return &image, nil
}

func (ir ProjectImageRepository) List(ctx context.Context, tx *gorm.DB, projectId string, page, pageSize uint) ([]model.ProjectImage, int64, error) {
	ir.logger.Debug("List project images \n")

	db := ir.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	query := db.WithContext(ctx).Model(&model.ProjectImage{})
	if projectId != "" {
		query = query.Where("project_images.project_id = ?", projectId)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var images []model.ProjectImage
	if err := query.
		Preload("UploadedBy").
		Order("project_images.upload_date DESC").
		Offset(int((page - 1) * pageSize)).Limit(int(pageSize)).
		Find(&images).Error; err != nil {
		return nil, 0, err
	}

	return images, total, nil
}

func (ir *ProjectImageRepository) Delete(ctx context.Context, tx *gorm.DB, imageId string) error {
	ir.logger.Debugf("Delete project image %s \n", imageId)

	db := ir.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return db.WithContext(ctx).Where("id = ?", imageId).Delete(&model.ProjectImage{}).Error
}
