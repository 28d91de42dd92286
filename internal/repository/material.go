package repository

import (
	"context"

	constant "github.com/ujenziiq/ujenziiq-go/internal/constant"
	"github.com/ujenziiq/ujenziiq-go/internal/model"
	"gorm.io/gorm"
)

type MaterialRepository struct {
	*baseRepository
}

func (mr *MaterialRepository) Create(ctx context.Context, tx *gorm.DB, material *model.Material) (*model.Material, error) {
	mr.logger.Debugf("Create material: %s \n", material.Name)

	db := mr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Create(material).Error; err != nil {
		return nil, err
	}

	return material, nil
}

func (mr MaterialRepository) GetById(ctx context.Context, tx *gorm.DB, materialId string) (*model.Material, error) {
	mr.logger.Debugf("Get material by id: %s \n", materialId)

	db := mr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var material model.Material
	if err := db.WithContext(ctx).Model(&model.Material{}).
		Preload("Supplier").
		Where("materials.id = ?", materialId).
		First(&material).Error; err != nil {
		return nil, err
	}

	return &material, nil
}

func (mr MaterialRepository) List(ctx context.Context, tx *gorm.DB, search string, page, pageSize uint) ([]model.Material, int64, error) {
	mr.logger.Debug("List materials \n")

	db := mr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	query := db.WithContext(ctx).Model(&model.Material{})
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("materials.name ILIKE ? OR materials.description ILIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var materials []model.Material
	if err := query.
		Preload("Supplier").
		Order("materials.name").
		Offset(int((page - 1) * pageSize)).Limit(int(pageSize)).
		Find(&materials).Error; err != nil {
		return nil, 0, err
	}

	return materials, total, nil
}

func (mr *MaterialRepository) Update(ctx context.Context, tx *gorm.DB, materialId string, updates map[string]any) error {
	mr.logger.Debugf("Update material %s \n", materialId)

	db := mr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	res := db.WithContext(ctx).Model(&model.Material{}).Where("id = ?", materialId).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (mr *MaterialRepository) Delete(ctx context.Context, tx *gorm.DB, materialId string) error {
	mr.logger.Debugf("Delete material %s \n", materialId)

	db := mr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return db.WithContext(ctx).Where("id = ?", materialId).Delete(&model.Material{}).Error
}
