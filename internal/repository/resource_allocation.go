package repository

import (
	"context"

	constant "github.com/ujenziiq/ujenziiq-go/internal/constant"
	"github.com/ujenziiq/ujenziiq-go/internal/model"
	"gorm.io/gorm"
)

type ResourceAllocationRepository struct {
	*baseRepository
}

func (rr *ResourceAllocationRepository) Create(ctx context.Context, tx *gorm.DB, allocation *model.ResourceAllocation) (*model.ResourceAllocation, error) {
	rr.logger.Debugf("Create resource allocation for project: %s \n", allocation.ProjectID)

	db := rr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Create(allocation).Error; err != nil {
		return nil, err
	}

	return allocation, nil
}

func (rr ResourceAllocationRepository) GetById(ctx context.Context, tx *gorm.DB, allocationId string) (*model.ResourceAllocation, error) {
	rr.logger.Debugf("Get resource allocation by id: %s \n", allocationId)

	db := rr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var allocation model.ResourceAllocation
	if err := db.WithContext(ctx).Model(&model.ResourceAllocation{}).
		Preload("Material").
		Preload("Material.Supplier").
		Where("resource_allocations.id = ?", allocationId).
		First(&allocation).Error; err != nil {
		return nil, err
	}

	return &allocation, nil
}

func (rr ResourceAllocationRepository) List(ctx context.Context, tx *gorm.DB, projectId string, page, pageSize uint) ([]model.ResourceAllocation, int64, error) {
	rr.logger.Debug("List resource allocations \n")

	db := rr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	query := db.WithContext(ctx).Model(&model.ResourceAllocation{})
	if projectId != "" {
		query = query.Where("resource_allocations.project_id = ?", projectId)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var allocations []model.ResourceAllocation
	if err := query.
		Preload("Material").
		Order("resource_allocations.allocated_date DESC").
		Offset(int((page - 1) * pageSize)).Limit(int(pageSize)).
		Find(&allocations).Error; err != nil {
		return nil, 0, err
	}

	return allocations, total, nil
}

func (rr *ResourceAllocationRepository) Update(ctx context.Context, tx *gorm.DB, allocationId string, updates map[string]any) error {
	rr.logger.Debugf("Update resource allocation %s \n", allocationId)

	db := rr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	res := db.WithContext(ctx).Model(&model.ResourceAllocation{}).Where("id = ?", allocationId).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (rr *ResourceAllocationRepository) Delete(ctx context.Context, tx *gorm.DB, allocationId string) error {
	rr.logger.Debugf("Delete resource allocation %s \n", allocationId)

	db := rr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return db.WithContext(ctx).Where("id = ?", allocationId).Delete(&model.ResourceAllocation{}).Error
}
