package repository

import (
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type baseRepository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
	s3     *minio.Client
}

type Repository struct {
	// DB can be used for transaction. Example usage:
	// tx := r.DB.Begin()
	// defer tx.Commit()
	// Then pass tx to the repository function. and use tx.Rollback() if error occurred
	DB                 *gorm.DB
	User               *UserRepository
	Project            *ProjectRepository
	Task               *TaskRepository
	Material           *MaterialRepository
	ResourceAllocation *ResourceAllocationRepository
	Safety             *SafetyRepository
	ProjectImage       *ProjectImageRepository
	ProgressReport     *ProgressReportRepository
	Notification       *NotificationRepository
	Message            *MessageRepository
	Comment            *CommentRepository
	SMSLog             *SMSLogRepository
}

func newBaseRepository(db *gorm.DB, logger *zap.SugaredLogger, s3 *minio.Client) *baseRepository {
	return &baseRepository{db: db, logger: logger, s3: s3}
}

func NewRepository(db *gorm.DB, logger *zap.SugaredLogger, s3 *minio.Client) *Repository {
	br := newBaseRepository(db, logger, s3)

	return &Repository{
		DB:                 db,
		User:               &UserRepository{baseRepository: br},
		Project:            &ProjectRepository{baseRepository: br},
		Task:               &TaskRepository{baseRepository: br},
		Material:           &MaterialRepository{baseRepository: br},
		ResourceAllocation: &ResourceAllocationRepository{baseRepository: br},
		Safety:             &SafetyRepository{baseRepository: br},
		ProjectImage:       &ProjectImageRepository{baseRepository: br},
		ProgressReport:     &ProgressReportRepository{baseRepository: br},
		Notification:       &NotificationRepository{baseRepository: br},
		Message:            &MessageRepository{baseRepository: br},
		Comment:            &CommentRepository{baseRepository: br},
		SMSLog:             &SMSLogRepository{baseRepository: br},
	}
}

// withTx runs fn inside a transaction. GORM already wraps single writes, so
// this matters only for multi-statement sequences.
func (b baseRepository) withTx(db *gorm.DB, fn func(*gorm.DB) error) error {
	err := db.Transaction(func(tx *gorm.DB) error {
		return fn(tx)
	})

	if err != nil {
		b.logger.Errorf("withTx Transaction error: %v", err)
	}

	return err
}

func (b baseRepository) getDB(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}

	return b.db
}
