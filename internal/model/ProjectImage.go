package model

import (
	"context"
	"time"

	"github.com/minio/minio-go/v7"
)

// ProjectImage stores a reference to an object in the image bucket, not the
// bytes themselves.
type ProjectImage struct {
	BaseModel
	ProjectID   string  `gorm:"type:text;not null;index" json:"project_id" form:"project_id" binding:"required"`
	Project     Project `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Title       string  `gorm:"type:varchar(255);not null" json:"title" form:"title" binding:"required,strNotEmpty,max=255"`
	Description string  `gorm:"type:text;default:null" json:"description" form:"description"`

	ObjectKey  string `gorm:"type:text;not null" json:"-"`
	BucketName string `gorm:"type:text;not null" json:"-"`
	Size       int64  `gorm:"type:bigint;not null;default:0" json:"size"`

	UploadedByID string     `gorm:"type:text;not null" json:"uploaded_by_id" form:"-"`
	UploadedBy   User       `gorm:"foreignKey:UploadedByID" json:"-"`
	UploadDate   *time.Time `gorm:"type:timestamptz;default:CURRENT_TIMESTAMP;not null" json:"upload_date"`
}

func (pi ProjectImage) TableName() string {
	return "project_images"
}

// ToPresignedUrl returns a time-limited GET URL for the stored object.
func (pi ProjectImage) ToPresignedUrl(ctx context.Context, s3 *minio.Client) (string, error) {
	if pi.ObjectKey == "" {
		return "", nil
	}

	url, err := s3.PresignedGetObject(ctx, pi.BucketName, pi.ObjectKey, 15*time.Minute, nil)
	if err != nil {
		return "", err
	}

	return url.String(), nil
}
