package model

import "time"

type ResourceAllocation struct {
	BaseModel
	ProjectID        string     `gorm:"type:text;not null;index" json:"project_id" form:"project_id" binding:"required"`
	Project          Project    `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	MaterialID       string     `gorm:"type:text;not null" json:"material_id" form:"material_id" binding:"required"`
	Material         Material   `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Quantity         float64    `gorm:"type:numeric(10,2);not null" json:"quantity" form:"quantity" binding:"required"`
	AllocatedDate    time.Time  `gorm:"type:date;not null" json:"allocated_date" form:"allocated_date" binding:"required" time_format:"2006-01-02"`
	ReceivedDate     *time.Time `gorm:"type:date;default:null" json:"received_date" form:"received_date" time_format:"2006-01-02"`
	ReceivedQuantity *float64   `gorm:"type:numeric(10,2);default:null" json:"received_quantity" form:"received_quantity"`
	Notes            string     `gorm:"type:text;default:null" json:"notes" form:"notes"`
}

func (ra ResourceAllocation) TableName() string {
	return "resource_allocations"
}

// IsFullyReceived is true once a delivery has been recorded and the received
// quantity covers the allocated quantity. The comparison is against this
// allocation's own quantity only.
func (ra ResourceAllocation) IsFullyReceived() bool {
	return ra.ReceivedDate != nil && ra.ReceivedQuantity != nil && *ra.ReceivedQuantity >= ra.Quantity
}
