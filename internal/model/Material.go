package model

import "github.com/ujenziiq/ujenziiq-go/internal/constant"

type Material struct {
	BaseModel
	Name        string                `gorm:"type:varchar(255);not null" json:"name" form:"name" binding:"required,strNotEmpty,max=255"`
	Description string                `gorm:"type:text;default:null" json:"description" form:"description"`
	Unit        constant.MaterialUnit `gorm:"type:varchar(5);not null" json:"unit" form:"unit" binding:"required,oneof=kg ton pc l m m2 m3 bag"`
	UnitPrice   float64               `gorm:"type:numeric(10,2);not null" json:"unit_price" form:"unit_price" binding:"required"`

	SupplierID *string `gorm:"type:text;default:null" json:"supplier_id" form:"supplier_id"`
	Supplier   *User   `gorm:"foreignKey:SupplierID;constraint:OnDelete:SET NULL" json:"-"`
}

func (m Material) TableName() string {
	return "materials"
}
