package entity

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AutoMigrate 自动迁移销售/采购关联相关表
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		// 基础数据
		&Partner{},
		&Uom{},
		&ProductTemplate{},
		&Product{},
		&SupplierInfo{},

		// 销售
		&SalesOrder{},
		&SOLine{},

		// 采购
		&PurchaseOrder{},
		&POLine{},
	)
}

// NewID 生成32位ID
func NewID() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")
}
