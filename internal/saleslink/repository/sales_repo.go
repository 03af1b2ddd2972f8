package repository

import (
	"context"

	"github.com/bitfantasy/nimo-saleslink/internal/saleslink/entity"
	"gorm.io/gorm"
)

// SalesRepository 销售订单仓库
type SalesRepository struct {
	db *gorm.DB
}

func NewSalesRepository(db *gorm.DB) *SalesRepository {
	return &SalesRepository{db: db}
}

func lineOrder(db *gorm.DB) *gorm.DB {
	return db.Order("sequence ASC, id ASC")
}

// GetByID 根据ID查找销售订单（含订单行）
func (r *SalesRepository) GetByID(ctx context.Context, id string) (*entity.SalesOrder, error) {
	var so entity.SalesOrder
	err := r.db.WithContext(ctx).
		Preload("Lines", lineOrder).
		Where("id = ?", id).
		First(&so).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &so, nil
}

// Create 创建销售订单及订单行
func (r *SalesRepository) Create(ctx context.Context, so *entity.SalesOrder) error {
	if so.ID == "" {
		so.ID = entity.NewID()
	}
	for i := range so.Lines {
		if so.Lines[i].ID == "" {
			so.Lines[i].ID = entity.NewID()
		}
		so.Lines[i].OrderID = so.ID
	}
	return r.db.WithContext(ctx).Create(so).Error
}
