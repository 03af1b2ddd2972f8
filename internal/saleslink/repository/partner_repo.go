package repository

import (
	"context"

	"github.com/bitfantasy/nimo-saleslink/internal/saleslink/entity"
	"gorm.io/gorm"
)

// PartnerRepository 业务伙伴仓库
type PartnerRepository struct {
	db *gorm.DB
}

func NewPartnerRepository(db *gorm.DB) *PartnerRepository {
	return &PartnerRepository{db: db}
}

// GetByID 根据ID查找伙伴
func (r *PartnerRepository) GetByID(ctx context.Context, id string) (*entity.Partner, error) {
	var partner entity.Partner
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&partner).Error; err != nil {
		return nil, notFound(err)
	}
	return &partner, nil
}

// FirstSupplier 按库内顺序返回第一个 supplier_rank > 0 的伙伴
func (r *PartnerRepository) FirstSupplier(ctx context.Context) (*entity.Partner, error) {
	var partner entity.Partner
	err := r.db.WithContext(ctx).
		Where("supplier_rank > ?", 0).
		Order("created_at ASC, id ASC").
		First(&partner).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &partner, nil
}

// Create 创建伙伴
// 在嵌套事务（保存点）中执行，插入被拒绝时不会破坏外层事务
func (r *PartnerRepository) Create(ctx context.Context, partner *entity.Partner) error {
	if partner.ID == "" {
		partner.ID = entity.NewID()
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(partner).Error
	})
}
