package repository

import (
	"context"

	"github.com/bitfantasy/nimo-saleslink/internal/saleslink/entity"
	"gorm.io/gorm"
)

// ProductRepository 产品目录仓库
type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func sellerOrder(db *gorm.DB) *gorm.DB {
	return db.Order("sequence ASC, id ASC")
}

// Create 创建产品
func (r *ProductRepository) Create(ctx context.Context, product *entity.Product) error {
	if product.ID == "" {
		product.ID = entity.NewID()
	}
	return r.db.WithContext(ctx).Create(product).Error
}

// LookupProducts 批量解析产品能力视图，不存在的ID不出现在结果中
func (r *ProductRepository) LookupProducts(ctx context.Context, ids []string) (map[string]*entity.CatalogProduct, error) {
	result := make(map[string]*entity.CatalogProduct, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var products []entity.Product
	err := r.db.WithContext(ctx).
		Preload("Template").
		Preload("Template.Sellers", sellerOrder).
		Preload("Sellers", sellerOrder).
		Where("id IN ?", ids).
		Find(&products).Error
	if err != nil {
		return nil, err
	}

	for i := range products {
		p := &products[i]
		cp := &entity.CatalogProduct{
			ID:             p.ID,
			DisplayName:    p.DisplayName(),
			Type:           p.Type,
			TemplateID:     p.TemplateID,
			ProductSellers: p.Sellers,
			DefaultUomID:   p.UomID,
		}
		if p.Template != nil {
			cp.TemplateSellers = p.Template.Sellers
			cp.PurchaseUomID = p.Template.UomPOID
			// 变体未设置单位时继承模板单位
			if cp.DefaultUomID == nil {
				cp.DefaultUomID = p.Template.UomID
			}
		}
		result[p.ID] = cp
	}
	return result, nil
}
