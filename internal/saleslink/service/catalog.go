package service

import (
	"context"
	"fmt"

	"github.com/bitfantasy/nimo-saleslink/internal/saleslink/entity"
)

// ProductCatalog 产品目录端口
type ProductCatalog interface {
	LookupProducts(ctx context.Context, ids []string) (map[string]*entity.CatalogProduct, error)
}

// PartnerDirectory 业务伙伴端口
type PartnerDirectory interface {
	GetByID(ctx context.Context, id string) (*entity.Partner, error)
	FirstSupplier(ctx context.Context) (*entity.Partner, error)
	Create(ctx context.Context, partner *entity.Partner) error
}

// SourceLine 销售订单行及其产品能力视图，Product 为空表示该行没有可用产品
type SourceLine struct {
	Line    entity.SOLine
	Product *entity.CatalogProduct
}

// loadSourceLines 一次性解析订单行引用的全部产品
func loadSourceLines(ctx context.Context, catalog ProductCatalog, lines []entity.SOLine) ([]SourceLine, error) {
	ids := make([]string, 0, len(lines))
	seen := make(map[string]bool, len(lines))
	for _, l := range lines {
		if l.ProductID == nil || seen[*l.ProductID] {
			continue
		}
		seen[*l.ProductID] = true
		ids = append(ids, *l.ProductID)
	}

	products, err := catalog.LookupProducts(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("查询产品失败: %w", err)
	}

	result := make([]SourceLine, 0, len(lines))
	for _, l := range lines {
		sl := SourceLine{Line: l}
		if l.ProductID != nil {
			sl.Product = products[*l.ProductID]
		}
		result = append(result, sl)
	}
	return result, nil
}
