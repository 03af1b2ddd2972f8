package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/bitfantasy/nimo-saleslink/internal/saleslink/entity"
	"github.com/bitfantasy/nimo-saleslink/internal/saleslink/repository"
	"go.uber.org/zap"
)

// VendorSource 供应商来源
type VendorSource string

const (
	VendorSourceSeller       VendorSource = "seller"
	VendorSourceSupplierRank VendorSource = "supplier_rank"
	VendorSourcePlaceholder  VendorSource = "placeholder"
	VendorSourceNone         VendorSource = "none"
)

// VendorResult 供应商解析结果，Source 为 none 时 Partner 为空
type VendorResult struct {
	Partner *entity.Partner
	Source  VendorSource
}

// VendorResolver 为采购订单选择供应商
type VendorResolver struct {
	placeholderName string
	logger          *zap.Logger
}

func NewVendorResolver(placeholderName string, logger *zap.Logger) *VendorResolver {
	if placeholderName == "" {
		placeholderName = entity.DefaultPlaceholderVendorName
	}
	return &VendorResolver{placeholderName: placeholderName, logger: logger}
}

// Resolve 依次尝试：产品供货信息 > 第一个供应商 > 创建占位供应商
// 结果计数由调用方在事务提交后记录
func (r *VendorResolver) Resolve(ctx context.Context, partners PartnerDirectory, lines []SourceLine) (VendorResult, error) {
	for _, sl := range lines {
		if sl.Product == nil {
			continue
		}
		sellers := sl.Product.Sellers()
		if len(sellers) == 0 {
			continue
		}
		partner, err := partners.GetByID(ctx, sellers[0].PartnerID)
		if errors.Is(err, repository.ErrNotFound) {
			continue
		}
		if err != nil {
			return VendorResult{Source: VendorSourceNone}, fmt.Errorf("查询供货商失败: %w", err)
		}
		return VendorResult{Partner: partner, Source: VendorSourceSeller}, nil
	}

	partner, err := partners.FirstSupplier(ctx)
	if err == nil {
		return VendorResult{Partner: partner, Source: VendorSourceSupplierRank}, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return VendorResult{Source: VendorSourceNone}, fmt.Errorf("查询供应商失败: %w", err)
	}

	placeholder := &entity.Partner{
		Name:         r.placeholderName,
		SupplierRank: 1,
	}
	if err := partners.Create(ctx, placeholder); err != nil {
		r.logger.Warn("create placeholder vendor failed",
			zap.String("name", r.placeholderName),
			zap.Error(fmt.Errorf("%w: %v", ErrDependencyFailure, err)),
		)
		return VendorResult{Source: VendorSourceNone}, nil
	}
	return VendorResult{Partner: placeholder, Source: VendorSourcePlaceholder}, nil
}
