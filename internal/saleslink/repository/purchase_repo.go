package repository

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bitfantasy/nimo-saleslink/internal/saleslink/entity"
	"gorm.io/gorm"
)

// PurchaseRepository 采购订单仓库
type PurchaseRepository struct {
	db *gorm.DB
}

func NewPurchaseRepository(db *gorm.DB) *PurchaseRepository {
	return &PurchaseRepository{db: db}
}

// GetByID 根据ID查找采购订单（含订单行与供应商）
func (r *PurchaseRepository) GetByID(ctx context.Context, id string) (*entity.PurchaseOrder, error) {
	var po entity.PurchaseOrder
	err := r.db.WithContext(ctx).
		Preload("Partner").
		Preload("Lines", lineOrder).
		Where("id = ?", id).
		First(&po).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &po, nil
}

// FindBySaleOrderID 查询来源为指定销售订单的全部采购订单
func (r *PurchaseRepository) FindBySaleOrderID(ctx context.Context, saleOrderID string) ([]entity.PurchaseOrder, error) {
	pos := make([]entity.PurchaseOrder, 0)
	err := r.db.WithContext(ctx).
		Preload("Partner").
		Where("sale_order_id = ?", saleOrderID).
		Order("created_at ASC, id ASC").
		Find(&pos).Error
	return pos, err
}

// CountBySaleOrderIDs 按销售订单统计关联采购订单数量，未关联的订单计为0
func (r *PurchaseRepository) CountBySaleOrderIDs(ctx context.Context, saleOrderIDs []string) (map[string]int, error) {
	counts := make(map[string]int, len(saleOrderIDs))
	for _, id := range saleOrderIDs {
		counts[id] = 0
	}
	if len(saleOrderIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		SaleOrderID string
		Total       int
	}
	err := r.db.WithContext(ctx).
		Model(&entity.PurchaseOrder{}).
		Select("sale_order_id, COUNT(*) AS total").
		Where("sale_order_id IN ?", saleOrderIDs).
		Group("sale_order_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		counts[row.SaleOrderID] = row.Total
	}
	return counts, nil
}

// Create 创建采购订单及订单行
func (r *PurchaseRepository) Create(ctx context.Context, po *entity.PurchaseOrder) error {
	if po.ID == "" {
		po.ID = entity.NewID()
	}
	for i := range po.Lines {
		if po.Lines[i].ID == "" {
			po.Lines[i].ID = entity.NewID()
		}
		po.Lines[i].OrderID = po.ID
	}
	return r.db.WithContext(ctx).Omit("Partner").Create(po).Error
}

// GenerateCode 生成PO编码 PO-{year}-{至少4位}，年份取自 at
func (r *PurchaseRepository) GenerateCode(ctx context.Context, at time.Time) (string, error) {
	year := at.Format("2006")
	prefix := fmt.Sprintf("PO-%s-", year)

	// 序号超过4位后按文本比较会出错，先比长度再比文本
	var codes []string
	err := r.db.WithContext(ctx).
		Model(&entity.PurchaseOrder{}).
		Where("name LIKE ?", prefix+"%").
		Order("LENGTH(name) DESC, name DESC").
		Limit(1).
		Pluck("name", &codes).Error
	if err != nil {
		return "", err
	}

	var seq int
	if len(codes) > 0 {
		seq, err = strconv.Atoi(strings.TrimPrefix(codes[0], prefix))
		if err != nil {
			return "", fmt.Errorf("无法解析采购订单编码 %q: %w", codes[0], err)
		}
	}
	seq++
	return fmt.Sprintf("PO-%s-%04d", year, seq), nil
}
