package service

import (
	"context"
	"time"

	"github.com/bitfantasy/nimo-saleslink/internal/saleslink/entity"
	"github.com/shopspring/decimal"
)

// PurchaseLineDraft 待创建的采购订单行
type PurchaseLineDraft struct {
	ProductID    string
	Name         string
	ProductQty   decimal.Decimal
	ProductUomID string
	PriceUnit    decimal.Decimal
	DatePlanned  time.Time
}

// LineTranslator 将销售订单行转换为采购订单行
type LineTranslator struct {
	tr  Translator
	now func() time.Time
}

func NewLineTranslator(tr Translator, now func() time.Time) *LineTranslator {
	if now == nil {
		now = time.Now
	}
	return &LineTranslator{tr: tr, now: now}
}

// Translate 跳过无产品和服务类行，保持顺序，不合并；任一行无法确定单位则整体失败
func (t *LineTranslator) Translate(ctx context.Context, lines []SourceLine) ([]PurchaseLineDraft, error) {
	planned := t.now()
	drafts := make([]PurchaseLineDraft, 0, len(lines))
	for _, sl := range lines {
		p := sl.Product
		if p == nil || p.IsService() {
			continue
		}

		uomID := purchaseUom(sl)
		if uomID == nil {
			return nil, newError(ctx, t.tr, ErrValidationFailure, MsgNoUom, map[string]interface{}{
				"Product": p.DisplayName,
			})
		}

		drafts = append(drafts, PurchaseLineDraft{
			ProductID:    p.ID,
			Name:         p.DisplayName,
			ProductQty:   sl.Line.ProductUomQty,
			ProductUomID: *uomID,
			PriceUnit:    decimal.Zero,
			DatePlanned:  planned,
		})
	}
	return drafts, nil
}

// purchaseUom 采购单位 > 订单行单位 > 产品默认单位
func purchaseUom(sl SourceLine) *string {
	for _, id := range []*string{sl.Product.PurchaseUomID, sl.Line.ProductUomID, sl.Product.DefaultUomID} {
		if id != nil && *id != "" {
			return id
		}
	}
	return nil
}

// toPOLines 草稿转为实体行，序号从1开始
func toPOLines(orderID string, drafts []PurchaseLineDraft) []entity.POLine {
	lines := make([]entity.POLine, 0, len(drafts))
	for i, d := range drafts {
		lines = append(lines, entity.POLine{
			OrderID:      orderID,
			Sequence:     i + 1,
			ProductID:    d.ProductID,
			Name:         d.Name,
			ProductQty:   d.ProductQty,
			ProductUomID: d.ProductUomID,
			PriceUnit:    d.PriceUnit,
			DatePlanned:  d.DatePlanned,
		})
	}
	return lines
}
