package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// 销售订单状态
const (
	SOStateDraft  = "draft"
	SOStateSent   = "sent"
	SOStateSale   = "sale"
	SOStateCancel = "cancel"
)

// SalesOrder 销售订单
type SalesOrder struct {
	ID        string     `json:"id" gorm:"primaryKey;size:32"`
	Name      string     `json:"name" gorm:"size:50;not null;uniqueIndex"`
	PartnerID *string    `json:"partner_id" gorm:"size:32;index"`
	CompanyID string     `json:"company_id" gorm:"size:32;not null"`
	Currency  string     `json:"currency" gorm:"size:10;not null;default:CNY"`
	State     string     `json:"state" gorm:"size:20;not null;default:draft"`
	DateOrder *time.Time `json:"date_order"`
	CreatedBy string     `json:"created_by" gorm:"size:64"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`

	Lines []SOLine `json:"order_line,omitempty" gorm:"foreignKey:OrderID"`

	// 关联采购订单数量，读取时计算，不落库
	PurchaseOrderCount int `json:"purchase_order_count" gorm:"-"`
}

func (SalesOrder) TableName() string {
	return "sl_sale_orders"
}

// SOLine 销售订单行
type SOLine struct {
	ID            string          `json:"id" gorm:"primaryKey;size:32"`
	OrderID       string          `json:"order_id" gorm:"size:32;not null;index"`
	Sequence      int             `json:"sequence" gorm:"not null;default:10"`
	ProductID     *string         `json:"product_id" gorm:"size:32"`
	Name          string          `json:"name" gorm:"type:text"`
	ProductUomQty decimal.Decimal `json:"product_uom_qty" gorm:"type:decimal(16,4);not null"`
	ProductUomID  *string         `json:"product_uom_id" gorm:"size:32"`
	PriceUnit     decimal.Decimal `json:"price_unit" gorm:"type:decimal(16,4);not null"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func (SOLine) TableName() string {
	return "sl_sale_order_lines"
}
