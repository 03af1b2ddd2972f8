package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// 采购订单状态
const (
	POStateDraft    = "draft" // RFQ
	POStateSent     = "sent"
	POStatePurchase = "purchase"
	POStateCancel   = "cancel"
)

// PurchaseOrder 采购订单
type PurchaseOrder struct {
	ID        string     `json:"id" gorm:"primaryKey;size:32"`
	Name      string     `json:"name" gorm:"size:50;not null;uniqueIndex"`
	Origin    string     `json:"origin" gorm:"size:200"`
	PartnerID string     `json:"partner_id" gorm:"size:32;not null;index"`
	CompanyID string     `json:"company_id" gorm:"size:32;not null"`
	Currency  string     `json:"currency" gorm:"size:10;not null;default:CNY"`
	State     string     `json:"state" gorm:"size:20;not null;default:draft"`
	DateOrder *time.Time `json:"date_order"`
	// 来源销售订单，仅在创建时设置，复制时不带过去
	SaleOrderID *string   `json:"sale_order_id" gorm:"size:32;index"`
	CreatedBy   string    `json:"created_by" gorm:"size:64"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Lines   []POLine `json:"order_line,omitempty" gorm:"foreignKey:OrderID"`
	Partner *Partner `json:"partner,omitempty" gorm:"foreignKey:PartnerID"`
}

func (PurchaseOrder) TableName() string {
	return "sl_purchase_orders"
}

// POLine 采购订单行
type POLine struct {
	ID           string          `json:"id" gorm:"primaryKey;size:32"`
	OrderID      string          `json:"order_id" gorm:"size:32;not null;index"`
	Sequence     int             `json:"sequence" gorm:"not null;default:10"`
	ProductID    string          `json:"product_id" gorm:"size:32;not null"`
	Name         string          `json:"name" gorm:"type:text;not null"`
	ProductQty   decimal.Decimal `json:"product_qty" gorm:"type:decimal(16,4);not null"`
	ProductUomID string          `json:"product_uom_id" gorm:"size:32;not null"`
	PriceUnit    decimal.Decimal `json:"price_unit" gorm:"type:decimal(16,4);not null"`
	DatePlanned  time.Time       `json:"date_planned"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

func (POLine) TableName() string {
	return "sl_purchase_order_lines"
}
