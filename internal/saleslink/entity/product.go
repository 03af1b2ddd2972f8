package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// 产品类型
const (
	ProductTypeConsumable = "consu"
	ProductTypeService    = "service"
	ProductTypeCombo      = "combo"
)

// Uom 计量单位
type Uom struct {
	ID        string    `json:"id" gorm:"primaryKey;size:32"`
	Name      string    `json:"name" gorm:"size:64;not null"`
	CreatedAt time.Time `json:"created_at"`
}

func (Uom) TableName() string {
	return "sl_uoms"
}

// ProductTemplate 产品模板
type ProductTemplate struct {
	ID        string    `json:"id" gorm:"primaryKey;size:32"`
	Name      string    `json:"name" gorm:"size:200;not null"`
	UomID     *string   `json:"uom_id" gorm:"size:32"`
	UomPOID   *string   `json:"uom_po_id" gorm:"size:32"` // 采购单位
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Sellers []SupplierInfo `json:"sellers,omitempty" gorm:"foreignKey:TemplateID"`
}

func (ProductTemplate) TableName() string {
	return "sl_product_templates"
}

// Product 产品（变体）
type Product struct {
	ID          string    `json:"id" gorm:"primaryKey;size:32"`
	TemplateID  *string   `json:"template_id" gorm:"size:32;index"`
	Name        string    `json:"name" gorm:"size:200;not null"`
	DefaultCode string    `json:"default_code" gorm:"size:64"`
	Type        string    `json:"type" gorm:"size:20;not null;default:consu"`
	UomID       *string   `json:"uom_id" gorm:"size:32"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Template *ProductTemplate `json:"template,omitempty" gorm:"foreignKey:TemplateID"`
	Sellers  []SupplierInfo   `json:"sellers,omitempty" gorm:"foreignKey:ProductID"`
}

func (Product) TableName() string {
	return "sl_products"
}

// DisplayName 显示名称，有内部编码时为 "[编码] 名称"
func (p *Product) DisplayName() string {
	if p.DefaultCode != "" {
		return fmt.Sprintf("[%s] %s", p.DefaultCode, p.Name)
	}
	return p.Name
}

// SupplierInfo 供应商价目（挂在模板或产品上）
type SupplierInfo struct {
	ID         string          `json:"id" gorm:"primaryKey;size:32"`
	PartnerID  string          `json:"partner_id" gorm:"size:32;not null;index"`
	TemplateID *string         `json:"template_id" gorm:"size:32;index"`
	ProductID  *string         `json:"product_id" gorm:"size:32;index"`
	Sequence   int             `json:"sequence" gorm:"not null;default:1"`
	MinQty     decimal.Decimal `json:"min_qty" gorm:"type:decimal(16,4);not null"`
	Price      decimal.Decimal `json:"price" gorm:"type:decimal(16,4);not null"`
	CreatedAt  time.Time       `json:"created_at"`

	Partner *Partner `json:"partner,omitempty" gorm:"foreignKey:PartnerID"`
}

func (SupplierInfo) TableName() string {
	return "sl_supplier_infos"
}

// CatalogProduct 产品目录边界上一次性解析出的产品能力视图
type CatalogProduct struct {
	ID              string
	DisplayName     string
	Type            string
	TemplateID      *string
	TemplateSellers []SupplierInfo
	ProductSellers  []SupplierInfo
	PurchaseUomID   *string // 模板级采购单位
	DefaultUomID    *string
}

// IsService 服务类产品不参与采购
func (p *CatalogProduct) IsService() bool {
	return p.Type == ProductTypeService
}

// Sellers 优先取模板级供应商列表，模板没有时回退到产品级
func (p *CatalogProduct) Sellers() []SupplierInfo {
	if len(p.TemplateSellers) > 0 {
		return p.TemplateSellers
	}
	return p.ProductSellers
}
