package testutil

import (
	"errors"
	"testing"
	"time"

	"github.com/bitfantasy/nimo-saleslink/internal/saleslink/entity"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// StrPtr returns a pointer to s
func StrPtr(s string) *string {
	return &s
}

// SeedPartner creates a partner; supplierRank > 0 makes it a vendor
func SeedPartner(t *testing.T, db *gorm.DB, name string, supplierRank int, createdAt time.Time) *entity.Partner {
	t.Helper()
	p := &entity.Partner{
		ID:           entity.NewID(),
		Name:         name,
		SupplierRank: supplierRank,
		CreatedAt:    createdAt,
		UpdatedAt:    createdAt,
	}
	if err := db.Create(p).Error; err != nil {
		t.Fatalf("Failed to seed partner: %v", err)
	}
	return p
}

// SeedUom creates a unit of measure
func SeedUom(t *testing.T, db *gorm.DB, name string) *entity.Uom {
	t.Helper()
	u := &entity.Uom{ID: entity.NewID(), Name: name}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("Failed to seed uom: %v", err)
	}
	return u
}

// SeedTemplate creates a product template
func SeedTemplate(t *testing.T, db *gorm.DB, name string, uomID, uomPOID *string) *entity.ProductTemplate {
	t.Helper()
	tmpl := &entity.ProductTemplate{
		ID:      entity.NewID(),
		Name:    name,
		UomID:   uomID,
		UomPOID: uomPOID,
	}
	if err := db.Create(tmpl).Error; err != nil {
		t.Fatalf("Failed to seed product template: %v", err)
	}
	return tmpl
}

// SeedProduct creates a product variant
func SeedProduct(t *testing.T, db *gorm.DB, p *entity.Product) *entity.Product {
	t.Helper()
	if p.ID == "" {
		p.ID = entity.NewID()
	}
	if p.Type == "" {
		p.Type = entity.ProductTypeConsumable
	}
	if err := db.Create(p).Error; err != nil {
		t.Fatalf("Failed to seed product: %v", err)
	}
	return p
}

// SeedSeller attaches a seller record to a template (templateID) or a variant (productID)
func SeedSeller(t *testing.T, db *gorm.DB, partnerID string, templateID, productID *string, sequence int) *entity.SupplierInfo {
	t.Helper()
	s := &entity.SupplierInfo{
		ID:         entity.NewID(),
		PartnerID:  partnerID,
		TemplateID: templateID,
		ProductID:  productID,
		Sequence:   sequence,
		MinQty:     decimal.Zero,
		Price:      decimal.Zero,
	}
	if err := db.Create(s).Error; err != nil {
		t.Fatalf("Failed to seed seller: %v", err)
	}
	return s
}

// SeedSalesOrder creates a sales order with the given lines
func SeedSalesOrder(t *testing.T, db *gorm.DB, name string, lines ...entity.SOLine) *entity.SalesOrder {
	t.Helper()
	so := &entity.SalesOrder{
		ID:        entity.NewID(),
		Name:      name,
		CompanyID: "company-001",
		Currency:  "CNY",
		State:     entity.SOStateSale,
		CreatedBy: "test-user",
	}
	for i := range lines {
		lines[i].ID = entity.NewID()
		lines[i].OrderID = so.ID
		if lines[i].Sequence == 0 {
			lines[i].Sequence = (i + 1) * 10
		}
	}
	so.Lines = lines
	if err := db.Create(so).Error; err != nil {
		t.Fatalf("Failed to seed sales order: %v", err)
	}
	return so
}

// ProductLine builds a sales order line for a product
func ProductLine(productID string, qty string, uomID *string) entity.SOLine {
	return entity.SOLine{
		ProductID:     StrPtr(productID),
		Name:          "line",
		ProductUomQty: decimal.RequireFromString(qty),
		ProductUomID:  uomID,
		PriceUnit:     decimal.NewFromInt(100),
	}
}

// NoteLine builds a sales order line without product
func NoteLine(text string) entity.SOLine {
	return entity.SOLine{
		Name:          text,
		ProductUomQty: decimal.Zero,
		PriceUnit:     decimal.Zero,
	}
}

// DenyPartnerCreation makes every partner insert on db fail
func DenyPartnerCreation(t *testing.T, db *gorm.DB) {
	t.Helper()
	err := db.Callback().Create().Before("gorm:create").Register("test:deny_partner_create", func(tx *gorm.DB) {
		if tx.Statement.Schema != nil && tx.Statement.Schema.Table == "sl_partners" {
			tx.AddError(errors.New("access denied: cannot create partners"))
		}
	})
	if err != nil {
		t.Fatalf("Failed to register callback: %v", err)
	}
}
