package entity

import "time"

// DefaultPlaceholderVendorName 占位供应商名称
const DefaultPlaceholderVendorName = "TBD Vendor"

// Partner 业务伙伴（客户/供应商）
type Partner struct {
	ID           string    `json:"id" gorm:"primaryKey;size:32"`
	Name         string    `json:"name" gorm:"size:200;not null"`
	Email        string    `json:"email" gorm:"size:100"`
	Phone        string    `json:"phone" gorm:"size:32"`
	SupplierRank int       `json:"supplier_rank" gorm:"not null;default:0;index"`
	CustomerRank int       `json:"customer_rank" gorm:"not null;default:0"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Partner) TableName() string {
	return "sl_partners"
}

// IsSupplier supplier_rank > 0 的伙伴可作为供应商
func (p *Partner) IsSupplier() bool {
	return p.SupplierRank > 0
}
