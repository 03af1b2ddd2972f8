package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var (
	ErrNotFound = errors.New("record not found")
)

// Repositories 销售/采购关联仓库集合
type Repositories struct {
	db       *gorm.DB
	Partner  *PartnerRepository
	Product  *ProductRepository
	Sales    *SalesRepository
	Purchase *PurchaseRepository
}

// NewRepositories 创建仓库集合
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		db:       db,
		Partner:  NewPartnerRepository(db),
		Product:  NewProductRepository(db),
		Sales:    NewSalesRepository(db),
		Purchase: NewPurchaseRepository(db),
	}
}

// Transaction 在同一个事务中执行 fn，fn 拿到的仓库集合全部绑定该事务
func (r *Repositories) Transaction(ctx context.Context, fn func(repos *Repositories) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	})
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
