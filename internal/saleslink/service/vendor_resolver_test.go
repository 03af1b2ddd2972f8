package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bitfantasy/nimo-saleslink/internal/saleslink/entity"
	"github.com/bitfantasy/nimo-saleslink/internal/saleslink/repository"
	"github.com/bitfantasy/nimo-saleslink/internal/saleslink/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func withSellers(p *entity.CatalogProduct, template, product []entity.SupplierInfo) *entity.CatalogProduct {
	p.TemplateSellers = template
	p.ProductSellers = product
	return p
}

func TestVendorResolver_SellerBeatsSupplierRank(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repos := repository.NewRepositories(db)
	resolver := NewVendorResolver("", zap.NewNop())

	testutil.SeedPartner(t, db, "Ranked Vendor", 3, time.Now().Add(-time.Hour))
	seller := testutil.SeedPartner(t, db, "Configured Seller", 0, time.Now())

	p := withSellers(catalogProduct("p-a", "A", entity.ProductTypeConsumable, nil, nil),
		nil, []entity.SupplierInfo{{PartnerID: seller.ID}})

	got, err := resolver.Resolve(bg, repos.Partner, []SourceLine{sourceLine(p, "1", nil)})
	require.NoError(t, err)
	assert.Equal(t, VendorSourceSeller, got.Source)
	require.NotNil(t, got.Partner)
	assert.Equal(t, seller.ID, got.Partner.ID)
}

func TestVendorResolver_FirstQualifyingLineWins(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repos := repository.NewRepositories(db)
	resolver := NewVendorResolver("", zap.NewNop())

	templateVendor := testutil.SeedPartner(t, db, "Template Vendor", 1, time.Now())
	variantVendor := testutil.SeedPartner(t, db, "Variant Vendor", 1, time.Now())
	laterVendor := testutil.SeedPartner(t, db, "Later Line Vendor", 1, time.Now())

	noSellers := catalogProduct("p-0", "No Sellers", entity.ProductTypeConsumable, nil, nil)
	first := withSellers(catalogProduct("p-1", "First", entity.ProductTypeConsumable, nil, nil),
		[]entity.SupplierInfo{{PartnerID: templateVendor.ID}},
		[]entity.SupplierInfo{{PartnerID: variantVendor.ID}})
	second := withSellers(catalogProduct("p-2", "Second", entity.ProductTypeConsumable, nil, nil),
		[]entity.SupplierInfo{{PartnerID: laterVendor.ID}}, nil)

	got, err := resolver.Resolve(bg, repos.Partner, []SourceLine{
		sourceLine(nil, "1", nil),
		sourceLine(noSellers, "1", nil),
		sourceLine(first, "1", nil),
		sourceLine(second, "1", nil),
	})
	require.NoError(t, err)
	assert.Equal(t, templateVendor.ID, got.Partner.ID, "template sellers are preferred over variant sellers")
}

func TestVendorResolver_FallsBackToSupplierRank(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repos := repository.NewRepositories(db)
	resolver := NewVendorResolver("", zap.NewNop())

	testutil.SeedPartner(t, db, "Customer", 0, time.Now().Add(-2*time.Hour))
	acme := testutil.SeedPartner(t, db, "Acme Co.", 1, time.Now().Add(-time.Hour))
	testutil.SeedPartner(t, db, "Newer Vendor", 1, time.Now())

	p := catalogProduct("p-a", "A", entity.ProductTypeConsumable, nil, nil)
	got, err := resolver.Resolve(bg, repos.Partner, []SourceLine{sourceLine(p, "1", nil)})
	require.NoError(t, err)
	assert.Equal(t, VendorSourceSupplierRank, got.Source)
	assert.Equal(t, acme.ID, got.Partner.ID)
}

func TestVendorResolver_CreatesPlaceholder(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repos := repository.NewRepositories(db)
	resolver := NewVendorResolver("", zap.NewNop())
	testutil.SeedPartner(t, db, "Customer", 0, time.Now())

	got, err := resolver.Resolve(bg, repos.Partner, nil)
	require.NoError(t, err)
	assert.Equal(t, VendorSourcePlaceholder, got.Source)
	require.NotNil(t, got.Partner)
	assert.Equal(t, "TBD Vendor", got.Partner.Name)
	assert.Equal(t, 1, got.Partner.SupplierRank)

	stored, err := repos.Partner.GetByID(bg, got.Partner.ID)
	require.NoError(t, err)
	assert.Equal(t, "TBD Vendor", stored.Name)
}

func TestVendorResolver_CustomPlaceholderName(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repos := repository.NewRepositories(db)
	resolver := NewVendorResolver("待定供应商", zap.NewNop())

	got, err := resolver.Resolve(bg, repos.Partner, nil)
	require.NoError(t, err)
	assert.Equal(t, "待定供应商", got.Partner.Name)
}

func TestVendorResolver_PlaceholderRefused(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.DenyPartnerCreation(t, db)
	repos := repository.NewRepositories(db)

	core, logs := observer.New(zap.WarnLevel)
	resolver := NewVendorResolver("", zap.New(core))

	got, err := resolver.Resolve(bg, repos.Partner, nil)
	require.NoError(t, err)
	assert.Nil(t, got.Partner)
	assert.Equal(t, VendorSourceNone, got.Source)
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "create placeholder vendor failed", logs.All()[0].Message)
}

type faultyDirectory struct {
	err error
}

func (d faultyDirectory) GetByID(ctx context.Context, id string) (*entity.Partner, error) {
	return nil, d.err
}

func (d faultyDirectory) FirstSupplier(ctx context.Context) (*entity.Partner, error) {
	return nil, d.err
}

func (d faultyDirectory) Create(ctx context.Context, partner *entity.Partner) error {
	return errors.New("must not be called")
}

func TestVendorResolver_ReadFaultsPropagate(t *testing.T) {
	resolver := NewVendorResolver("", zap.NewNop())
	dbErr := errors.New("connection reset")

	p := withSellers(catalogProduct("p-a", "A", entity.ProductTypeConsumable, nil, nil),
		nil, []entity.SupplierInfo{{PartnerID: "v-1"}})

	_, err := resolver.Resolve(bg, faultyDirectory{err: dbErr}, []SourceLine{sourceLine(p, "1", nil)})
	assert.ErrorIs(t, err, dbErr)

	_, err = resolver.Resolve(bg, faultyDirectory{err: dbErr}, nil)
	assert.ErrorIs(t, err, dbErr)
}

func TestVendorResolver_DanglingSellerIsSkipped(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repos := repository.NewRepositories(db)
	resolver := NewVendorResolver("", zap.NewNop())

	acme := testutil.SeedPartner(t, db, "Acme Co.", 1, time.Now())
	p := withSellers(catalogProduct("p-a", "A", entity.ProductTypeConsumable, nil, nil),
		[]entity.SupplierInfo{{PartnerID: "deleted-partner"}}, nil)

	got, err := resolver.Resolve(bg, repos.Partner, []SourceLine{sourceLine(p, "1", nil)})
	require.NoError(t, err)
	assert.Equal(t, VendorSourceSupplierRank, got.Source)
	assert.Equal(t, acme.ID, got.Partner.ID)
}
