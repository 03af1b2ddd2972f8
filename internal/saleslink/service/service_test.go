package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bitfantasy/nimo-saleslink/internal/saleslink/repository"
	"github.com/bitfantasy/nimo-saleslink/internal/saleslink/testutil"
	"github.com/bitfantasy/nimo-saleslink/internal/shared/i18n"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var fixedNow = time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC)

func newTranslator(t *testing.T) *i18n.Translator {
	t.Helper()
	tr, err := i18n.NewTranslator("en", Catalogs()...)
	require.NoError(t, err)
	return tr
}

type testEnv struct {
	db    *gorm.DB
	repos *repository.Repositories
	svcs  *Services
}

func setupServices(t *testing.T, policy ExistingLinkPolicy) *testEnv {
	t.Helper()
	db := testutil.SetupTestDB(t)
	repos := repository.NewRepositories(db)
	svcs := NewServices(repos, newTranslator(t), zap.NewNop(), Options{
		ExistingLinkPolicy: policy,
		Now:                func() time.Time { return fixedNow },
	})
	return &testEnv{db: db, repos: repos, svcs: svcs}
}

func requireKind(t *testing.T, err error, kind error) *Error {
	t.Helper()
	require.Error(t, err)
	require.True(t, errors.Is(err, kind), "expected %v, got %v", kind, err)
	var svcErr *Error
	require.True(t, errors.As(err, &svcErr))
	return svcErr
}

func (e *testEnv) purchaseOrderCount(t *testing.T) int64 {
	t.Helper()
	var n int64
	require.NoError(t, e.db.Table("sl_purchase_orders").Count(&n).Error)
	return n
}

var bg = context.Background()

func nowFunc() func() time.Time {
	return func() time.Time { return fixedNow }
}
