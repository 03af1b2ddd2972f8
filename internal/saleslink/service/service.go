package service

import (
	"time"

	"github.com/bitfantasy/nimo-saleslink/internal/saleslink/repository"
	"go.uber.org/zap"
)

// Options 服务配置
type Options struct {
	ExistingLinkPolicy    ExistingLinkPolicy
	PlaceholderVendorName string
	// Now 时钟，为空时使用 time.Now
	Now func() time.Time
}

// Services 销售/采购关联服务集合
type Services struct {
	Link       *LinkService
	Conversion *ConversionService
}

// NewServices 创建服务集合
func NewServices(repos *repository.Repositories, tr Translator, logger *zap.Logger, opts Options) *Services {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	link := NewLinkService(repos, tr)
	return &Services{
		Link: link,
		Conversion: NewConversionService(
			repos,
			link,
			NewLineTranslator(tr, now),
			NewVendorResolver(opts.PlaceholderVendorName, logger),
			tr,
			logger,
			now,
			opts.ExistingLinkPolicy,
		),
	}
}
