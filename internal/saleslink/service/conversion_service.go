package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bitfantasy/nimo-saleslink/internal/saleslink/entity"
	"github.com/bitfantasy/nimo-saleslink/internal/saleslink/repository"
	"github.com/bitfantasy/nimo-saleslink/internal/shared/metrics"
	"go.uber.org/zap"
)

// ExistingLinkPolicy 销售订单已有关联采购订单时的处理方式
type ExistingLinkPolicy string

const (
	// PolicyRedirect 直接跳转到已有采购订单
	PolicyRedirect ExistingLinkPolicy = "redirect"
	// PolicyCreate 忽略已有关联，继续创建
	PolicyCreate ExistingLinkPolicy = "create"
)

// 转换结果，用于指标
const (
	outcomeCreated    = "created"
	outcomeRedirected = "redirected"
	outcomeRejected   = "rejected"
	outcomeError      = "error"
)

// ConversionService 由销售订单生成采购订单
type ConversionService struct {
	repos   *repository.Repositories
	link    *LinkService
	lines   *LineTranslator
	vendors *VendorResolver
	tr      Translator
	logger  *zap.Logger
	now     func() time.Time
	policy  ExistingLinkPolicy
}

func NewConversionService(repos *repository.Repositories, link *LinkService, lines *LineTranslator, vendors *VendorResolver, tr Translator, logger *zap.Logger, now func() time.Time, policy ExistingLinkPolicy) *ConversionService {
	if now == nil {
		now = time.Now
	}
	if policy == "" {
		policy = PolicyRedirect
	}
	return &ConversionService{
		repos:   repos,
		link:    link,
		lines:   lines,
		vendors: vendors,
		tr:      tr,
		logger:  logger,
		now:     now,
		policy:  policy,
	}
}

// CreatePurchaseOrder 为单个销售订单创建草稿采购订单（询价单），返回跳转指令
func (s *ConversionService) CreatePurchaseOrder(ctx context.Context, soIDs []string, userID string) (*Action, error) {
	soID, err := ensureOne(ctx, s.tr, ModelSalesOrder, soIDs)
	if err != nil {
		s.record(soID, nil, "", err)
		return nil, err
	}

	var (
		action  *Action
		created *entity.PurchaseOrder
		source  VendorSource // 未走到供应商解析时为空
	)
	err = s.repos.Transaction(ctx, func(repos *repository.Repositories) error {
		so, err := s.link.loadSalesOrder(ctx, repos, soID)
		if err != nil {
			return err
		}

		if s.policy == PolicyRedirect {
			linked, err := repos.Purchase.FindBySaleOrderID(ctx, so.ID)
			if err != nil {
				return fmt.Errorf("查询已关联采购订单失败: %w", err)
			}
			if len(linked) > 0 {
				action, err = s.link.purchaseOrdersAction(ctx, linked)
				return err
			}
		}

		if len(so.Lines) == 0 {
			return newError(ctx, s.tr, ErrValidationFailure, MsgNoLines, nil)
		}

		sourceLines, err := loadSourceLines(ctx, repos.Product, so.Lines)
		if err != nil {
			return err
		}
		drafts, err := s.lines.Translate(ctx, sourceLines)
		if err != nil {
			return err
		}
		if len(drafts) == 0 {
			return newError(ctx, s.tr, ErrValidationFailure, MsgNoValidProducts, nil)
		}

		vendor, err := s.vendors.Resolve(ctx, repos.Partner, sourceLines)
		if err != nil {
			return err
		}
		source = vendor.Source
		if vendor.Partner == nil {
			return newError(ctx, s.tr, ErrValidationFailure, MsgNoVendor, nil)
		}

		now := s.now()
		code, err := repos.Purchase.GenerateCode(ctx, now)
		if err != nil {
			return fmt.Errorf("生成采购订单编码失败: %w", err)
		}

		po := &entity.PurchaseOrder{
			ID:          entity.NewID(),
			Name:        code,
			Origin:      so.Name,
			PartnerID:   vendor.Partner.ID,
			CompanyID:   so.CompanyID,
			Currency:    so.Currency,
			State:       entity.POStateDraft,
			DateOrder:   &now,
			SaleOrderID: &so.ID,
			CreatedBy:   userID,
		}
		po.Lines = toPOLines(po.ID, drafts)
		if err := repos.Purchase.Create(ctx, po); err != nil {
			return fmt.Errorf("创建采购订单失败: %w", err)
		}

		created = po
		action = formAction(s.tr.T(ctx, MsgPurchaseOrderTitle, nil), ModelPurchaseOrder, po.ID)
		return nil
	})

	s.record(soID, created, source, err)
	if err != nil {
		return nil, err
	}
	return action, nil
}

// CopyPurchaseOrder 复制采购订单为新的草稿，不复制销售订单关联
func (s *ConversionService) CopyPurchaseOrder(ctx context.Context, poID, userID string) (*entity.PurchaseOrder, error) {
	var dup *entity.PurchaseOrder
	err := s.repos.Transaction(ctx, func(repos *repository.Repositories) error {
		src, err := s.link.loadPurchaseOrder(ctx, repos, poID)
		if err != nil {
			return err
		}

		now := s.now()
		code, err := repos.Purchase.GenerateCode(ctx, now)
		if err != nil {
			return fmt.Errorf("生成采购订单编码失败: %w", err)
		}

		dup = &entity.PurchaseOrder{
			ID:        entity.NewID(),
			Name:      code,
			Origin:    src.Origin,
			PartnerID: src.PartnerID,
			CompanyID: src.CompanyID,
			Currency:  src.Currency,
			State:     entity.POStateDraft,
			DateOrder: &now,
			CreatedBy: userID,
		}
		for _, l := range src.Lines {
			dup.Lines = append(dup.Lines, entity.POLine{
				OrderID:      dup.ID,
				Sequence:     l.Sequence,
				ProductID:    l.ProductID,
				Name:         l.Name,
				ProductQty:   l.ProductQty,
				ProductUomID: l.ProductUomID,
				PriceUnit:    l.PriceUnit,
				DatePlanned:  l.DatePlanned,
			})
		}
		if err := repos.Purchase.Create(ctx, dup); err != nil {
			return fmt.Errorf("复制采购订单失败: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("purchase order copied",
		zap.String("source_po_id", poID),
		zap.String("po_id", dup.ID),
	)
	return dup, nil
}

func (s *ConversionService) record(soID string, po *entity.PurchaseOrder, source VendorSource, err error) {
	var svcErr *Error
	switch {
	case err == nil && po != nil:
		metrics.ConversionsTotal.WithLabelValues(outcomeCreated).Inc()
		metrics.VendorResolutionsTotal.WithLabelValues(string(source)).Inc()
		s.logger.Info("purchase order created from sales order",
			zap.String("so_id", soID),
			zap.String("po_id", po.ID),
			zap.String("po_name", po.Name),
			zap.String("vendor_source", string(source)),
		)
	case err == nil:
		metrics.ConversionsTotal.WithLabelValues(outcomeRedirected).Inc()
		s.logger.Info("sales order already linked, redirecting", zap.String("so_id", soID))
	case errors.As(err, &svcErr):
		metrics.ConversionsTotal.WithLabelValues(outcomeRejected).Inc()
		if source == VendorSourceNone {
			metrics.VendorResolutionsTotal.WithLabelValues(string(source)).Inc()
		}
		s.logger.Info("create purchase order rejected",
			zap.String("so_id", soID),
			zap.String("vendor_source", string(source)),
			zap.String("reason", svcErr.Message),
		)
	default:
		metrics.ConversionsTotal.WithLabelValues(outcomeError).Inc()
		s.logger.Error("create purchase order failed", zap.String("so_id", soID), zap.Error(err))
	}
}
