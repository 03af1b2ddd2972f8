package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/bitfantasy/nimo-saleslink/internal/saleslink/entity"
	"github.com/bitfantasy/nimo-saleslink/internal/saleslink/repository"
)

// LinkService 销售订单与采购订单之间的关联查询与导航
type LinkService struct {
	repos *repository.Repositories
	tr    Translator
}

func NewLinkService(repos *repository.Repositories, tr Translator) *LinkService {
	return &LinkService{repos: repos, tr: tr}
}

// GetSalesOrder 获取销售订单，附带关联采购订单数量
func (s *LinkService) GetSalesOrder(ctx context.Context, id string) (*entity.SalesOrder, error) {
	so, err := s.loadSalesOrder(ctx, s.repos, id)
	if err != nil {
		return nil, err
	}
	counts, err := s.repos.Purchase.CountBySaleOrderIDs(ctx, []string{so.ID})
	if err != nil {
		return nil, fmt.Errorf("统计采购订单失败: %w", err)
	}
	so.PurchaseOrderCount = counts[so.ID]
	return so, nil
}

// GetPurchaseOrder 获取采购订单
func (s *LinkService) GetPurchaseOrder(ctx context.Context, id string) (*entity.PurchaseOrder, error) {
	return s.loadPurchaseOrder(ctx, s.repos, id)
}

// GetLinkedPurchaseOrders 返回关联到该销售订单的全部采购订单，没有时返回空列表
func (s *LinkService) GetLinkedPurchaseOrders(ctx context.Context, soID string) ([]entity.PurchaseOrder, error) {
	return s.repos.Purchase.FindBySaleOrderID(ctx, soID)
}

// CountLinkedPurchaseOrders 批量统计关联采购订单数量
func (s *LinkService) CountLinkedPurchaseOrders(ctx context.Context, soIDs []string) (map[string]int, error) {
	return s.repos.Purchase.CountBySaleOrderIDs(ctx, soIDs)
}

// OpenLinkedPurchaseOrders 打开销售订单关联的采购订单：一张打开表单，多张打开列表
func (s *LinkService) OpenLinkedPurchaseOrders(ctx context.Context, soIDs []string) (*Action, error) {
	id, err := ensureOne(ctx, s.tr, ModelSalesOrder, soIDs)
	if err != nil {
		return nil, err
	}
	so, err := s.loadSalesOrder(ctx, s.repos, id)
	if err != nil {
		return nil, err
	}
	pos, err := s.repos.Purchase.FindBySaleOrderID(ctx, so.ID)
	if err != nil {
		return nil, fmt.Errorf("查询采购订单失败: %w", err)
	}
	return s.purchaseOrdersAction(ctx, pos)
}

// OpenLinkedSalesOrder 打开采购订单的来源销售订单
func (s *LinkService) OpenLinkedSalesOrder(ctx context.Context, poIDs []string) (*Action, error) {
	id, err := ensureOne(ctx, s.tr, ModelPurchaseOrder, poIDs)
	if err != nil {
		return nil, err
	}
	po, err := s.loadPurchaseOrder(ctx, s.repos, id)
	if err != nil {
		return nil, err
	}
	if po.SaleOrderID == nil || *po.SaleOrderID == "" {
		return nil, newError(ctx, s.tr, ErrNotFound, MsgNoLinkedSalesOrder, nil)
	}
	return formAction(s.tr.T(ctx, MsgSalesOrderTitle, nil), ModelSalesOrder, *po.SaleOrderID), nil
}

func (s *LinkService) purchaseOrdersAction(ctx context.Context, pos []entity.PurchaseOrder) (*Action, error) {
	switch len(pos) {
	case 0:
		return nil, newError(ctx, s.tr, ErrNotFound, MsgNoLinkedPurchaseOrders, nil)
	case 1:
		return formAction(s.tr.T(ctx, MsgPurchaseOrderTitle, nil), ModelPurchaseOrder, pos[0].ID), nil
	}
	ids := make([]string, 0, len(pos))
	for _, po := range pos {
		ids = append(ids, po.ID)
	}
	return listAction(s.tr.T(ctx, MsgPurchaseOrdersTitle, nil), ModelPurchaseOrder, ids), nil
}

func (s *LinkService) loadSalesOrder(ctx context.Context, repos *repository.Repositories, id string) (*entity.SalesOrder, error) {
	so, err := repos.Sales.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, newError(ctx, s.tr, ErrNotFound, MsgSalesOrderNotFound, map[string]interface{}{"ID": id})
	}
	if err != nil {
		return nil, fmt.Errorf("查询销售订单失败: %w", err)
	}
	return so, nil
}

func (s *LinkService) loadPurchaseOrder(ctx context.Context, repos *repository.Repositories, id string) (*entity.PurchaseOrder, error) {
	po, err := repos.Purchase.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, newError(ctx, s.tr, ErrNotFound, MsgPurchaseOrderNotFound, map[string]interface{}{"ID": id})
	}
	if err != nil {
		return nil, fmt.Errorf("查询采购订单失败: %w", err)
	}
	return po, nil
}
