package handler

import (
	"github.com/bitfantasy/nimo-saleslink/internal/saleslink/service"
	"github.com/gin-gonic/gin"
)

// SalesOrderHandler 销售订单侧动作
type SalesOrderHandler struct {
	link       *service.LinkService
	conversion *service.ConversionService
}

func NewSalesOrderHandler(link *service.LinkService, conversion *service.ConversionService) *SalesOrderHandler {
	return &SalesOrderHandler{link: link, conversion: conversion}
}

// Get 销售订单详情（含关联采购订单数量）
// GET /api/v1/saleslink/sales-orders/:id
func (h *SalesOrderHandler) Get(c *gin.Context) {
	so, err := h.link.GetSalesOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	Success(c, so)
}

// ListPurchaseOrders 关联的采购订单
// GET /api/v1/saleslink/sales-orders/:id/purchase-orders
func (h *SalesOrderHandler) ListPurchaseOrders(c *gin.Context) {
	ctx := c.Request.Context()
	so, err := h.link.GetSalesOrder(ctx, c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	pos, err := h.link.GetLinkedPurchaseOrders(ctx, so.ID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	Success(c, pos)
}

// CreatePurchaseOrder 由销售订单生成询价单
// POST /api/v1/saleslink/sales-orders/:id/create-purchase-order
// POST /api/v1/saleslink/sales-orders/actions/create-purchase-order {"ids": [...]}
func (h *SalesOrderHandler) CreatePurchaseOrder(c *gin.Context) {
	ids, ok := receiverIDs(c)
	if !ok {
		return
	}
	action, err := h.conversion.CreatePurchaseOrder(c.Request.Context(), ids, GetUserID(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	Success(c, action)
}

// ViewPurchaseOrders 跳转到关联的采购订单
// POST /api/v1/saleslink/sales-orders/:id/view-purchase-orders
// POST /api/v1/saleslink/sales-orders/actions/view-purchase-orders {"ids": [...]}
func (h *SalesOrderHandler) ViewPurchaseOrders(c *gin.Context) {
	ids, ok := receiverIDs(c)
	if !ok {
		return
	}
	action, err := h.link.OpenLinkedPurchaseOrders(c.Request.Context(), ids)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	Success(c, action)
}
