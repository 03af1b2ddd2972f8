package handler

import (
	"github.com/bitfantasy/nimo-saleslink/internal/saleslink/service"
	"github.com/gin-gonic/gin"
)

// PurchaseOrderHandler 采购订单侧动作
type PurchaseOrderHandler struct {
	link       *service.LinkService
	conversion *service.ConversionService
}

func NewPurchaseOrderHandler(link *service.LinkService, conversion *service.ConversionService) *PurchaseOrderHandler {
	return &PurchaseOrderHandler{link: link, conversion: conversion}
}

// Get 采购订单详情
// GET /api/v1/saleslink/purchase-orders/:id
func (h *PurchaseOrderHandler) Get(c *gin.Context) {
	po, err := h.link.GetPurchaseOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	Success(c, po)
}

// ViewSalesOrder 跳转到来源销售订单
// POST /api/v1/saleslink/purchase-orders/:id/view-sales-order
// POST /api/v1/saleslink/purchase-orders/actions/view-sales-order {"ids": [...]}
func (h *PurchaseOrderHandler) ViewSalesOrder(c *gin.Context) {
	ids, ok := receiverIDs(c)
	if !ok {
		return
	}
	action, err := h.link.OpenLinkedSalesOrder(c.Request.Context(), ids)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	Success(c, action)
}

// Copy 复制采购订单（不保留销售订单关联）
// POST /api/v1/saleslink/purchase-orders/:id/copy
func (h *PurchaseOrderHandler) Copy(c *gin.Context) {
	po, err := h.conversion.CopyPurchaseOrder(c.Request.Context(), c.Param("id"), GetUserID(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	Created(c, po)
}
