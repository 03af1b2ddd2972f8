package handler

import (
	"errors"

	"github.com/bitfantasy/nimo-saleslink/internal/middleware"
	"github.com/bitfantasy/nimo-saleslink/internal/saleslink/service"
	"github.com/gin-gonic/gin"
)

// PermWrite 创建/复制采购订单所需权限
const PermWrite = "saleslink:write"

// Handlers 销售/采购关联处理器集合
type Handlers struct {
	SalesOrder    *SalesOrderHandler
	PurchaseOrder *PurchaseOrderHandler
}

// NewHandlers 创建处理器集合
func NewHandlers(svcs *service.Services) *Handlers {
	return &Handlers{
		SalesOrder:    NewSalesOrderHandler(svcs.Link, svcs.Conversion),
		PurchaseOrder: NewPurchaseOrderHandler(svcs.Link, svcs.Conversion),
	}
}

// Register 注册路由，rg 应已挂载认证中间件
func (h *Handlers) Register(rg *gin.RouterGroup) {
	write := middleware.RequirePermission(PermWrite)

	salesOrders := rg.Group("/sales-orders")
	{
		salesOrders.POST("/actions/create-purchase-order", write, h.SalesOrder.CreatePurchaseOrder)
		salesOrders.POST("/actions/view-purchase-orders", h.SalesOrder.ViewPurchaseOrders)
		salesOrders.GET("/:id", h.SalesOrder.Get)
		salesOrders.GET("/:id/purchase-orders", h.SalesOrder.ListPurchaseOrders)
		salesOrders.POST("/:id/create-purchase-order", write, h.SalesOrder.CreatePurchaseOrder)
		salesOrders.POST("/:id/view-purchase-orders", h.SalesOrder.ViewPurchaseOrders)
	}

	purchaseOrders := rg.Group("/purchase-orders")
	{
		purchaseOrders.POST("/actions/view-sales-order", h.PurchaseOrder.ViewSalesOrder)
		purchaseOrders.GET("/:id", h.PurchaseOrder.Get)
		purchaseOrders.POST("/:id/view-sales-order", h.PurchaseOrder.ViewSalesOrder)
		purchaseOrders.POST("/:id/copy", write, h.PurchaseOrder.Copy)
	}
}

// === 响应辅助函数 ===

type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// ActionRequest 批量动作请求，ids 为动作接收方记录
type ActionRequest struct {
	IDs []string `json:"ids"`
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(200, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(201, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

func Error(c *gin.Context, code int, message string) {
	statusCode := code / 100
	if statusCode < 100 || statusCode > 599 {
		statusCode = 500
	}
	c.JSON(statusCode, Response{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, message string) {
	Error(c, 40000, message)
}

func NotFound(c *gin.Context, message string) {
	Error(c, 40400, message)
}

func Unprocessable(c *gin.Context, message string) {
	Error(c, 42200, message)
}

func InternalError(c *gin.Context, message string) {
	Error(c, 50000, message)
}

func GetUserID(c *gin.Context) string {
	return c.GetString("user_id")
}

// handleServiceError 将服务错误映射为响应码
func handleServiceError(c *gin.Context, err error) {
	var svcErr *service.Error
	if !errors.As(err, &svcErr) {
		_ = c.Error(err)
		InternalError(c, "internal server error")
		return
	}

	switch {
	case errors.Is(err, service.ErrInvalidOperation):
		BadRequest(c, svcErr.Message)
	case errors.Is(err, service.ErrValidationFailure):
		Unprocessable(c, svcErr.Message)
	case errors.Is(err, service.ErrNotFound):
		NotFound(c, svcErr.Message)
	default:
		_ = c.Error(err)
		InternalError(c, svcErr.Message)
	}
}

// receiverIDs 路径参数优先，否则读取请求体中的 ids
func receiverIDs(c *gin.Context) ([]string, bool) {
	if id := c.Param("id"); id != "" {
		return []string{id}, true
	}
	var req ActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request body: "+err.Error())
		return nil, false
	}
	return req.IDs, true
}
