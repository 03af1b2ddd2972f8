package service

import (
	"github.com/bitfantasy/nimo-saleslink/internal/shared/i18n"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// 消息ID
const (
	MsgExpectedSingleton      = "ExpectedSingleton"
	MsgSalesOrderNotFound     = "SalesOrderNotFound"
	MsgPurchaseOrderNotFound  = "PurchaseOrderNotFound"
	MsgNoLines                = "NoLines"
	MsgNoValidProducts        = "NoValidProducts"
	MsgNoVendor               = "NoVendor"
	MsgNoUom                  = "NoUom"
	MsgNoLinkedPurchaseOrders = "NoLinkedPurchaseOrders"
	MsgNoLinkedSalesOrder     = "NoLinkedSalesOrder"
	MsgPurchaseOrderTitle     = "PurchaseOrderTitle"
	MsgPurchaseOrdersTitle    = "PurchaseOrdersTitle"
	MsgSalesOrderTitle        = "SalesOrderTitle"
)

var englishMessages = []*goi18n.Message{
	{ID: MsgExpectedSingleton, Other: "Expected singleton: {{.Model}} ({{.Count}} records)"},
	{ID: MsgSalesOrderNotFound, Other: "Sales Order {{.ID}} does not exist."},
	{ID: MsgPurchaseOrderNotFound, Other: "Purchase Order {{.ID}} does not exist."},
	{ID: MsgNoLines, Other: "Cannot create a Purchase Order because this Sales Order has no lines."},
	{ID: MsgNoValidProducts, Other: "No valid products were found to purchase on this Sales Order."},
	{ID: MsgNoVendor, Other: "Cannot create a Purchase Order because no vendor could be determined or created. Please create at least one Vendor."},
	{ID: MsgNoUom, Other: "Cannot determine a Unit of Measure for product \"{{.Product}}\"."},
	{ID: MsgNoLinkedPurchaseOrders, Other: "No Purchase Orders are linked to this Sales Order."},
	{ID: MsgNoLinkedSalesOrder, Other: "This Purchase Order is not linked to a Sales Order."},
	{ID: MsgPurchaseOrderTitle, Other: "Purchase Order"},
	{ID: MsgPurchaseOrdersTitle, Other: "Purchase Orders"},
	{ID: MsgSalesOrderTitle, Other: "Sales Order"},
}

var chineseMessages = []*goi18n.Message{
	{ID: MsgExpectedSingleton, Other: "只能操作单条记录：{{.Model}}（{{.Count}} 条）"},
	{ID: MsgSalesOrderNotFound, Other: "销售订单 {{.ID}} 不存在。"},
	{ID: MsgPurchaseOrderNotFound, Other: "采购订单 {{.ID}} 不存在。"},
	{ID: MsgNoLines, Other: "无法创建采购订单：销售订单没有明细行。"},
	{ID: MsgNoValidProducts, Other: "无法创建采购订单：销售订单中没有可采购的有效产品。"},
	{ID: MsgNoVendor, Other: "无法创建采购订单：无法确定或创建供应商，请至少创建一个供应商。"},
	{ID: MsgNoUom, Other: "无法确定产品“{{.Product}}”的计量单位。"},
	{ID: MsgNoLinkedPurchaseOrders, Other: "该销售订单没有关联的采购订单。"},
	{ID: MsgNoLinkedSalesOrder, Other: "该采购订单没有关联销售订单。"},
	{ID: MsgPurchaseOrderTitle, Other: "采购订单"},
	{ID: MsgPurchaseOrdersTitle, Other: "采购订单"},
	{ID: MsgSalesOrderTitle, Other: "销售订单"},
}

// Catalogs 返回服务使用的全部消息目录
func Catalogs() []i18n.Catalog {
	return []i18n.Catalog{
		{Tag: language.English, Messages: englishMessages},
		{Tag: language.SimplifiedChinese, Messages: chineseMessages},
	}
}
