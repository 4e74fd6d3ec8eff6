package routes

import (
	"procurehub/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathAuth           = "/auth"
	PathSuppliers      = "/suppliers"
	PathItems          = "/items"
	PathRequisitions   = "/purchase-requisitions"
	PathPurchaseOrders = "/purchase-orders"
	PathGoodsReceipts  = "/goods-receipts"
	PathInvoices       = "/invoices"
	PathDashboard      = "/dashboard"
)

func addProcurementRoutes(
	rg *gin.RouterGroup,
	authHandler *handlers.AuthHandler,
	supplierHandler *handlers.SupplierHandler,
	itemHandler *handlers.ItemHandler,
	requisitionHandler *handlers.RequisitionHandler,
	orderHandler *handlers.OrderHandler,
	receiptHandler *handlers.ReceiptHandler,
	invoiceHandler *handlers.InvoiceHandler,
	dashboardHandler *handlers.DashboardHandler,
) {
	auth := rg.Group(PathAuth)
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}

	suppliers := rg.Group(PathSuppliers)
	{
		suppliers.POST("", supplierHandler.Create)
		suppliers.GET("", supplierHandler.List)
		suppliers.GET("/:id", supplierHandler.GetByID)
		suppliers.PUT("/:id", supplierHandler.Update)
	}

	items := rg.Group(PathItems)
	{
		items.POST("", itemHandler.Create)
		items.GET("", itemHandler.List)
		items.GET("/low-stock", itemHandler.ListLowStock)
		items.GET("/:id", itemHandler.GetByID)
		items.PUT("/:id", itemHandler.Update)
	}

	requisitions := rg.Group(PathRequisitions)
	{
		requisitions.POST("", requisitionHandler.Create)
		requisitions.GET("", requisitionHandler.List)
		requisitions.PUT("/:id/approve", requisitionHandler.Approve)
	}

	orders := rg.Group(PathPurchaseOrders)
	{
		orders.POST("", orderHandler.Create)
		orders.GET("", orderHandler.List)
		orders.GET("/:id", orderHandler.GetByID)
		orders.PUT("/:id/approve", orderHandler.Approve)
		orders.GET("/:id/pdf", orderHandler.DownloadPDF)
	}

	receipts := rg.Group(PathGoodsReceipts)
	{
		receipts.POST("", receiptHandler.Create)
		receipts.GET("", receiptHandler.List)
	}

	invoices := rg.Group(PathInvoices)
	{
		invoices.POST("", invoiceHandler.Create)
		invoices.GET("", invoiceHandler.List)
	}

	rg.GET(PathDashboard+"/stats", dashboardHandler.Stats)
}
