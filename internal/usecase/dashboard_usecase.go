package usecase

import (
	"context"

	"procurehub/internal/domain/entities"
	"procurehub/internal/usecase/interfaces"
)

// Recent activity only ever reports up to this many orders.
const recentActivityWindow = 30

// DashboardStats is the read-only aggregate served by /dashboard/stats.
type DashboardStats struct {
	TotalSuppliers   int `json:"total_suppliers"`
	TotalItems       int `json:"total_items"`
	TotalPOs         int `json:"total_pos"`
	PendingApprovals int `json:"pending_approvals"`
	LowStockCount    int `json:"low_stock_count"`
	RecentActivity   int `json:"recent_activity"`
}

// IDashboardUseCase aggregates counts across the collections.
type IDashboardUseCase interface {
	Stats(ctx context.Context) (DashboardStats, error)
}

type DashboardUseCase struct {
	suppliers interfaces.ISupplierRepository
	items     interfaces.IItemRepository
	orders    interfaces.IOrderRepository
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(
	suppliers interfaces.ISupplierRepository,
	items interfaces.IItemRepository,
	orders interfaces.IOrderRepository,
) *DashboardUseCase {
	return &DashboardUseCase{suppliers: suppliers, items: items, orders: orders}
}

// Stats runs the counts sequentially; each is an independent read and a
// mid-flight write may show up in one count but not another.
func (u *DashboardUseCase) Stats(ctx context.Context) (DashboardStats, error) {
	var stats DashboardStats
	var err error

	if stats.TotalSuppliers, err = u.suppliers.Count(ctx); err != nil {
		return DashboardStats{}, err
	}
	if stats.TotalItems, err = u.items.Count(ctx); err != nil {
		return DashboardStats{}, err
	}
	if stats.TotalPOs, err = u.orders.Count(ctx); err != nil {
		return DashboardStats{}, err
	}
	if stats.PendingApprovals, err = u.orders.CountByStatus(ctx, entities.ApprovalStatusPending); err != nil {
		return DashboardStats{}, err
	}

	items, err := u.items.List(ctx)
	if err != nil {
		return DashboardStats{}, err
	}
	for _, i := range items {
		if i.LowStock() {
			stats.LowStockCount++
		}
	}

	stats.RecentActivity = stats.TotalPOs
	if stats.RecentActivity > recentActivityWindow {
		stats.RecentActivity = recentActivityWindow
	}
	return stats, nil
}
