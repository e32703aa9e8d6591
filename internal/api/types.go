package api

// DashboardSummary is the admin command-center KPI block. Scenario datasets
// override it under the "dashboard_summary" view key, usually only the
// fields a disruption touches.
type DashboardSummary struct {
	TotalSKUs       int     `json:"total_skus"`
	TotalWarehouses int     `json:"total_warehouses"`
	TotalDealers    int     `json:"total_dealers"`
	TotalRevenueMTD float64 `json:"total_revenue_mtd"`
	StockoutCount   int     `json:"stockout_count"`
	PendingTransfers int    `json:"pending_transfers"`
	RevenueAtRisk   float64 `json:"revenue_at_risk"`
	DeadStockCount  int     `json:"dead_stock_count"`
	AvgDaysOfCover  float64 `json:"avg_days_of_cover"`
}

// WarehouseStatus is one warehouse row of the network map.
type WarehouseStatus struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	City          string  `json:"city"`
	Code          string  `json:"code"`
	Status        string  `json:"status"` // critical | low | overstocked | healthy
	TotalStock    int     `json:"total_stock"`
	CriticalSKUs  int     `json:"critical_skus"`
	OverstockSKUs int     `json:"overstock_skus"`
	RevenueAtRisk float64 `json:"revenue_at_risk"`
}

// WarehouseRef is the abbreviated warehouse embedded in a transfer.
type WarehouseRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	City string `json:"city"`
}

// TransferRecommendation is a pending or in-flight stock transfer.
type TransferRecommendation struct {
	ID            int           `json:"id"`
	FromWarehouse *WarehouseRef `json:"from_warehouse"`
	ToWarehouse   *WarehouseRef `json:"to_warehouse"`
	SKUCode       string        `json:"sku_code"`
	ShadeName     string        `json:"shade_name"`
	ShadeHex      string        `json:"shade_hex"`
	Quantity      int           `json:"quantity"`
	Status        string        `json:"status"` // PENDING | APPROVED | IN_TRANSIT
	Reason        string        `json:"reason"`
}

// TopSKU is one row of the top-sellers listing.
type TopSKU struct {
	SKUCode      string  `json:"sku_code"`
	ShadeName    string  `json:"shade_name"`
	TotalRevenue float64 `json:"total_revenue"`
	TotalQty     int     `json:"total_qty"`
}
