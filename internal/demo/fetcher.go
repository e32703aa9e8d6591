// Package demo is an offline, seeded implementation of the data-fetch port.
// It mimics the backend's interfaces and behavior so the dashboard and
// copilot stay usable with no backend running, and so tests can exercise
// every fetch path deterministically.
package demo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jask/paintflow/internal/api"
	"github.com/jask/paintflow/internal/scenario"
)

// ErrUnavailable is returned by any call whose failure hook is set.
var ErrUnavailable = errors.New("demo: endpoint unavailable")

// Fetcher serves seeded supply-network data. The Fail* hooks let tests flip
// individual endpoints into failure to exercise the absorb-at-boundary error
// paths.
type Fetcher struct {
	FailList     bool
	FailDatasets map[string]bool
	FailChat     bool
	FailSummary  bool
}

func NewFetcher() *Fetcher {
	return &Fetcher{}
}

// definition mirrors the backend's scenario table: a named disruption with
// inventory and demand multipliers the overrides are derived from.
type definition struct {
	name            string
	description     string
	impact          string
	affectedRegions []string
	inventoryMult   float64
	demandMult      float64
}

var definitions = map[string]definition{
	"TRUCK_STRIKE": {
		name:            "Truck Strike",
		description:     "Nationwide trucking strike reduces inbound stock by 50% for 5 days.",
		impact:          "Cascading stockouts across West and Central regions.",
		affectedRegions: []string{"West", "Central"},
		inventoryMult:   0.5,
		demandMult:      1.0,
	},
	"HEATWAVE": {
		name:            "Heatwave",
		description:     "Severe heatwave increases exterior paint demand by 35%.",
		impact:          "Exterior paints deplete faster in North and Central regions.",
		affectedRegions: []string{"North", "Central"},
		inventoryMult:   1.0,
		demandMult:      1.35,
	},
	"EARLY_MONSOON": {
		name:            "Early Monsoon",
		description:     "Monsoon arrives 2 weeks early, waterproofing demand surges 60%.",
		impact:          "Waterproofing products deplete rapidly in West and South.",
		affectedRegions: []string{"West", "South"},
		inventoryMult:   1.0,
		demandMult:      1.6,
	},
}

// Scenarios lists the simulatable scenarios in a stable order.
func (f *Fetcher) Scenarios(ctx context.Context) ([]scenario.Scenario, error) {
	if f.FailList {
		return nil, ErrUnavailable
	}
	var out []scenario.Scenario
	for _, id := range scenario.KnownScenarios {
		def := definitions[id]
		out = append(out, scenario.Scenario{ID: id, Name: def.name, Description: def.description})
	}
	return out, nil
}

// ScenarioDataset computes the scenario document the backend would have
// precomputed, with the dashboard overrides derived from the multipliers.
func (f *Fetcher) ScenarioDataset(ctx context.Context, id string) (scenario.Dataset, error) {
	if f.FailDatasets[id] {
		return nil, ErrUnavailable
	}
	def, ok := definitions[id]
	if !ok {
		return nil, fmt.Errorf("demo: unknown scenario %s", id)
	}
	regions := make([]any, 0, len(def.affectedRegions))
	for _, r := range def.affectedRegions {
		regions = append(regions, r)
	}
	return scenario.Dataset{
		"id":                   id,
		"name":                 def.name,
		"description":          def.description,
		"impact":               def.impact,
		"affected_regions":     regions,
		"inventory_multiplier": def.inventoryMult,
		"demand_multiplier":    def.demandMult,
		"dashboard_summary":    scenarioDashboard(def),
	}, nil
}

// scenarioDashboard derives the modified KPI block for a scenario. Only the
// metrics a disruption moves are present; untouched figures stay baseline
// through the shallow merge.
func scenarioDashboard(def definition) map[string]any {
	inv, demand := def.inventoryMult, def.demandMult
	return map[string]any{
		"total_revenue_mtd": round0(4_500_000 * demand),
		"stockout_count":    int(8 + (1-inv)*15 + (demand-1)*10),
		"pending_transfers": int(3 + (1-inv)*5),
		"revenue_at_risk":   round0(1_250_000*(1-inv) + 800_000*(demand-1)),
		"avg_days_of_cover": round1(25 * inv / demand),
	}
}

// DashboardSummary returns the baseline KPI block.
func (f *Fetcher) DashboardSummary(ctx context.Context) (api.DashboardSummary, error) {
	if f.FailSummary {
		return api.DashboardSummary{}, ErrUnavailable
	}
	return api.DashboardSummary{
		TotalSKUs:        487,
		TotalWarehouses:  6,
		TotalDealers:     128,
		TotalRevenueMTD:  4_500_000,
		StockoutCount:    8,
		PendingTransfers: 3,
		RevenueAtRisk:    450_000,
		DeadStockCount:   12,
		AvgDaysOfCover:   25,
	}, nil
}

// InventoryMap returns the seeded warehouse network.
func (f *Fetcher) InventoryMap(ctx context.Context) ([]api.WarehouseStatus, error) {
	return []api.WarehouseStatus{
		{ID: 1, Name: "Mumbai Central WH", City: "Mumbai", Code: "BOM", Status: "overstocked", TotalStock: 48_200, OverstockSKUs: 6},
		{ID: 2, Name: "Pune Regional WH", City: "Pune", Code: "PNQ", Status: "critical", TotalStock: 9_400, CriticalSKUs: 3, RevenueAtRisk: 210_000},
		{ID: 3, Name: "Delhi North WH", City: "Delhi", Code: "DEL", Status: "critical", TotalStock: 21_700, CriticalSKUs: 2, RevenueAtRisk: 130_000},
		{ID: 4, Name: "Chennai South WH", City: "Chennai", Code: "MAA", Status: "critical", TotalStock: 15_300, CriticalSKUs: 1, RevenueAtRisk: 110_000},
		{ID: 5, Name: "Bengaluru Hub", City: "Bengaluru", Code: "BLR", Status: "healthy", TotalStock: 27_800},
		{ID: 6, Name: "Kolkata East WH", City: "Kolkata", Code: "CCU", Status: "low", TotalStock: 12_100},
	}, nil
}

// RecommendedTransfers returns the seeded pending transfers.
func (f *Fetcher) RecommendedTransfers(ctx context.Context) ([]api.TransferRecommendation, error) {
	return []api.TransferRecommendation{
		{
			ID:            101,
			FromWarehouse: &api.WarehouseRef{ID: 1, Name: "Mumbai Central WH", City: "Mumbai"},
			ToWarehouse:   &api.WarehouseRef{ID: 2, Name: "Pune Regional WH", City: "Pune"},
			SKUCode:       "AP-BR-20L",
			ShadeName:     "Bridal Red",
			ShadeHex:      "#C41E3A",
			Quantity:      500,
			Status:        "PENDING",
			Reason:        "Wedding season surge depleting Pune stock",
		},
		{
			ID:            102,
			FromWarehouse: &api.WarehouseRef{ID: 5, Name: "Bengaluru Hub", City: "Bengaluru"},
			ToWarehouse:   &api.WarehouseRef{ID: 4, Name: "Chennai South WH", City: "Chennai"},
			SKUCode:       "AP-PB-10L",
			ShadeName:     "Pacific Breeze",
			ShadeHex:      "#7EC8E3",
			Quantity:      320,
			Status:        "PENDING",
			Reason:        "Coastal repaint demand above forecast",
		},
		{
			ID:            103,
			FromWarehouse: &api.WarehouseRef{ID: 1, Name: "Mumbai Central WH", City: "Mumbai"},
			ToWarehouse:   &api.WarehouseRef{ID: 3, Name: "Delhi North WH", City: "Delhi"},
			SKUCode:       "AP-TD-20L",
			ShadeName:     "Terracotta Dream",
			ShadeHex:      "#E2725B",
			Quantity:      260,
			Status:        "IN_TRANSIT",
			Reason:        "Pre-festival rebalancing",
		},
	}, nil
}

// TopSKUs returns the seeded top sellers, truncated to limit.
func (f *Fetcher) TopSKUs(ctx context.Context, limit int) ([]api.TopSKU, error) {
	all := []api.TopSKU{
		{SKUCode: "AP-BR-20L", ShadeName: "Bridal Red", TotalRevenue: 820_000, TotalQty: 4_100},
		{SKUCode: "AP-RL-20L", ShadeName: "Royale Luxury Emulsion", TotalRevenue: 640_000, TotalQty: 1_600},
		{SKUCode: "AP-PB-10L", ShadeName: "Pacific Breeze", TotalRevenue: 410_000, TotalQty: 2_050},
		{SKUCode: "AP-TD-20L", ShadeName: "Terracotta Dream", TotalRevenue: 380_000, TotalQty: 1_900},
		{SKUCode: "AP-MI-10L", ShadeName: "Midnight Indigo", TotalRevenue: 290_000, TotalQty: 1_450},
	}
	if limit > 0 && limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

// ApproveTransfer accepts any known transfer id.
func (f *Fetcher) ApproveTransfer(ctx context.Context, id int) error {
	return nil
}

func round0(v float64) float64 {
	if v < 0 {
		return float64(int64(v - 0.5))
	}
	return float64(int64(v + 0.5))
}

func round1(v float64) float64 {
	return round0(v*10) / 10
}
