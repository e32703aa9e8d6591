package demo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/paintflow/internal/scenario"
	"github.com/jask/paintflow/internal/tui"
)

func TestScenariosListsKnownOrder(t *testing.T) {
	t.Parallel()

	f := NewFetcher()
	list, err := f.Scenarios(context.Background())
	require.NoError(t, err)

	var ids []string
	for _, s := range list {
		ids = append(ids, s.ID)
		require.NotEmpty(t, s.Name)
		require.NotEmpty(t, s.Description)
	}
	require.Equal(t, scenario.KnownScenarios, ids)
}

func TestHeatwaveDataset(t *testing.T) {
	t.Parallel()

	f := NewFetcher()
	ds, err := f.ScenarioDataset(context.Background(), "HEATWAVE")
	require.NoError(t, err)

	require.Equal(t, "HEATWAVE", ds["id"])
	require.Equal(t, 1.35, ds["demand_multiplier"])

	dash, ok := ds["dashboard_summary"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, 6_075_000.0, dash["total_revenue_mtd"])
	require.Equal(t, 11, dash["stockout_count"])
	require.Equal(t, 3, dash["pending_transfers"])
	require.Equal(t, 280_000.0, dash["revenue_at_risk"])
	require.Equal(t, 18.5, dash["avg_days_of_cover"])
}

func TestTruckStrikeDataset(t *testing.T) {
	t.Parallel()

	f := NewFetcher()
	ds, err := f.ScenarioDataset(context.Background(), "TRUCK_STRIKE")
	require.NoError(t, err)

	dash := ds["dashboard_summary"].(map[string]any)
	require.Equal(t, 4_500_000.0, dash["total_revenue_mtd"], "demand is unchanged, only inventory halves")
	require.Equal(t, 15, dash["stockout_count"])
	require.Equal(t, 5, dash["pending_transfers"])
	require.Equal(t, 625_000.0, dash["revenue_at_risk"])
	require.Equal(t, 12.5, dash["avg_days_of_cover"])
}

func TestUnknownScenarioDataset(t *testing.T) {
	t.Parallel()

	f := NewFetcher()
	_, err := f.ScenarioDataset(context.Background(), "BOGUS")
	require.Error(t, err)
}

func TestDatasetMergesOverBaseline(t *testing.T) {
	t.Parallel()

	// End to end through the overlay: only the moved KPIs change, the rest
	// stay baseline.
	f := NewFetcher()
	cat := scenario.NewCatalog()
	st := scenario.NewStore(cat)

	ds, err := f.ScenarioDataset(context.Background(), "HEATWAVE")
	require.NoError(t, err)
	require.True(t, cat.Insert("HEATWAVE", ds))
	st.Select("HEATWAVE")

	base, err := f.DashboardSummary(context.Background())
	require.NoError(t, err)

	merged := scenario.Apply(st, "dashboard_summary", base)
	require.Equal(t, 11, merged.StockoutCount)
	require.InDelta(t, 6_075_000, merged.TotalRevenueMTD, 1e-9)
	require.Equal(t, 487, merged.TotalSKUs, "untouched KPI keeps its baseline value")
	require.Equal(t, 6, merged.TotalWarehouses)
}

func TestFailureHooks(t *testing.T) {
	t.Parallel()

	f := NewFetcher()
	f.FailList = true
	f.FailDatasets = map[string]bool{"HEATWAVE": true}
	f.FailSummary = true
	f.FailChat = true

	ctx := context.Background()
	_, err := f.Scenarios(ctx)
	require.ErrorIs(t, err, ErrUnavailable)
	_, err = f.ScenarioDataset(ctx, "HEATWAVE")
	require.ErrorIs(t, err, ErrUnavailable)
	_, err = f.DashboardSummary(ctx)
	require.ErrorIs(t, err, ErrUnavailable)
	_, err = f.Chat(ctx, "hi", scenario.Baseline)
	require.ErrorIs(t, err, ErrUnavailable)

	// unhooked scenarios still work
	_, err = f.ScenarioDataset(ctx, "TRUCK_STRIKE")
	require.NoError(t, err)
}

func TestSeededNetworkIsConsistent(t *testing.T) {
	t.Parallel()

	f := NewFetcher()
	ctx := context.Background()

	summary, err := f.DashboardSummary(ctx)
	require.NoError(t, err)
	warehouses, err := f.InventoryMap(ctx)
	require.NoError(t, err)
	require.Len(t, warehouses, summary.TotalWarehouses)

	transfers, err := f.RecommendedTransfers(ctx)
	require.NoError(t, err)
	pending := 0
	for _, tr := range transfers {
		require.NotNil(t, tr.FromWarehouse)
		require.NotNil(t, tr.ToWarehouse)
		if tr.Status == "PENDING" {
			pending++
		}
	}
	require.Equal(t, summary.PendingTransfers, pending)

	top, err := f.TopSKUs(ctx, 3)
	require.NoError(t, err)
	require.Len(t, top, 3)
	require.Equal(t, "Bridal Red", top[0].ShadeName)

	require.NoError(t, f.ApproveTransfer(ctx, 101))
}

var _ tui.DataSource = (*Fetcher)(nil)
