package scenario

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func heatwaveStore(t *testing.T) *Store {
	t.Helper()
	catalog := NewCatalog()
	catalog.Insert("HEATWAVE", Dataset{
		"dashboard_summary": map[string]any{"stockout_count": 42},
	})
	return NewStore(catalog)
}

func TestResolveBaselineIsIdentity(t *testing.T) {
	t.Parallel()

	st := heatwaveStore(t)
	baseline := map[string]any{"stockout_count": 3, "total_skus": 500}

	got := Resolve(st, "dashboard_summary", baseline)
	require.Equal(t, baseline, got)
}

func TestResolveShallowMerge(t *testing.T) {
	t.Parallel()

	st := heatwaveStore(t)
	st.Select("HEATWAVE")
	baseline := map[string]any{"stockout_count": 3, "total_skus": 500}

	got := Resolve(st, "dashboard_summary", baseline)
	require.Equal(t, map[string]any{"stockout_count": 42, "total_skus": 500}, got)

	// baseline is untouched
	require.Equal(t, 3, baseline["stockout_count"])
}

func TestResolveUnknownViewKeyFallsBack(t *testing.T) {
	t.Parallel()

	st := heatwaveStore(t)
	st.Select("HEATWAVE")
	baseline := map[string]any{"count": 7}

	require.Equal(t, baseline, Resolve(st, "warehouse_map", baseline))
}

func TestApplyTypedOverride(t *testing.T) {
	t.Parallel()

	type summary struct {
		StockoutCount int `json:"stockout_count"`
		TotalSKUs     int `json:"total_skus"`
	}

	st := heatwaveStore(t)
	base := summary{StockoutCount: 3, TotalSKUs: 500}

	// baseline: identity
	require.Equal(t, base, Apply(st, "dashboard_summary", base))

	// overridden field replaced, absent field retained
	st.Select("HEATWAVE")
	got := Apply(st, "dashboard_summary", base)
	require.Equal(t, summary{StockoutCount: 42, TotalSKUs: 500}, got)
}

func TestApplyIgnoresUnknownOverrideFields(t *testing.T) {
	t.Parallel()

	type summary struct {
		TotalSKUs int `json:"total_skus"`
	}

	catalog := NewCatalog()
	catalog.Insert("HEATWAVE", Dataset{
		"dashboard_summary": map[string]any{"stockout_count": 42},
	})
	st := NewStore(catalog)
	st.Select("HEATWAVE")

	got := Apply(st, "dashboard_summary", summary{TotalSKUs: 500})
	require.Equal(t, summary{TotalSKUs: 500}, got)
}
