package scenario

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeSource serves canned datasets and fails on demand.
type fakeSource struct {
	mu       sync.Mutex
	datasets map[string]Dataset
	failIDs  map[string]bool
	failList bool
	calls    []string
}

func (f *fakeSource) Scenarios(ctx context.Context) ([]Scenario, error) {
	if f.failList {
		return nil, errors.New("list unavailable")
	}
	return []Scenario{{ID: "HEATWAVE", Name: "Heatwave"}, {ID: "TRUCK_STRIKE", Name: "Truck Strike"}}, nil
}

func (f *fakeSource) ScenarioDataset(ctx context.Context, id string) (Dataset, error) {
	f.mu.Lock()
	f.calls = append(f.calls, id)
	f.mu.Unlock()
	if f.failIDs[id] {
		return nil, errors.New("dataset unavailable")
	}
	return f.datasets[id], nil
}

func TestPreloadPopulatesCatalog(t *testing.T) {
	t.Parallel()

	src := &fakeSource{datasets: map[string]Dataset{
		"HEATWAVE":     {"dashboard_summary": map[string]any{"stockout_count": 42}},
		"TRUCK_STRIKE": {"dashboard_summary": map[string]any{"stockout_count": 15}},
	}}
	catalog := NewCatalog()

	Preload(context.Background(), src, catalog, []string{"HEATWAVE", "TRUCK_STRIKE"})

	_, ok := catalog.Dataset("HEATWAVE")
	require.True(t, ok)
	_, ok = catalog.Dataset("TRUCK_STRIKE")
	require.True(t, ok)
	require.Len(t, catalog.Scenarios(), 2)
	require.ElementsMatch(t, []string{"HEATWAVE", "TRUCK_STRIKE"}, src.calls)
}

func TestPreloadIsolatesPerScenarioFailure(t *testing.T) {
	t.Parallel()

	src := &fakeSource{
		datasets: map[string]Dataset{"HEATWAVE": {"dashboard_summary": map[string]any{}}},
		failIDs:  map[string]bool{"TRUCK_STRIKE": true},
	}
	catalog := NewCatalog()

	Preload(context.Background(), src, catalog, []string{"HEATWAVE", "TRUCK_STRIKE"})

	// one bad dataset must not prevent switching into the working ones
	_, ok := catalog.Dataset("HEATWAVE")
	require.True(t, ok)
	_, ok = catalog.Dataset("TRUCK_STRIKE")
	require.False(t, ok)
}

func TestPreloadListFailureLeavesListEmpty(t *testing.T) {
	t.Parallel()

	src := &fakeSource{
		datasets: map[string]Dataset{"HEATWAVE": {"dashboard_summary": map[string]any{}}},
		failList: true,
	}
	catalog := NewCatalog()

	Preload(context.Background(), src, catalog, []string{"HEATWAVE"})

	require.Empty(t, catalog.Scenarios())
	_, ok := catalog.Dataset("HEATWAVE")
	require.True(t, ok, "dataset preload must not be blocked by the list failure")
}
