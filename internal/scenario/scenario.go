// Package scenario implements the what-if overlay engine: a catalog of
// preloaded scenario datasets, a store holding the single active scenario,
// shallow-merge resolution of view data, and the idle watchdog that returns
// the app to baseline after inactivity.
//
// Views never know about simulation. They hand their baseline data to
// Apply/Resolve at render time and draw whatever comes back.
package scenario

import "context"

// Baseline is the non-simulated scenario id. Resolution is identity for it.
const Baseline = "NORMAL"

// KnownScenarios is the fixed set of simulatable scenario ids, preloaded at
// startup. The baseline id is not listed; it has no dataset.
var KnownScenarios = []string{"TRUCK_STRIKE", "HEATWAVE", "EARLY_MONSOON"}

// Scenario describes one simulatable condition for display.
type Scenario struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Dataset is a decoded scenario document. View keys (e.g. "dashboard_summary")
// map to partial override objects; other keys carry scenario metadata.
type Dataset map[string]any

// Source is the fetch capability the preloader consumes. Calls are
// single-shot; the preloader does not retry.
type Source interface {
	Scenarios(ctx context.Context) ([]Scenario, error)
	ScenarioDataset(ctx context.Context, id string) (Dataset, error)
}
