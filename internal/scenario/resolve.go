package scenario

import "encoding/json"

// Resolve returns the data a view should render for viewKey: the baseline
// unchanged when no override is active, otherwise a shallow field-union where
// override fields replace baseline fields and absent fields fall back to
// baseline. Scenario datasets describe only the deltas of a disruption, so a
// full replacement would zero the untouched figures.
func Resolve(st *Store, viewKey string, baseline map[string]any) map[string]any {
	override := st.ResolvedData(viewKey)
	if override == nil {
		return baseline
	}
	merged := make(map[string]any, len(baseline)+len(override))
	for k, v := range baseline {
		merged[k] = v
	}
	for k, v := range override {
		merged[k] = v
	}
	return merged
}

// Apply is Resolve for typed view data. The baseline round-trips through
// JSON so the override's field names line up with the wire names the dataset
// uses. Any marshalling problem returns the baseline untouched; overlay
// resolution never fails a view.
func Apply[T any](st *Store, viewKey string, base T) T {
	override := st.ResolvedData(viewKey)
	if override == nil {
		return base
	}
	raw, err := json.Marshal(base)
	if err != nil {
		return base
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return base
	}
	merged := Resolve(st, viewKey, m)
	buf, err := json.Marshal(merged)
	if err != nil {
		return base
	}
	out := base
	if err := json.Unmarshal(buf, &out); err != nil {
		return base
	}
	return out
}
