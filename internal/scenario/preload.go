package scenario

import (
	"context"
	"sync"
)

// Preload populates the catalog: one fetch per scenario id plus one for the
// display list, all concurrent, none blocking another's progress. Failures
// are discarded per fetch — a failed dataset leaves its id absent, a failed
// list leaves the list empty — so one bad scenario never prevents switching
// into the working ones.
//
// Preload blocks until every fetch settles; callers that want fire-and-forget
// run it in the background and get deterministic cleanup from the join.
func Preload(ctx context.Context, src Source, catalog *Catalog, ids []string) {
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		list, err := src.Scenarios(ctx)
		if err != nil {
			return
		}
		catalog.SetScenarios(list)
	}()

	for _, id := range ids {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			ds, err := src.ScenarioDataset(ctx, id)
			if err != nil {
				return
			}
			catalog.Insert(id, ds)
		}(id)
	}

	wg.Wait()
}
