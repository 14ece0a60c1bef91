package roughen

import (
	"runtime"
	"sync"

	"github.com/MeKo-Tech/roughen/noise"
)

// PerturbAll perturbs every shape with the same configuration, fanning
// the work out across a pool of goroutines. Each shape's pipeline is
// independent and total, so there is no cancellation and no partial
// failure; results are returned in input order. workers <= 0 uses one
// worker per CPU. The noise field is built once and shared, which is safe
// because a Field is read-only after construction.
func PerturbAll(shapes []Shape, cfg Config, workers int) []Path {
	if len(shapes) == 0 {
		return nil
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(shapes) {
		workers = len(shapes)
	}

	f := noise.New(cfg.Seed)
	results := make([]Path, len(shapes))

	indexCh := make(chan int, len(shapes))
	for i := range shapes {
		indexCh <- i
	}
	close(indexCh)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexCh {
				results[i] = perturbWith(f, shapes[i], cfg)
			}
		}()
	}
	wg.Wait()

	return results
}
