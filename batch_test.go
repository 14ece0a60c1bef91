package roughen

import (
	"reflect"
	"testing"

	"github.com/paulmach/orb"
)

func batchShapes() []Shape {
	return []Shape{
		Line{P1: orb.Point{0, 0}, P2: orb.Point{100, 0}, Attrs: Attributes{"id": 0}},
		Polyline{Points: []orb.Point{{0, 0}, {20, 10}, {40, 0}}, Attrs: Attributes{"id": 1}},
		Polygon{Points: []orb.Point{{0, 0}, {30, 0}, {15, 25}}, Attrs: Attributes{"id": 2}},
		Rect{X: 5, Y: 5, W: 40, H: 20, Attrs: Attributes{"id": 3}},
		Circle{Center: orb.Point{50, 50}, R: 25, Attrs: Attributes{"id": 4}},
		Ellipse{Center: orb.Point{10, 10}, RX: 8, RY: 3, Attrs: Attributes{"id": 5}},
	}
}

func TestPerturbAll_MatchesSequential(t *testing.T) {
	shapes := batchShapes()
	cfg := DefaultConfig()
	cfg.Amplitude = 3
	cfg.Seed = 42

	parallel := PerturbAll(shapes, cfg, 4)
	if len(parallel) != len(shapes) {
		t.Fatalf("got %d results, want %d", len(parallel), len(shapes))
	}

	for i, s := range shapes {
		want := Perturb(s, cfg)
		if !reflect.DeepEqual(parallel[i].Commands, want.Commands) {
			t.Errorf("shape %d: parallel result differs from sequential", i)
		}
		if parallel[i].Close != want.Close {
			t.Errorf("shape %d: close flag %v, want %v", i, parallel[i].Close, want.Close)
		}
	}
}

func TestPerturbAll_PreservesOrder(t *testing.T) {
	shapes := batchShapes()
	cfg := DefaultConfig()

	results := PerturbAll(shapes, cfg, 3)
	for i, r := range results {
		if r.Attrs["id"] != i {
			t.Errorf("result %d carries attributes of shape %v", i, r.Attrs["id"])
		}
	}
}

func TestPerturbAll_DefaultWorkers(t *testing.T) {
	shapes := batchShapes()
	cfg := DefaultConfig()

	// workers <= 0 falls back to one worker per CPU
	results := PerturbAll(shapes, cfg, 0)
	if len(results) != len(shapes) {
		t.Fatalf("got %d results, want %d", len(results), len(shapes))
	}
	results = PerturbAll(shapes, cfg, -5)
	if len(results) != len(shapes) {
		t.Fatalf("got %d results, want %d", len(results), len(shapes))
	}
}

func TestPerturbAll_MoreWorkersThanShapes(t *testing.T) {
	shapes := batchShapes()[:2]
	cfg := DefaultConfig()

	results := PerturbAll(shapes, cfg, 64)
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
}

func TestPerturbAll_Empty(t *testing.T) {
	if results := PerturbAll(nil, DefaultConfig(), 4); results != nil {
		t.Errorf("empty input produced %v, want nil", results)
	}
}

func TestPerturbAll_Deterministic(t *testing.T) {
	shapes := batchShapes()
	cfg := DefaultConfig()
	cfg.Amplitude = 2
	cfg.Seed = 99

	a := PerturbAll(shapes, cfg, 4)
	b := PerturbAll(shapes, cfg, 2)
	for i := range a {
		if !reflect.DeepEqual(a[i].Commands, b[i].Commands) {
			t.Errorf("shape %d: results differ between runs with different worker counts", i)
		}
	}
}
