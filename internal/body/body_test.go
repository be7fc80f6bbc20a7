package body

import (
	"testing"

	"github.com/san-kum/orbital/internal/vec"
)

func TestPresetFor(t *testing.T) {
	for _, kind := range Kinds() {
		p, err := PresetFor(kind)
		if err != nil {
			t.Fatalf("PresetFor(%s): %v", kind, err)
		}
		if p.Mass <= 0 || p.Radius <= 0 {
			t.Errorf("%s preset has non-positive mass/radius: %+v", kind, p)
		}
	}

	if _, err := PresetFor("comet"); err == nil {
		t.Error("expected error for unknown kind")
	}
}

func TestNew(t *testing.T) {
	b, err := New(Planet, vec.New(10, 20), vec.New(1, 2))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !b.Alive {
		t.Error("new body should be alive")
	}
	if b.Acc != vec.Zero {
		t.Errorf("new body acceleration = %v, want zero", b.Acc)
	}
	if b.Age != 0 || len(b.Trail) != 0 {
		t.Error("new body should have zero age and empty trail")
	}

	if _, err := New("asteroid", vec.Zero, vec.Zero); err == nil {
		t.Error("expected error for unknown kind")
	}
}

func TestPushTrailFIFO(t *testing.T) {
	b, _ := New(Moon, vec.Zero, vec.Zero)

	for i := 0; i < 10; i++ {
		b.Pos = vec.New(float64(i), 0)
		b.PushTrail(4)
		if len(b.Trail) > 4 {
			t.Fatalf("trail exceeded cap: %d", len(b.Trail))
		}
	}

	// Oldest entries evicted, order preserved.
	want := []float64{6, 7, 8, 9}
	for i, p := range b.Trail {
		if p.X != want[i] {
			t.Errorf("trail[%d].X = %v, want %v", i, p.X, want[i])
		}
	}
}

func TestPushTrailDisabled(t *testing.T) {
	b, _ := New(Moon, vec.Zero, vec.Zero)
	b.PushTrail(3)
	b.PushTrail(0)
	if len(b.Trail) != 0 {
		t.Errorf("trail should be empty with cap 0, got %d", len(b.Trail))
	}
}
