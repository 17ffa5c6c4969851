package checker

import (
	"errors"
	"testing"

	"github.com/Faultbox/modelcheck/pkg/scene"
)

func TestReport_Summarize(t *testing.T) {
	outcomes := []Outcome{
		{
			Check:    "flipped_normals",
			Category: "topology",
			Result: ComponentResult(ShapeFace, map[scene.NodeID][]int{
				"n1": {0, 1, 2},
			}),
		},
		{
			Check:    "ngons",
			Category: "topology",
			Result: ComponentResult(ShapeFace, map[scene.NodeID][]int{
				"n1": {4},
			}),
		},
		{
			Check:    "hidden_objects",
			Category: "general",
			Result:   NodesResult("n2", "n3"),
		},
		{
			Check:    "hierarchy_depth",
			Category: "general",
			Err:      NewStructuralError("n4", "cycle detected"),
		},
	}

	rep := NewReport(outcomes)
	s := rep.Summarize()

	if s.PerCheck["flipped_normals"] != 3 {
		t.Errorf("flipped_normals count = %d, want 3", s.PerCheck["flipped_normals"])
	}
	if s.PerCategory["topology"] != 4 {
		t.Errorf("topology count = %d, want 4", s.PerCategory["topology"])
	}
	if s.PerCategory["general"] != 2 {
		t.Errorf("general count = %d, want 2", s.PerCategory["general"])
	}
	if s.Failures != 1 {
		t.Errorf("failures = %d, want 1", s.Failures)
	}
	if s.Flagged != 6 {
		t.Errorf("flagged = %d, want 6", s.Flagged)
	}
	if rep.Clean() {
		t.Error("report with findings and a failure must not be clean")
	}

	failed := rep.FailedChecks()
	if len(failed) != 1 || failed[0] != "hierarchy_depth" {
		t.Errorf("failed checks = %v", failed)
	}
}

func TestReport_CleanDistinguishesEmptyFromFailed(t *testing.T) {
	ranClean := NewReport([]Outcome{
		{Check: "a", Category: "general", Result: NodesResult()},
	})
	if !ranClean.Clean() {
		t.Error("empty finding should be clean")
	}

	couldNotRun := NewReport([]Outcome{
		{Check: "a", Category: "general", Err: NewConfigurationError("epsilon", "must be positive")},
	})
	if couldNotRun.Clean() {
		t.Error("a failed check is not a clean report")
	}
}

func TestComponentResult_SortsAndDedups(t *testing.T) {
	r := ComponentResult(ShapeVertex, map[scene.NodeID][]int{
		"n": {5, 1, 3, 1, 5},
		"m": {},
	})
	got := r.Components["n"]
	want := []int{1, 3, 5}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
	if _, ok := r.Components["m"]; ok {
		t.Error("empty component list should be dropped")
	}
	if r.Count() != 3 {
		t.Errorf("count = %d, want 3", r.Count())
	}
}

func TestParams_Merged(t *testing.T) {
	defaults := Params{"epsilon": 0.001, "max_depth": 5}
	merged := defaults.Merged(Params{"epsilon": 0.1})

	if v, _ := merged.Float("epsilon"); v != 0.1 {
		t.Errorf("epsilon = %v, want 0.1", v)
	}
	if v, _ := merged.Int("max_depth"); v != 5 {
		t.Errorf("max_depth = %v, want 5", v)
	}
	// Defaults untouched.
	if v, _ := defaults.Float("epsilon"); v != 0.001 {
		t.Errorf("defaults mutated: epsilon = %v", v)
	}
}

func TestParams_PositiveFloat(t *testing.T) {
	p := Params{"good": 0.5, "bad": -1.0, "text": "x"}

	if _, err := p.PositiveFloat("good"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if _, err := p.PositiveFloat("bad"); err == nil {
		t.Error("negative value should fail")
	} else {
		var ce *ConfigurationError
		if !errors.As(err, &ce) || ce.Param != "bad" {
			t.Errorf("error should name the parameter: %v", err)
		}
	}
	if _, err := p.PositiveFloat("text"); err == nil {
		t.Error("non-numeric value should fail")
	}
	if _, err := p.PositiveFloat("missing"); err == nil {
		t.Error("missing value should fail")
	}
}
