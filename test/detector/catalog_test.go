package detector_test

import (
	"strings"
	"testing"

	"pagelens/pkg/detector"
)

func TestCatalogDefinitionsAreWellFormed(t *testing.T) {
	families := map[string][]detector.FrameworkDefinition{
		"js":  detector.JSCatalog(),
		"css": detector.CSSCatalog(),
	}

	for family, defs := range families {
		t.Run(family, func(t *testing.T) {
			if len(defs) == 0 {
				t.Fatal("empty catalog family")
			}

			seen := map[string]bool{}
			for _, def := range defs {
				if def.Name == "" {
					t.Error("definition without a name")
				}
				if seen[def.Name] {
					t.Errorf("duplicate framework name %q", def.Name)
				}
				seen[def.Name] = true

				if def.Name == detector.NoneDetected {
					t.Errorf("framework named like the sentinel: %q", def.Name)
				}
				if def.MinConfidence <= 0 {
					t.Errorf("%s: non-positive threshold %d", def.Name, def.MinConfidence)
				}
				if len(def.Signals) == 0 {
					t.Errorf("%s: no signals", def.Name)
				}

				for i, sig := range def.Signals {
					if sig.Weight <= 0 {
						t.Errorf("%s signal %d: non-positive weight %d", def.Name, i, sig.Weight)
					}
					switch sig.Type {
					case detector.SignalGlobal, detector.SignalAttribute, detector.SignalClass, detector.SignalFile:
						if len(sig.Patterns) == 0 {
							t.Errorf("%s signal %d: pattern type %s without patterns", def.Name, i, sig.Type)
						}
						if sig.Test != nil {
							t.Errorf("%s signal %d: pattern type %s with a predicate", def.Name, i, sig.Type)
						}
					case detector.SignalDOM, detector.SignalStyleRule, detector.SignalMultiClass:
						if sig.Test == nil {
							t.Errorf("%s signal %d: predicate type %s without a predicate", def.Name, i, sig.Type)
						}
						if len(sig.Patterns) != 0 {
							t.Errorf("%s signal %d: predicate type %s with patterns", def.Name, i, sig.Type)
						}
					default:
						t.Errorf("%s signal %d: unknown type %q", def.Name, i, sig.Type)
					}
				}
			}
		})
	}
}

func TestEveryFrameworkIsDetectableBySignalsAlone(t *testing.T) {
	// Every entry must be able to clear its own threshold when all of its
	// signals fire, otherwise it could never be reported.
	check := func(t *testing.T, defs []detector.FrameworkDefinition) {
		for _, def := range defs {
			total := 0
			for _, sig := range def.Signals {
				weight := sig.Weight
				if sig.Type == detector.SignalGlobal {
					weight *= len(sig.Patterns)
				}
				total += weight
			}
			if total < def.MinConfidence {
				t.Errorf("%s: maximum achievable confidence %d below threshold %d", def.Name, total, def.MinConfidence)
			}
		}
	}

	t.Run("js", func(t *testing.T) { check(t, detector.JSCatalog()) })
	t.Run("css", func(t *testing.T) { check(t, detector.CSSCatalog()) })
}

func TestApplyOverrides(t *testing.T) {
	defs := detector.JSCatalog()
	original := defs[0].MinConfidence

	overridden := detector.ApplyOverrides(defs, map[string]int{
		defs[0].Name: original + 10,
		"NoSuchName": 99,
	})

	if overridden[0].MinConfidence != original+10 {
		t.Errorf("override not applied: got %d", overridden[0].MinConfidence)
	}

	// Config loading lowercases keys, so matching must ignore case.
	lowered := detector.ApplyOverrides(defs, map[string]int{strings.ToLower(defs[0].Name): original + 3})
	if lowered[0].MinConfidence != original+3 {
		t.Errorf("lowercased override not applied: got %d", lowered[0].MinConfidence)
	}
	if defs[0].MinConfidence != original {
		t.Errorf("ApplyOverrides mutated the shared catalog: %d", defs[0].MinConfidence)
	}
	for i := 1; i < len(overridden); i++ {
		if overridden[i].MinConfidence != defs[i].MinConfidence {
			t.Errorf("%s: threshold changed without an override", overridden[i].Name)
		}
	}
}

func TestDescribeMirrorsCatalog(t *testing.T) {
	a := detector.NewAnalyzer()
	view := a.Describe()

	if len(view.JSFrameworks) != len(a.JS) {
		t.Fatalf("view has %d js frameworks, catalog has %d", len(view.JSFrameworks), len(a.JS))
	}
	for i, fv := range view.JSFrameworks {
		if fv.Name != a.JS[i].Name {
			t.Errorf("view order diverges at %d: %q vs %q", i, fv.Name, a.JS[i].Name)
		}
		if len(fv.Signals) != len(a.JS[i].Signals) {
			t.Errorf("%s: view has %d signals, catalog has %d", fv.Name, len(fv.Signals), len(a.JS[i].Signals))
		}
		for j, sv := range fv.Signals {
			sig := a.JS[i].Signals[j]
			if sv.Structural != (sig.Test != nil) {
				t.Errorf("%s signal %d: structural flag mismatch", fv.Name, j)
			}
		}
	}
}
