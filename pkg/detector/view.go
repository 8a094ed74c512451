package detector

// CatalogView is a serializable snapshot of the catalog, used by the CLI to
// print the active detection rules. Predicate signals have no patterns to
// show and are marked structural instead.
type CatalogView struct {
	JSFrameworks  []FrameworkView `yaml:"js_frameworks" json:"js_frameworks"`
	CSSFrameworks []FrameworkView `yaml:"css_frameworks" json:"css_frameworks"`
}

type FrameworkView struct {
	Name          string       `yaml:"name" json:"name"`
	MinConfidence int          `yaml:"min_confidence" json:"min_confidence"`
	Signals       []SignalView `yaml:"signals" json:"signals"`
}

type SignalView struct {
	Type       SignalType `yaml:"type" json:"type"`
	Weight     int        `yaml:"weight" json:"weight"`
	Patterns   []string   `yaml:"patterns,omitempty" json:"patterns,omitempty"`
	Structural bool       `yaml:"structural,omitempty" json:"structural,omitempty"`
}

// Describe snapshots the analyzer's catalogs, including any overrides applied
// to them.
func (a *Analyzer) Describe() CatalogView {
	return CatalogView{
		JSFrameworks:  describeFamily(a.JS),
		CSSFrameworks: describeFamily(a.CSS),
	}
}

func describeFamily(defs []FrameworkDefinition) []FrameworkView {
	views := make([]FrameworkView, 0, len(defs))
	for _, def := range defs {
		fv := FrameworkView{
			Name:          def.Name,
			MinConfidence: def.MinConfidence,
		}
		for _, sig := range def.Signals {
			fv.Signals = append(fv.Signals, SignalView{
				Type:       sig.Type,
				Weight:     sig.Weight,
				Patterns:   sig.Patterns,
				Structural: sig.Test != nil,
			})
		}
		views = append(views, fv)
	}
	return views
}
