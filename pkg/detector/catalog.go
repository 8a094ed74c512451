package detector

import "strings"

// Signal weights encode how conclusive a single piece of evidence is on its
// own. A dedicated mount point or runtime marker is nearly conclusive; a short
// global name that other libraries could also define is only suggestive.
const (
	// WeightConclusive marks evidence that rarely appears outside the
	// framework, like a dedicated DOM mount marker or runtime payload.
	WeightConclusive = 5

	// WeightStrong marks evidence tied closely to the framework, like its
	// devtools hook or a template attribute namespace.
	WeightStrong = 4

	// WeightModerate marks evidence such as a well-known bundle filename.
	WeightModerate = 3

	// WeightSuggestive marks evidence that collides easily, like common
	// utility class names.
	WeightSuggestive = 2

	// DefaultMinConfidence is the threshold shared by every catalog entry.
	DefaultMinConfidence = 4
)

// JSCatalog returns the canonical JS framework definitions, in report order.
func JSCatalog() []FrameworkDefinition { return jsCatalog }

// CSSCatalog returns the canonical CSS framework definitions, in report order.
func CSSCatalog() []FrameworkDefinition { return cssCatalog }

// ApplyOverrides returns a copy of defs with per-framework minimum confidence
// replaced where the map names the framework. Names are matched
// case-insensitively because config loading lowercases keys; unknown names
// are ignored.
func ApplyOverrides(defs []FrameworkDefinition, minConfidence map[string]int) []FrameworkDefinition {
	if len(minConfidence) == 0 {
		return defs
	}
	byName := make(map[string]int, len(minConfidence))
	for name, mc := range minConfidence {
		byName[strings.ToLower(name)] = mc
	}
	out := make([]FrameworkDefinition, len(defs))
	copy(out, defs)
	for i := range out {
		if mc, ok := byName[strings.ToLower(out[i].Name)]; ok && mc > 0 {
			out[i].MinConfidence = mc
		}
	}
	return out
}

var jsCatalog = []FrameworkDefinition{
	{
		Name:          "React",
		MinConfidence: DefaultMinConfidence,
		Signals: []Signal{
			{Type: SignalGlobal, Weight: WeightModerate, Patterns: []string{"React", "ReactDOM"}},
			{Type: SignalGlobal, Weight: WeightSuggestive, Patterns: []string{"__REACT_DEVTOOLS_GLOBAL_HOOK__"}},
			{Type: SignalAttribute, Weight: WeightConclusive, Patterns: []string{"reactroot", "reactid"}},
			{Type: SignalFile, Weight: WeightStrong, Patterns: []string{"react.min.js", "react.production.min.js", "react.development.js", "react-dom"}},
		},
	},
	{
		Name:          "Angular",
		MinConfidence: DefaultMinConfidence,
		Signals: []Signal{
			{Type: SignalAttribute, Weight: WeightConclusive, Patterns: []string{"ng-version"}},
			{Type: SignalDOM, Weight: WeightModerate, Test: angularComponentMarkers},
			{Type: SignalFile, Weight: WeightModerate, Patterns: []string{"@angular", "zone.js"}},
		},
	},
	{
		Name:          "AngularJS",
		MinConfidence: DefaultMinConfidence,
		Signals: []Signal{
			{Type: SignalGlobal, Weight: WeightStrong, Patterns: []string{"angular"}},
			{Type: SignalAttribute, Weight: WeightStrong, Patterns: []string{"ng-app", "ng-controller", "ng-model"}},
			{Type: SignalFile, Weight: WeightModerate, Patterns: []string{"angular.min.js", "angular.js"}},
		},
	},
	{
		Name:          "Vue.js",
		MinConfidence: DefaultMinConfidence,
		Signals: []Signal{
			{Type: SignalGlobal, Weight: WeightStrong, Patterns: []string{"Vue"}},
			{Type: SignalGlobal, Weight: WeightModerate, Patterns: []string{"__VUE__", "__VUE_DEVTOOLS_GLOBAL_HOOK__"}},
			{Type: SignalAttribute, Weight: WeightStrong, Patterns: []string{"v-cloak", "v-model", "v-for"}},
			{Type: SignalDOM, Weight: WeightStrong, Test: vueScopedMarkers},
			{Type: SignalFile, Weight: WeightModerate, Patterns: []string{"vue.min.js", "vue.runtime", "vue.global"}},
		},
	},
	{
		Name:          "jQuery",
		MinConfidence: 3,
		Signals: []Signal{
			{Type: SignalGlobal, Weight: WeightStrong, Patterns: []string{"jQuery"}},
			{Type: SignalFile, Weight: WeightModerate, Patterns: []string{"jquery.min.js", "jquery.js", "jquery-"}},
		},
	},
	{
		Name:          "Alpine.js",
		MinConfidence: DefaultMinConfidence,
		Signals: []Signal{
			{Type: SignalGlobal, Weight: WeightStrong, Patterns: []string{"Alpine"}},
			{Type: SignalAttribute, Weight: WeightConclusive, Patterns: []string{"x-data", "x-init", "x-show"}},
			{Type: SignalFile, Weight: WeightModerate, Patterns: []string{"alpine.min.js", "alpinejs"}},
		},
	},
	{
		Name:          "Next.js",
		MinConfidence: DefaultMinConfidence,
		Signals: []Signal{
			{Type: SignalGlobal, Weight: WeightConclusive, Patterns: []string{"__NEXT_DATA__"}},
			{Type: SignalDOM, Weight: WeightStrong, Test: queryAny("#__next")},
			{Type: SignalFile, Weight: WeightStrong, Patterns: []string{"/_next/"}},
		},
	},
	{
		Name:          "Nuxt.js",
		MinConfidence: DefaultMinConfidence,
		Signals: []Signal{
			{Type: SignalGlobal, Weight: WeightConclusive, Patterns: []string{"__NUXT__", "$nuxt"}},
			{Type: SignalDOM, Weight: WeightStrong, Test: queryAny("#__nuxt")},
			{Type: SignalFile, Weight: WeightStrong, Patterns: []string{"/_nuxt/"}},
		},
	},
	{
		Name:          "Ember.js",
		MinConfidence: DefaultMinConfidence,
		Signals: []Signal{
			{Type: SignalGlobal, Weight: WeightStrong, Patterns: []string{"Ember"}},
			{Type: SignalClass, Weight: WeightStrong, Patterns: []string{"ember-view", "ember-application"}},
			{Type: SignalDOM, Weight: WeightModerate, Test: queryAny(`[id^="ember"]`)},
			{Type: SignalFile, Weight: WeightModerate, Patterns: []string{"ember.min.js", "ember.debug.js"}},
		},
	},
	{
		Name:          "Svelte",
		MinConfidence: DefaultMinConfidence,
		Signals: []Signal{
			{Type: SignalClass, Weight: WeightConclusive, Patterns: []string{"svelte-"}},
			{Type: SignalFile, Weight: WeightSuggestive, Patterns: []string{"svelte"}},
		},
	},
}

var cssCatalog = []FrameworkDefinition{
	{
		Name:          "Bootstrap",
		MinConfidence: DefaultMinConfidence,
		Signals: []Signal{
			{Type: SignalFile, Weight: WeightStrong, Patterns: []string{"bootstrap.min.css", "bootstrap.css", "bootstrap.bundle"}},
			{Type: SignalClass, Weight: WeightSuggestive, Patterns: []string{"navbar-toggler", "btn-primary", "container-fluid"}},
			{Type: SignalGlobal, Weight: WeightModerate, Patterns: []string{"bootstrap"}},
		},
	},
	{
		Name:          "Tailwind CSS",
		MinConfidence: DefaultMinConfidence,
		Signals: []Signal{
			{Type: SignalFile, Weight: WeightStrong, Patterns: []string{"tailwind.min.css", "tailwind.css", "tailwindcss"}},
			{Type: SignalMultiClass, Weight: WeightStrong, Test: tailwindUtilityClasses},
		},
	},
	{
		Name:          "Material UI",
		MinConfidence: DefaultMinConfidence,
		Signals: []Signal{
			{Type: SignalClass, Weight: WeightStrong, Patterns: []string{"MuiButton", "MuiBox", "MuiPaper", "MuiTypography"}},
			{Type: SignalFile, Weight: WeightModerate, Patterns: []string{"material-ui", "@mui"}},
		},
	},
	{
		Name:          "Semantic UI",
		MinConfidence: DefaultMinConfidence,
		Signals: []Signal{
			{Type: SignalFile, Weight: WeightStrong, Patterns: []string{"semantic.min.css", "semantic-ui"}},
			{Type: SignalClass, Weight: WeightModerate, Patterns: []string{"ui button", "ui container", "ui grid", "ui menu"}},
		},
	},
	{
		Name:          "Chakra UI",
		MinConfidence: DefaultMinConfidence,
		Signals: []Signal{
			{Type: SignalClass, Weight: WeightConclusive, Patterns: []string{"chakra-"}},
			{Type: SignalFile, Weight: WeightSuggestive, Patterns: []string{"chakra-ui"}},
		},
	},
	{
		Name:          "Bulma",
		MinConfidence: DefaultMinConfidence,
		Signals: []Signal{
			{Type: SignalFile, Weight: WeightStrong, Patterns: []string{"bulma.min.css", "bulma.css"}},
			{Type: SignalMultiClass, Weight: WeightModerate, Test: bulmaColumnClasses},
			{Type: SignalClass, Weight: WeightSuggestive, Patterns: []string{"hero-body", "navbar-burger", "is-primary"}},
		},
	},
	{
		Name:          "Foundation",
		MinConfidence: DefaultMinConfidence,
		Signals: []Signal{
			{Type: SignalFile, Weight: WeightStrong, Patterns: []string{"foundation.min.css", "foundation.css"}},
			{Type: SignalStyleRule, Weight: WeightModerate, Test: foundationStyleRules},
			{Type: SignalClass, Weight: WeightSuggestive, Patterns: []string{"top-bar", "orbit-container", "callout"}},
		},
	},
}

// queryAny builds a predicate that fires when any of the selectors matches.
// Selectors that fail to compile are skipped.
func queryAny(selectors ...string) func(Document) bool {
	return func(d Document) bool {
		for _, sel := range selectors {
			if ok, err := d.Query(sel); err == nil && ok {
				return true
			}
		}
		return false
	}
}

// angularComponentMarkers looks for the conventional root component tag or
// the host/content attributes the Ivy compiler stamps onto rendered nodes.
func angularComponentMarkers(d Document) bool {
	if ok, err := d.Query("app-root"); err == nil && ok {
		return true
	}
	markup := d.Markup()
	return strings.Contains(markup, "_nghost") || strings.Contains(markup, "ng-star-inserted")
}

// vueScopedMarkers looks for Vue's mount attribute or the data-v- attribute
// namespace that scoped styles stamp onto elements.
func vueScopedMarkers(d Document) bool {
	if ok, err := d.Query("[data-v-app]"); err == nil && ok {
		return true
	}
	return strings.Contains(d.Markup(), "data-v-")
}

// tailwindUtilityClasses fires on a single element combining a layout utility
// with a spacing or color utility, the signature of utility-first markup.
func tailwindUtilityClasses(d Document) bool {
	layout := []string{"flex", "grid", "inline-flex"}
	utility := []string{"px-", "py-", "mx-", "my-", "mt-", "mb-", "gap-", "text-", "bg-", "items-center", "justify-"}
	for _, cls := range d.Classes() {
		fields := strings.Fields(strings.ToLower(cls))
		hasLayout, hasUtility := false, false
		for _, f := range fields {
			for _, l := range layout {
				if f == l {
					hasLayout = true
				}
			}
			for _, u := range utility {
				if strings.HasPrefix(f, u) {
					hasUtility = true
				}
			}
		}
		if hasLayout && hasUtility {
			return true
		}
	}
	return false
}

// bulmaColumnClasses fires when the columns/column grid pair appears together
// with one of Bulma's is- modifiers.
func bulmaColumnClasses(d Document) bool {
	hasColumns, hasColumn, hasModifier := false, false, false
	for _, cls := range d.Classes() {
		for _, f := range strings.Fields(strings.ToLower(cls)) {
			switch {
			case f == "columns":
				hasColumns = true
			case f == "column":
				hasColumn = true
			case strings.HasPrefix(f, "is-"):
				hasModifier = true
			}
		}
	}
	return hasColumns && hasColumn && hasModifier
}

func foundationStyleRules(d Document) bool {
	rules := strings.ToLower(d.StyleRules())
	return strings.Contains(rules, "foundation") || strings.Contains(rules, "data-whatinput")
}
