package detector

// SignalType identifies how a signal is evaluated against a page.
type SignalType string

const (
	// SignalGlobal checks for truthy properties of the page's global namespace.
	SignalGlobal SignalType = "global"
	// SignalAttribute checks for elements carrying an attribute, in both its
	// literal and data-prefixed spelling.
	SignalAttribute SignalType = "attribute"
	// SignalClass checks element class attributes for a substring.
	SignalClass SignalType = "class"
	// SignalFile checks loaded script/stylesheet sources, falling back to a
	// plain substring search of the page markup.
	SignalFile SignalType = "file"
	// SignalDOM runs a custom structural check against the document.
	SignalDOM SignalType = "dom"
	// SignalStyleRule runs a custom check against readable stylesheet rules.
	SignalStyleRule SignalType = "styleRule"
	// SignalMultiClass runs a custom check over element class lists.
	SignalMultiClass SignalType = "multiClass"
)

// mentionWeight is the fixed contribution of a file pattern that appears in
// the page markup without being loaded as an actual script or stylesheet.
const mentionWeight = 1

// Signal is one independently evaluated piece of evidence that a framework is
// present. Pattern-based types carry Patterns; dom, styleRule and multiClass
// carry a Test predicate instead.
type Signal struct {
	Type     SignalType
	Weight   int
	Patterns []string
	Test     func(Document) bool
}

// FrameworkDefinition declares the evidence sources for one framework and the
// minimum total evidence needed to report it. Definitions are immutable
// configuration; all scoring state is local to a detection call.
type FrameworkDefinition struct {
	Name          string
	Signals       []Signal
	MinConfidence int
}

// Options selects which detection families run and whether fired signals are
// traced. The zero value disables everything.
type Options struct {
	JSFrameworks  bool
	CSSFrameworks bool
	Debug         bool
}

// NoneDetected is the placeholder reported when a family matched nothing. It
// is never combined with real framework names.
const NoneDetected = "None detected"

// Result holds the detected framework names per family, in catalog order.
// An empty family is reported as [NoneDetected].
type Result struct {
	JSFrameworks  []string `json:"js_frameworks"`
	CSSFrameworks []string `json:"css_frameworks"`
}
