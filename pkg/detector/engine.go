package detector

import "strings"

// Analyzer runs framework detection for both families against a Document.
// The zero value is not useful; construct one with NewAnalyzer and adjust the
// catalogs or tracer before the first call. An Analyzer is safe for
// concurrent use once configured: detection keeps all scores call-local.
type Analyzer struct {
	JS     []FrameworkDefinition
	CSS    []FrameworkDefinition
	Tracer Tracer
}

// NewAnalyzer returns an Analyzer over the canonical catalog.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		JS:  JSCatalog(),
		CSS: CSSCatalog(),
	}
}

// Analyze evaluates the families enabled in opts and returns the per-family
// results. It never fails: every per-signal error is contained and means that
// one signal did not fire.
func (a *Analyzer) Analyze(doc Document, opts Options) Result {
	var tr Tracer
	if opts.Debug {
		tr = a.Tracer
	}

	var res Result
	if opts.JSFrameworks {
		res.JSFrameworks = Detect(a.JS, doc, tr)
	}
	if opts.CSSFrameworks {
		res.CSSFrameworks = Detect(a.CSS, doc, tr)
	}
	res.JSFrameworks = orSentinel(res.JSFrameworks)
	res.CSSFrameworks = orSentinel(res.CSSFrameworks)
	return res
}

// Analyze runs both-family detection over the canonical catalog.
func Analyze(doc Document, opts Options) Result {
	return NewAnalyzer().Analyze(doc, opts)
}

// Detect scores every definition against doc and returns the names whose
// confidence reaches their threshold, preserving definition order. A nil
// tracer disables tracing.
func Detect(defs []FrameworkDefinition, doc Document, tr Tracer) []string {
	var detected []string
	for _, def := range defs {
		confidence := 0
		for _, sig := range def.Signals {
			confidence += evaluate(def.Name, sig, doc, tr)
		}
		if confidence >= def.MinConfidence {
			detected = append(detected, def.Name)
		}
	}
	return detected
}

func evaluate(framework string, sig Signal, doc Document, tr Tracer) int {
	switch sig.Type {
	case SignalGlobal:
		return evalGlobal(framework, sig, doc, tr)
	case SignalAttribute:
		return evalAttribute(framework, sig, doc, tr)
	case SignalClass:
		return evalClass(framework, sig, doc, tr)
	case SignalFile:
		return evalFile(framework, sig, doc, tr)
	case SignalDOM, SignalStyleRule, SignalMultiClass:
		return evalTest(framework, sig, doc, tr)
	}
	return 0
}

// evalGlobal adds the signal weight once per pattern that names a truthy
// global. Lookups are case-sensitive.
func evalGlobal(framework string, sig Signal, doc Document, tr Tracer) int {
	score := 0
	for _, name := range sig.Patterns {
		if v, ok := doc.Global(name); ok && truthy(v) {
			score += sig.Weight
			record(tr, framework, sig.Type, sig.Weight, "global %q is set", name)
		}
	}
	return score
}

// evalAttribute tests each pattern as a literal attribute selector and as its
// data-prefixed variant. Selector compile errors count as no match.
func evalAttribute(framework string, sig Signal, doc Document, tr Tracer) int {
	score := 0
	for _, p := range sig.Patterns {
		for _, sel := range []string{"[" + p + "]", "[data-" + p + "]"} {
			ok, err := doc.Query(sel)
			if err != nil || !ok {
				continue
			}
			score += sig.Weight
			record(tr, framework, sig.Type, sig.Weight, "selector %s matched", sel)
			break
		}
	}
	return score
}

// evalClass scans element class attributes for each pattern, case-insensitive.
// A pattern contributes at most once no matter how many elements carry it.
func evalClass(framework string, sig Signal, doc Document, tr Tracer) int {
	score := 0
	classes := doc.Classes()
	for _, p := range sig.Patterns {
		pat := strings.ToLower(p)
		for _, cls := range classes {
			if strings.Contains(strings.ToLower(cls), pat) {
				score += sig.Weight
				record(tr, framework, sig.Type, sig.Weight, "class %q contains %q", cls, p)
				break
			}
		}
	}
	return score
}

// evalFile matches each pattern against loaded script/stylesheet sources at
// full weight. A pattern that only appears somewhere in the page markup is
// weaker evidence and contributes the fixed mention weight instead.
func evalFile(framework string, sig Signal, doc Document, tr Tracer) int {
	score := 0
	scripts, styles := doc.ScriptSources(), doc.StyleSources()
	sources := make([]string, 0, len(scripts)+len(styles))
	sources = append(sources, scripts...)
	sources = append(sources, styles...)
	markup := strings.ToLower(doc.Markup())
	for _, p := range sig.Patterns {
		pat := strings.ToLower(p)

		matched := ""
		for _, src := range sources {
			if strings.Contains(strings.ToLower(src), pat) {
				matched = src
				break
			}
		}
		if matched != "" {
			score += sig.Weight
			record(tr, framework, sig.Type, sig.Weight, "loaded file %s matches %q", matched, p)
			continue
		}

		if idx := strings.Index(markup, pat); idx >= 0 {
			score += mentionWeight
			if tr != nil {
				// The index refers to the lowered markup, so the excerpt must
				// come from the same string.
				record(tr, framework, sig.Type, mentionWeight, "markup mentions %q near %q", p, excerpt(markup, idx, len(pat)))
			}
		}
	}
	return score
}

// evalTest runs a custom predicate. A panicking or missing predicate is a
// non-match; detection must survive hostile pages.
func evalTest(framework string, sig Signal, doc Document, tr Tracer) int {
	if !runTest(sig.Test, doc) {
		return 0
	}
	record(tr, framework, sig.Type, sig.Weight, "structural check matched")
	return sig.Weight
}

func runTest(test func(Document) bool, doc Document) (fired bool) {
	if test == nil {
		return false
	}
	defer func() {
		if recover() != nil {
			fired = false
		}
	}()
	return test(doc)
}

// truthy mirrors how a falsy global reads when recovered from script text:
// only literal falsy spellings (and the empty string) fail.
func truthy(v string) bool {
	switch strings.TrimSpace(v) {
	case "", "false", "0", "null", "undefined", "NaN", `""`, "''", "``":
		return false
	}
	return true
}

// excerpt returns the text around a match for trace output. idx and length
// must refer to the string being sliced.
func excerpt(s string, idx, length int) string {
	const context = 30
	start := max(idx-context, 0)
	end := min(idx+length+context, len(s))
	if start > end {
		start = end
	}
	return s[start:end]
}

func orSentinel(names []string) []string {
	if len(names) == 0 {
		return []string{NoneDetected}
	}
	return names
}
