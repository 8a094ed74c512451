package page

import (
	"regexp"
	"sort"
)

// A parsed page cannot execute its scripts, so globals are recovered
// statically from inline script text. The recorded value is the head of the
// assigned expression, which keeps literal falsy assignments detectable.
var globalPatterns = []*regexp.Regexp{
	regexp.MustCompile(`window\.([A-Za-z_$][\w$]*)\s*=\s*([^;\n]+)`),
	regexp.MustCompile(`window\[['"]([^'"\]]+)['"]\]\s*=\s*([^;\n]+)`),
	regexp.MustCompile(`(?m)^\s*(?:var|let|const)\s+([A-Za-z_$][\w$]*)\s*=\s*([^;\n]+)`),
	regexp.MustCompile(`(?m)^\s*function\s+([A-Za-z_$][\w$]*)\s*\(`),
}

func harvestGlobals(script string, into map[string]string) {
	type assignment struct {
		pos   int
		name  string
		value string
	}

	var found []assignment
	for _, re := range globalPatterns {
		for _, m := range re.FindAllStringSubmatchIndex(script, -1) {
			a := assignment{pos: m[0], name: script[m[2]:m[3]], value: "function"}
			if len(m) > 4 && m[4] >= 0 {
				a.value = script[m[4]:m[5]]
			}
			found = append(found, a)
		}
	}

	// Later assignments win, matching script execution order. The patterns
	// each scan the whole script, so ordering must come from match positions.
	sort.Slice(found, func(i, j int) bool { return found[i].pos < found[j].pos })
	for _, a := range found {
		into[a.name] = a.value
	}
}
