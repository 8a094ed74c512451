package detector

// Document is the read-only view of an inspected page that signals are scored
// against. Implementations must tolerate repeated queries within one
// detection pass and must not require network access.
type Document interface {
	// Global looks up a property of the page's global namespace by exact name
	// and returns its recorded value.
	Global(name string) (string, bool)

	// Query reports whether any element matches the given CSS selector. A
	// selector the implementation cannot compile is reported as an error; the
	// engine treats it as a non-match.
	Query(selector string) (bool, error)

	// Classes returns the class attribute value of every element that has one,
	// in document order.
	Classes() []string

	// ScriptSources returns the src URL of every loaded script tag.
	ScriptSources() []string

	// StyleSources returns the href URL of every loaded stylesheet.
	StyleSources() []string

	// StyleRules returns the stylesheet rule text that is readable without
	// fetching anything. Unreadable sheets are simply omitted.
	StyleRules() string

	// Markup returns the full serialized page markup.
	Markup() string
}
