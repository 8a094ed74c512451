package page

import (
	"net/url"
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Assets lists the files a page loads, resolved against the page URL when the
// page came from the network.
type Assets struct {
	Scripts     []string `json:"scripts"`
	Stylesheets []string `json:"stylesheets"`
}

// Assets returns the page's script and stylesheet URLs. Relative references
// are resolved against the page's source URL when it has one.
func (p *Page) Assets() Assets {
	base, _ := url.Parse(p.Source)
	if base == nil || !base.IsAbs() {
		base = nil
	}
	return Assets{
		Scripts:     resolveAll(base, p.scripts),
		Stylesheets: resolveAll(base, p.styles),
	}
}

func resolveAll(base *url.URL, refs []string) []string {
	out := make([]string, 0, len(refs))
	for _, ref := range refs {
		out = append(out, resolve(base, ref))
	}
	return out
}

func resolve(base *url.URL, ref string) string {
	if base == nil {
		return ref
	}
	u, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return base.ResolveReference(u).String()
}

// Filter keeps assets matching any of the patterns. A pattern is tried as a
// doublestar glob against the whole URL, its path, and its file name, so
// "*.css" works on absolute URLs; patterns that do not match as a glob fall
// back to a case-insensitive substring match. No patterns means keep
// everything.
func (a Assets) Filter(patterns []string) Assets {
	if len(patterns) == 0 {
		return a
	}
	return Assets{
		Scripts:     filterURLs(a.Scripts, patterns),
		Stylesheets: filterURLs(a.Stylesheets, patterns),
	}
}

func filterURLs(urls, patterns []string) []string {
	var out []string
	for _, u := range urls {
		if matchesAny(u, patterns) {
			out = append(out, u)
		}
	}
	return out
}

func matchesAny(u string, patterns []string) bool {
	// Glob "*" never crosses "/", so an extension glob like "*.css" can only
	// match a full URL via its path or file name.
	candidates := []string{u}
	if parsed, err := url.Parse(u); err == nil && parsed.Path != "" {
		candidates = append(candidates,
			strings.TrimPrefix(parsed.Path, "/"),
			path.Base(parsed.Path),
		)
	}
	for _, pat := range patterns {
		for _, c := range candidates {
			if ok, err := doublestar.Match(pat, c); err == nil && ok {
				return true
			}
		}
		if strings.Contains(strings.ToLower(u), strings.ToLower(pat)) {
			return true
		}
	}
	return false
}
