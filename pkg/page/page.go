package page

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// Page is a parsed snapshot of one loaded document. It exposes the read-only
// view the detection engine scores against: globals recovered from inline
// scripts, the DOM tree, class attributes, loaded script/stylesheet sources,
// inline style rules and the raw markup.
type Page struct {
	// Source is the URL or file path the page was loaded from.
	Source string

	root    *html.Node
	markup  string
	globals map[string]string
	classes []string
	scripts []string
	styles  []string
	rules   []string
}

// Parse reads and parses an HTML document. source is recorded for reporting
// and for resolving relative asset URLs; it may be empty.
func Parse(r io.Reader, source string) (*Page, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read page: %w", err)
	}

	root, err := html.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	p := &Page{
		Source:  source,
		root:    root,
		markup:  string(data),
		globals: map[string]string{},
	}
	p.collect(root)
	return p, nil
}

// ParseString parses an HTML document held in memory.
func ParseString(markup, source string) (*Page, error) {
	return Parse(strings.NewReader(markup), source)
}

func (p *Page) collect(n *html.Node) {
	if n.Type == html.ElementNode {
		switch n.Data {
		case "script":
			if src := attrVal(n, "src"); src != "" {
				p.scripts = append(p.scripts, src)
			} else {
				harvestGlobals(nodeText(n), p.globals)
			}
		case "link":
			if strings.EqualFold(attrVal(n, "rel"), "stylesheet") {
				if href := attrVal(n, "href"); href != "" {
					p.styles = append(p.styles, href)
				}
			}
		case "style":
			p.rules = append(p.rules, nodeText(n))
		}
		if cls := attrVal(n, "class"); cls != "" {
			p.classes = append(p.classes, cls)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		p.collect(c)
	}
}

// Global returns the value recovered for a global of that exact name.
func (p *Page) Global(name string) (string, bool) {
	v, ok := p.globals[name]
	return v, ok
}

// Query reports whether any element matches the CSS selector. Selector groups
// ("a, b") are supported; a selector that does not compile is an error.
func (p *Page) Query(selector string) (bool, error) {
	sel, err := cascadia.ParseGroup(selector)
	if err != nil {
		return false, fmt.Errorf("compile selector %q: %w", selector, err)
	}
	return matchAny(p.root, sel), nil
}

func matchAny(n *html.Node, m cascadia.Matcher) bool {
	if n.Type == html.ElementNode && m.Match(n) {
		return true
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if matchAny(c, m) {
			return true
		}
	}
	return false
}

// Classes returns every element's class attribute value in document order.
func (p *Page) Classes() []string { return p.classes }

// ScriptSources returns the src of every script tag that loads a file.
func (p *Page) ScriptSources() []string { return p.scripts }

// StyleSources returns the href of every stylesheet link.
func (p *Page) StyleSources() []string { return p.styles }

// StyleRules returns the concatenated inline style rule text. Linked sheets
// are never fetched, so their rules are not readable here.
func (p *Page) StyleRules() string { return strings.Join(p.rules, "\n") }

// Markup returns the raw serialized document.
func (p *Page) Markup() string { return p.markup }

func attrVal(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

func nodeText(n *html.Node) string {
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
	}
	return b.String()
}
