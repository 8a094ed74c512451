package page_test

import (
	"reflect"
	"strings"
	"testing"

	"pagelens/pkg/detector"
	"pagelens/pkg/page"
)

// Page must satisfy the engine's document contract.
var _ detector.Document = (*page.Page)(nil)

const fixtureHTML = `<!DOCTYPE html>
<html>
<head>
  <link rel="stylesheet" href="/css/app.min.css">
  <link rel="icon" href="/favicon.ico">
  <style>
    .hero { color: rebeccapurple; }
  </style>
  <script src="/js/vendor.js"></script>
</head>
<body>
  <div id="app" class="container main-view">
    <span class="badge badge-new">new</span>
  </div>
  <script>
    window.AppConfig = {debug: false};
    window.FeatureFlag = false;
    var legacyMode = 1;
    function bootApp() {}
  </script>
  <script src="https://cdn.example.com/widget.js"></script>
</body>
</html>`

func mustParse(t *testing.T, markup string) *page.Page {
	t.Helper()
	p, err := page.ParseString(markup, "https://example.com/index.html")
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	return p
}

func TestParseCollectsLoadedFiles(t *testing.T) {
	p := mustParse(t, fixtureHTML)

	wantScripts := []string{"/js/vendor.js", "https://cdn.example.com/widget.js"}
	if !reflect.DeepEqual(p.ScriptSources(), wantScripts) {
		t.Errorf("ScriptSources() = %v, want %v", p.ScriptSources(), wantScripts)
	}

	wantStyles := []string{"/css/app.min.css"}
	if !reflect.DeepEqual(p.StyleSources(), wantStyles) {
		t.Errorf("StyleSources() = %v, want %v (icon links must be ignored)", p.StyleSources(), wantStyles)
	}
}

func TestParseRecoversGlobals(t *testing.T) {
	p := mustParse(t, fixtureHTML)

	tests := []struct {
		name      string
		wantFound bool
		truthy    bool
	}{
		{"AppConfig", true, true},
		{"FeatureFlag", true, false},
		{"legacyMode", true, true},
		{"bootApp", true, true},
		{"Undeclared", false, false},
	}

	for _, tt := range tests {
		v, ok := p.Global(tt.name)
		if ok != tt.wantFound {
			t.Errorf("Global(%q) found = %v, want %v", tt.name, ok, tt.wantFound)
			continue
		}
		if !ok {
			continue
		}
		isFalsy := strings.TrimSpace(v) == "false"
		if tt.truthy == isFalsy {
			t.Errorf("Global(%q) = %q, truthiness mismatch", tt.name, v)
		}
	}
}

func TestGlobalsApplyInTextualOrder(t *testing.T) {
	// The same name can be assigned through different statement forms; the
	// assignment appearing last in the script must win regardless of form.
	p := mustParse(t, `<script>
	  var Mode = false;
	  window.Mode = "ready";
	  window.Stage = "boot";
	  let Stage = null;
	</script>`)

	if v, ok := p.Global("Mode"); !ok || strings.TrimSpace(v) != `"ready"` {
		t.Errorf(`Global("Mode") = %q, %v; want the later window assignment`, v, ok)
	}
	if v, ok := p.Global("Stage"); !ok || strings.TrimSpace(v) != "null" {
		t.Errorf(`Global("Stage") = %q, %v; want the later declaration`, v, ok)
	}
}

func TestParseDoesNotExecuteExternalScripts(t *testing.T) {
	// Globals defined by external files are invisible to static recovery; only
	// inline assignments count.
	p := mustParse(t, `<script src="/js/jquery.min.js"></script>`)
	if _, ok := p.Global("jQuery"); ok {
		t.Error("global recovered from a file that was never read")
	}
}

func TestQuerySelectors(t *testing.T) {
	p := mustParse(t, fixtureHTML)

	tests := []struct {
		selector string
		want     bool
	}{
		{"#app", true},
		{".badge-new", true},
		{"span", true},
		{"[id]", true},
		{"#missing", false},
		{"[data-reactroot]", false},
	}

	for _, tt := range tests {
		got, err := p.Query(tt.selector)
		if err != nil {
			t.Errorf("Query(%q) unexpected error: %v", tt.selector, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Query(%q) = %v, want %v", tt.selector, got, tt.want)
		}
	}
}

func TestQueryInvalidSelector(t *testing.T) {
	p := mustParse(t, fixtureHTML)

	if _, err := p.Query("[unterminated"); err == nil {
		t.Error("expected an error for an invalid selector")
	}
}

func TestClassesAndStyleRules(t *testing.T) {
	p := mustParse(t, fixtureHTML)

	wantClasses := []string{"container main-view", "badge badge-new"}
	if !reflect.DeepEqual(p.Classes(), wantClasses) {
		t.Errorf("Classes() = %v, want %v", p.Classes(), wantClasses)
	}

	if !strings.Contains(p.StyleRules(), "rebeccapurple") {
		t.Errorf("StyleRules() missing inline rule text: %q", p.StyleRules())
	}

	if !strings.Contains(p.Markup(), "<!DOCTYPE html>") {
		t.Error("Markup() does not preserve the raw document")
	}
}

func TestParsedPageDrivesDetection(t *testing.T) {
	markup := `<!DOCTYPE html>
<html>
<head>
  <link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/bootstrap@5/dist/css/bootstrap.min.css">
  <script src="/_next/static/chunks/main-7b21ef.js"></script>
</head>
<body>
  <div id="__next">
    <nav class="navbar navbar-toggler"></nav>
    <button class="btn btn-primary">Go</button>
  </div>
  <script>window.__NEXT_DATA__ = {"page":"/"};</script>
  <script src="/static/react.production.min.js"></script>
</body>
</html>`

	p := mustParse(t, markup)
	res := detector.Analyze(p, detector.Options{JSFrameworks: true, CSSFrameworks: true})

	wantJS := map[string]bool{"React": true, "Next.js": true}
	for _, name := range res.JSFrameworks {
		delete(wantJS, name)
	}
	if len(wantJS) != 0 {
		t.Errorf("missing JS frameworks %v in %v", wantJS, res.JSFrameworks)
	}

	foundBootstrap := false
	for _, name := range res.CSSFrameworks {
		if name == "Bootstrap" {
			foundBootstrap = true
		}
	}
	if !foundBootstrap {
		t.Errorf("expected Bootstrap in %v", res.CSSFrameworks)
	}
}

func TestPlainPageDetectsNothing(t *testing.T) {
	p := mustParse(t, `<html><body><p>hello</p></body></html>`)
	res := detector.Analyze(p, detector.Options{JSFrameworks: true, CSSFrameworks: true})

	if !reflect.DeepEqual(res.JSFrameworks, []string{detector.NoneDetected}) {
		t.Errorf("JSFrameworks = %v", res.JSFrameworks)
	}
	if !reflect.DeepEqual(res.CSSFrameworks, []string{detector.NoneDetected}) {
		t.Errorf("CSSFrameworks = %v", res.CSSFrameworks)
	}
}
