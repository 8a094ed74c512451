package page_test

import (
	"reflect"
	"testing"

	"pagelens/pkg/page"
)

func TestAssetsResolveAgainstPageURL(t *testing.T) {
	markup := `<html><head>
<link rel="stylesheet" href="/css/site.css">
<link rel="stylesheet" href="theme/dark.css">
<script src="//cdn.example.com/lib.js"></script>
<script src="https://other.example.com/analytics.js"></script>
</head></html>`

	p, err := page.ParseString(markup, "https://example.com/blog/post.html")
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}

	assets := p.Assets()

	wantScripts := []string{
		"https://cdn.example.com/lib.js",
		"https://other.example.com/analytics.js",
	}
	if !reflect.DeepEqual(assets.Scripts, wantScripts) {
		t.Errorf("Scripts = %v, want %v", assets.Scripts, wantScripts)
	}

	wantStyles := []string{
		"https://example.com/css/site.css",
		"https://example.com/blog/theme/dark.css",
	}
	if !reflect.DeepEqual(assets.Stylesheets, wantStyles) {
		t.Errorf("Stylesheets = %v, want %v", assets.Stylesheets, wantStyles)
	}
}

func TestAssetsFromLocalFileStayRelative(t *testing.T) {
	p, err := page.ParseString(`<script src="js/app.js"></script>`, "fixtures/index.html")
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}

	assets := p.Assets()
	if !reflect.DeepEqual(assets.Scripts, []string{"js/app.js"}) {
		t.Errorf("Scripts = %v, want unresolved relative path", assets.Scripts)
	}
}

func TestAssetFilter(t *testing.T) {
	assets := page.Assets{
		Scripts: []string{
			"https://example.com/js/app.min.js",
			"https://cdn.example.com/vendor/jquery.js",
		},
		Stylesheets: []string{
			"https://example.com/css/site.css",
		},
	}

	tests := []struct {
		name        string
		patterns    []string
		wantScripts []string
		wantStyles  []string
	}{
		{
			name:        "no patterns keeps everything",
			patterns:    nil,
			wantScripts: assets.Scripts,
			wantStyles:  assets.Stylesheets,
		},
		{
			name:        "glob on full url",
			patterns:    []string{"https://example.com/**/*.js"},
			wantScripts: []string{"https://example.com/js/app.min.js"},
			wantStyles:  nil,
		},
		{
			name:        "substring fallback",
			patterns:    []string{"jquery"},
			wantScripts: []string{"https://cdn.example.com/vendor/jquery.js"},
			wantStyles:  nil,
		},
		{
			// "*" does not cross "/", so extension globs must be matched
			// against the URL's file name as well.
			name:        "extension glob on absolute urls",
			patterns:    []string{"*.js"},
			wantScripts: assets.Scripts,
			wantStyles:  nil,
		},
		{
			name:        "multiple patterns union",
			patterns:    []string{"jquery", "*.css"},
			wantScripts: []string{"https://cdn.example.com/vendor/jquery.js"},
			wantStyles:  []string{"https://example.com/css/site.css"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := assets.Filter(tt.patterns)
			if !reflect.DeepEqual(got.Scripts, tt.wantScripts) {
				t.Errorf("Scripts = %v, want %v", got.Scripts, tt.wantScripts)
			}
			if !reflect.DeepEqual(got.Stylesheets, tt.wantStyles) {
				t.Errorf("Stylesheets = %v, want %v", got.Stylesheets, tt.wantStyles)
			}
		})
	}
}
