package listing

import "testing"

func TestResolveLink(t *testing.T) {
	tests := []struct {
		name     string
		pageURL  string
		docURL   string
		external string
		want     string
	}{
		{"page only", "/about/", "", "", "/about/"},
		{"document only", "", "/media/docs/brochure.pdf", "", "/media/docs/brochure.pdf"},
		{"external only", "", "", "https://example.com", "https://example.com"},
		{"page beats external", "/about/", "", "https://example.com", "/about/"},
		{"page beats document", "/about/", "/media/docs/brochure.pdf", "", "/about/"},
		{"document beats external", "", "/media/docs/brochure.pdf", "https://example.com", "/media/docs/brochure.pdf"},
		{"all three set", "/about/", "/media/docs/brochure.pdf", "https://example.com", "/about/"},
		{"nothing set", "", "", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveLink(tt.pageURL, tt.docURL, tt.external); got != tt.want {
				t.Errorf("ResolveLink(%q, %q, %q) = %q, want %q", tt.pageURL, tt.docURL, tt.external, got, tt.want)
			}
		})
	}
}
