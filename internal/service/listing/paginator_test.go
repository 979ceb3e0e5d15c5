package listing

import "testing"

func TestTotalPages(t *testing.T) {
	tests := []struct {
		name    string
		total   int
		perPage int
		want    int
	}{
		{"empty set still has one page", 0, 10, 1},
		{"single partial page", 7, 10, 1},
		{"exact fit", 20, 10, 2},
		{"one over", 21, 10, 3},
		{"per-page fallback", 25, 0, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TotalPages(tt.total, tt.perPage); got != tt.want {
				t.Errorf("TotalPages(%d, %d) = %d, want %d", tt.total, tt.perPage, got, tt.want)
			}
		})
	}
}

func TestClampPage(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		totalPages int
		want       int
	}{
		{"missing", "", 5, 1},
		{"non-numeric", "abc", 5, 1},
		{"zero", "0", 5, 1},
		{"negative", "-1", 5, 1},
		{"in range", "3", 5, 3},
		{"first", "1", 5, 1},
		{"last", "5", 5, 5},
		{"past the end", "42", 5, 5},
		{"float-ish", "2.5", 5, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampPage(tt.raw, tt.totalPages); got != tt.want {
				t.Errorf("ClampPage(%q, %d) = %d, want %d", tt.raw, tt.totalPages, got, tt.want)
			}
		})
	}
}

func TestPageResultNavigation(t *testing.T) {
	tests := []struct {
		name     string
		page     int
		total    int
		wantNext bool
		wantPrev bool
	}{
		{"only page", 1, 1, false, false},
		{"first of many", 1, 3, true, false},
		{"middle", 2, 3, true, true},
		{"last", 3, 3, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &PageResult[int]{Page: tt.page, TotalPages: tt.total}
			if got := r.HasNext(); got != tt.wantNext {
				t.Errorf("HasNext() = %v, want %v", got, tt.wantNext)
			}
			if got := r.HasPrev(); got != tt.wantPrev {
				t.Errorf("HasPrev() = %v, want %v", got, tt.wantPrev)
			}
		})
	}
}
