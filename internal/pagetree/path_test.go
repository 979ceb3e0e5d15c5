package pagetree

import (
	"reflect"
	"testing"
)

func TestDepth(t *testing.T) {
	tests := []struct {
		path string
		want int
	}{
		{"", 0},
		{"0001", 1},
		{"00010002", 2},
		{"000100020003", 3},
	}
	for _, tt := range tests {
		if got := Depth(tt.path); got != tt.want {
			t.Errorf("Depth(%q) = %d, want %d", tt.path, got, tt.want)
		}
	}
}

func TestValid(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"0001", true},
		{"0001000Z", true},
		{"", false},
		{"001", false},
		{"00011", false},
		{"00a1", false},
		{"00-1", false},
	}
	for _, tt := range tests {
		if got := Valid(tt.path); got != tt.want {
			t.Errorf("Valid(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestParentPath(t *testing.T) {
	tests := []struct {
		path   string
		want   string
		wantOK bool
	}{
		{"000100020003", "00010002", true},
		{"00010002", "0001", true},
		{"0001", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := ParentPath(tt.path)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParentPath(%q) = %q, %v, want %q, %v", tt.path, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestAncestorPaths(t *testing.T) {
	tests := []struct {
		path string
		want []string
	}{
		{"0001", nil},
		{"00010002", []string{"0001"}},
		{"000100020003", []string{"00010002", "0001"}},
	}
	for _, tt := range tests {
		if got := AncestorPaths(tt.path); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("AncestorPaths(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestChildPath(t *testing.T) {
	tests := []struct {
		parent string
		n      int
		want   string
	}{
		{"0001", 1, "00010001"},
		{"0001", 12, "0001000C"},
		{"0001", 36, "00010010"},
		{"", 1, "0001"},
	}
	for _, tt := range tests {
		if got := ChildPath(tt.parent, tt.n); got != tt.want {
			t.Errorf("ChildPath(%q, %d) = %q, want %q", tt.parent, tt.n, got, tt.want)
		}
	}
}

func TestChildPathOutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for step 0")
		}
	}()
	ChildPath("0001", 0)
}
