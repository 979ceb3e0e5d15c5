// Package pagetree implements the materialized-path conventions of the
// page-tree store. Every node carries a path built from fixed-width
// base-36 steps, so ancestry and descent reduce to string-prefix
// operations that the database can index.
package pagetree

import (
	"fmt"
	"strings"
)

// StepLen is the width of a single path step. A node at depth N has a
// path of exactly N*StepLen characters.
const StepLen = 4

const stepAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Depth returns the tree depth encoded by a path. The empty path has
// depth zero and belongs to no node.
func Depth(path string) int {
	return len(path) / StepLen
}

// Valid reports whether a path is well formed: non-empty, a whole number
// of steps, and drawn from the step alphabet.
func Valid(path string) bool {
	if path == "" || len(path)%StepLen != 0 {
		return false
	}
	for _, r := range path {
		if !strings.ContainsRune(stepAlphabet, r) {
			return false
		}
	}
	return true
}

// ParentPath returns the path of a node's immediate parent. The second
// return value is false for top-level nodes.
func ParentPath(path string) (string, bool) {
	if len(path) <= StepLen {
		return "", false
	}
	return path[:len(path)-StepLen], true
}

// AncestorPaths returns the paths of all ancestors of a node, ordered
// nearest first. A top-level node has no ancestors.
func AncestorPaths(path string) []string {
	var out []string
	for p, ok := ParentPath(path); ok; p, ok = ParentPath(p) {
		out = append(out, p)
	}
	return out
}

// ChildPath builds the path of the n-th child (1-based) under parent.
// It panics if n does not fit in a single step; the tree never grows
// that wide in practice.
func ChildPath(parent string, n int) string {
	return parent + step(n)
}

func step(n int) string {
	if n < 1 || n >= 36*36*36*36 {
		panic(fmt.Sprintf("pagetree: step %d out of range", n))
	}
	b := make([]byte, StepLen)
	for i := StepLen - 1; i >= 0; i-- {
		b[i] = stepAlphabet[n%36]
		n /= 36
	}
	return string(b)
}
