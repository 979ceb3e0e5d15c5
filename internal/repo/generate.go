// Package repo holds the ent-generated client for the content model.
// The generated code is not committed; regenerate after schema changes:
//
//	go generate ./internal/repo
package repo

//go:generate go run -mod=mod entgo.io/ent/cmd/ent generate --target . ../schema
