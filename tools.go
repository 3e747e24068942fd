//go:build tools

package tools

// This file tracks versions of CLI tool dependencies.
// It is not compiled into the binary.
//
// Mocks are generated with github.com/matryer/moq from the
// //go:generate directives at the top of each package's tests.
// Migrations run through cmd/migrate, which embeds goose.
