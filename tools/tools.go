//go:build tools

// Package tools pins build-time tool dependencies so `go mod tidy`
// keeps them in go.mod.
package tools

import (
	_ "github.com/golangci/golangci-lint/v2/cmd/golangci-lint"
	_ "golang.org/x/tools/cmd/goimports"
	_ "gotest.tools/gotestsum"
)
