//go:build tools

package kinet

import (
	_ "golang.org/x/tools/cmd/stringer"
)
