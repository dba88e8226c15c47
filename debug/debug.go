// Package debug provides env-var gated debug logging for the editing
// engine. Set TE_DEBUG_NAVIGATE, TE_DEBUG_EDIT, or TE_DEBUG_COERCE to a
// truthy value to trace the corresponding stage on stderr.
package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Navigate bool
	Edit     bool
	Coerce   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Navigate = boolEnv("TE_DEBUG_NAVIGATE")
	d.Edit = boolEnv("TE_DEBUG_EDIT")
	d.Coerce = boolEnv("TE_DEBUG_COERCE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Navigate() bool {
	return d.Navigate
}
func Edit() bool {
	return d.Edit
}
func Coerce() bool {
	return d.Coerce
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}
