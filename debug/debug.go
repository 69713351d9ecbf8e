// Package debug provides env-var gated debug logging for the library.
// Set INI_DEBUG_PARSE, INI_DEBUG_DIFF or INI_DEBUG_MERGE to a truthy
// value to trace the corresponding component on stderr.
package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Parse bool
	Diff  bool
	Merge bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("INI_DEBUG_PARSE")
	d.Diff = boolEnv("INI_DEBUG_DIFF")
	d.Merge = boolEnv("INI_DEBUG_MERGE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Diff() bool {
	return d.Diff
}
func Merge() bool {
	return d.Merge
}

func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}
