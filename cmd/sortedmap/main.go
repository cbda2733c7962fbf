// Command sortedmap prints the keys of a YAML or JSON mapping in sorted order.
//
// Usage:
//
//	sortedmap [-f file] [-reverse] [-range start:stop[:step]] [-demo]
//
// The mapping is read from stdin unless -f is given. Behavior is configured
// through the environment:
//
//	SORTEDMAP_IGNORE_CASE  treat keys differing only in case as one (default true)
//	SORTEDMAP_FOLD         "lower" or "unicode" (default lower)
//	SORTEDMAP_ORDER        "ordinal" or "natural" (default ordinal)
//	LOG_JSON, LOG_LEVEL, LOG_OUTPUT
package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, nil); err != nil {
		fmt.Fprintln(os.Stderr, "sortedmap:", err)
		os.Exit(1)
	}
}
