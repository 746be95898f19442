package registry

import (
	"fmt"
	"strings"
)

// UnknownFormatError reports a lookup for a format token nothing is
// registered under.
type UnknownFormatError struct {
	Op     string // "read" or "write"
	Format string
	Known  []string
}

func (e *UnknownFormatError) Error() string {
	role := "writer"
	if e.Op == "read" {
		role = "reader"
	}
	if len(e.Known) == 0 {
		return fmt.Sprintf("registry: no %s defined for format %q", role, e.Format)
	}
	return fmt.Sprintf("registry: no %s defined for format %q (registered: %s)", role, e.Format, strings.Join(e.Known, ", "))
}

// OverwriteError reports a destination that already exists while the call
// did not permit replacing it.
type OverwriteError struct {
	Path string
}

func (e *OverwriteError) Error() string {
	return fmt.Sprintf("registry: destination %q already exists; pass Overwrite: true to replace it", e.Path)
}
