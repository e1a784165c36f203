package rtree

import "fmt"

// SnapshotError is returned by FromJSON when a snapshot violates the
// structural invariants a live tree must satisfy (see SPEC_FULL.md §3).
type SnapshotError struct {
	Path string // breadcrumb of child indexes from the root, e.g. "root.children[2]"
	Msg  string
}

func (e *SnapshotError) Error() string {
	return fmt.Sprintf("rtree: invalid snapshot at %s: %s", e.Path, e.Msg)
}

func snapshotErrorf(path, format string, args ...interface{}) *SnapshotError {
	return &SnapshotError{Path: path, Msg: fmt.Sprintf(format, args...)}
}
