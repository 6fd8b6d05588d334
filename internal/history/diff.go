package history

import (
	"fmt"

	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"
)

// Diff returns a unified diff between two snapshots, labeled by their
// timestamps. Empty string when the contents are identical.
func Diff(old, new Snapshot) string {
	if old.Content == new.Content {
		return ""
	}
	edits := myers.ComputeEdits(span.URIFromPath(old.Path), old.Content, new.Content)
	return fmt.Sprint(gotextdiff.ToUnified(
		fmt.Sprintf("%s @ %s", old.Path, old.Created.Format("2006-01-02 15:04:05")),
		fmt.Sprintf("%s @ %s", new.Path, new.Created.Format("2006-01-02 15:04:05")),
		old.Content, edits,
	))
}
