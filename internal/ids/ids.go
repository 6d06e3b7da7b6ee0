package ids

import "github.com/segmentio/ksuid"

// New returns a K-sortable unique identifier. KSUIDs embed a timestamp, so
// identifiers created later sort later.
func New() string {
	return ksuid.New().String()
}
