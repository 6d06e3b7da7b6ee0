// Package mediaorder implements the order.json sidecar contract: each bucket
// may hold a single JSON document listing object names in display order.
// The document is replaced wholesale on save, last writer wins.
package mediaorder

import (
	"encoding/json"
	"sort"

	"github.com/kg-3rd/grand-adventure-hub/internal/models"
)

// DocumentName is the reserved object name for the sidecar. It is excluded
// from media listings.
const DocumentName = "order.json"

type Document struct {
	Order []string `json:"order"`
}

// Parse decodes a sidecar document. A missing, empty or malformed document
// is treated as "no explicit order" and yields nil, never an error.
func Parse(data []byte) []string {
	if len(data) == 0 {
		return nil
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil
	}
	return doc.Order
}

// Encode serializes an order array into sidecar form.
func Encode(order []string) []byte {
	data, _ := json.Marshal(Document{Order: order})
	return data
}

// Sort returns items arranged by the order array: names present in order
// keep its relative positions and precede every absent name; absent names
// sort lexicographically among themselves. Ties on equal rank also fall back
// to name comparison, so a duplicate entry cannot destabilize the result.
// With no order the input is returned unchanged.
func Sort(items []models.MediaObject, order []string) []models.MediaObject {
	if len(order) == 0 {
		return items
	}

	rank := make(map[string]int, len(order))
	for i, name := range order {
		if _, seen := rank[name]; !seen {
			rank[name] = i
		}
	}

	sorted := make([]models.MediaObject, len(items))
	copy(sorted, items)
	sort.Slice(sorted, func(i, j int) bool {
		ri, iOrdered := rank[sorted[i].Name]
		rj, jOrdered := rank[sorted[j].Name]
		switch {
		case iOrdered && jOrdered && ri != rj:
			return ri < rj
		case iOrdered != jOrdered:
			return iOrdered
		default:
			return sorted[i].Name < sorted[j].Name
		}
	})
	return sorted
}

// Prune drops names that no longer reference an existing object. The store
// enforces no referential integrity, so dangling entries accumulate after
// deletes; consumers ignore them, this just keeps the document tidy.
func Prune(order []string, existing map[string]struct{}) ([]string, bool) {
	pruned := make([]string, 0, len(order))
	for _, name := range order {
		if _, ok := existing[name]; ok {
			pruned = append(pruned, name)
		}
	}
	return pruned, len(pruned) != len(order)
}
