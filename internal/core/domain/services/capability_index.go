package services

import (
	"slices"
	"sync"

	"dispatch/internal/core/domain/model/product"
	"dispatch/internal/core/domain/model/staff"
)

// CapabilityIndex is a derived mapping from product category to the staff
// members who are currently logged in and skilled in that category.
//
// The index is a pure function of a staff registry snapshot: it is never
// patched incrementally, only rebuilt in full via BuildCapabilityIndex. At any
// observation point it therefore equals exactly
//
//	{member : member.IsLoggedIn() and category ∈ member.Skills()}
//
// for every category, and can never contain a logged-out member. Staff order
// within a category list is the registry's insertion order.
//
// A CapabilityIndex value is immutable after construction and safe to share
// between readers. The zero value behaves as an index over an empty registry.
type CapabilityIndex struct {
	byCategory map[product.Category][]*staff.Staff
}

// BuildCapabilityIndex recomputes the full mapping from scratch for the given
// registry snapshot. Every valid category gets an entry, so lookups never
// distinguish "no staff" from "unknown category".
//
// Rebuilding instead of patching trades a little update cost for the
// guarantee that the index can never go stale; login, logout, and skill
// changes are low-frequency events at this scale.
func BuildCapabilityIndex(members []*staff.Staff) CapabilityIndex {
	byCategory := make(map[product.Category][]*staff.Staff, len(product.AllCategories()))
	for _, category := range product.AllCategories() {
		byCategory[category] = []*staff.Staff{}
	}

	for _, member := range members {
		if member == nil || !member.IsLoggedIn() {
			continue
		}
		for _, skill := range member.Skills() {
			byCategory[skill] = append(byCategory[skill], member)
		}
	}

	return CapabilityIndex{byCategory: byCategory}
}

// AvailableFor returns the logged-in staff able to handle the category, in
// registry insertion order. The result is never nil; an empty slice means no
// one currently qualifies.
func (i CapabilityIndex) AvailableFor(category product.Category) []*staff.Staff {
	if members, ok := i.byCategory[category]; ok {
		return slices.Clone(members)
	}
	return []*staff.Staff{}
}

// HasAvailable reports whether at least one logged-in staff member can handle
// the category.
func (i CapabilityIndex) HasAvailable(category product.Category) bool {
	return len(i.byCategory[category]) > 0
}

// CapabilityIndexHolder is the shared home of the current CapabilityIndex.
//
// Writers (login/logout flows) rebuild and publish through Update; readers
// (dispatch passes, availability queries) take a snapshot and work against it
// for the whole operation. The RWMutex gives the exclusive-write/shared-read
// discipline the collections require: one writer at a time, readers
// concurrent with each other but never with a writer.
type CapabilityIndexHolder struct {
	// rebuildMu serializes whole mutate-then-publish sections (see Update),
	// keeping registry commits and index publications in the same order.
	rebuildMu sync.Mutex
	mu        sync.RWMutex
	index     CapabilityIndex
}

// NewCapabilityIndexHolder creates a holder carrying an index over an empty
// registry, so readers are safe before the first rebuild.
func NewCapabilityIndexHolder() *CapabilityIndexHolder {
	return &CapabilityIndexHolder{
		index: BuildCapabilityIndex(nil),
	}
}

// Update serializes a registry change with the publication of its rebuilt
// index. fn performs the change and returns the replacement index; the holder
// publishes it only when fn succeeds. One lock covers the whole
// mutate-then-publish section, so two concurrent login/logout flows can never
// publish indexes in a different order than their registry commits, and a
// snapshot taken after Update returns always reflects the committed registry.
func (h *CapabilityIndexHolder) Update(fn func() (CapabilityIndex, error)) error {
	h.rebuildMu.Lock()
	defer h.rebuildMu.Unlock()

	index, err := fn()
	if err != nil {
		return err
	}

	h.Swap(index)
	return nil
}

// Swap publishes a freshly rebuilt index.
func (h *CapabilityIndexHolder) Swap(index CapabilityIndex) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.index = index
}

// Snapshot returns the current index. The returned value is immutable, so a
// dispatch pass observes one consistent index for its entire scan.
func (h *CapabilityIndexHolder) Snapshot() CapabilityIndex {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.index
}
