package table

import (
	"fmt"
	"sort"

	"github.com/axelroques/ditto/lib/pattern"
)

// CodeTable is the mutable, ordered list of patterns being optimized
type CodeTable struct {
	patterns []*pattern.Pattern
	dirty    bool
}

// NewCodeTable creates a code table holding copies of the singleton patterns
func NewCodeTable(st *SingletonTable) *CodeTable {
	ct := &CodeTable{
		patterns: make([]*pattern.Pattern, 0, st.Len()),
		dirty:    true,
	}
	for _, p := range st.Patterns() {
		ct.Add(p.Clone())
	}
	return ct
}

// --------------------------------------------------------------------------
// Cover table methods
// --------------------------------------------------------------------------

// Patterns returns the live slots. The slice must not be modified.
func (ct *CodeTable) Patterns() []*pattern.Pattern {
	return ct.patterns
}

// CoverOrder returns the slot ids sorted by descending length, ties broken by name.
// The slots themselves are not reordered.
func (ct *CodeTable) CoverOrder() []int {
	order := make([]int, len(ct.patterns))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return pattern.CoverOrderLess(ct.patterns[order[i]], ct.patterns[order[j]])
	})
	return order
}

// --------------------------------------------------------------------------
// Slot management
// --------------------------------------------------------------------------

// Len returns the number of live slots
func (ct *CodeTable) Len() int {
	return len(ct.patterns)
}

// NextID returns the id the next added pattern receives (always equal to Len)
func (ct *CodeTable) NextID() int {
	return len(ct.patterns)
}

// At returns the pattern in slot id
func (ct *CodeTable) At(id int) *pattern.Pattern {
	return ct.patterns[id]
}

// Add appends p with the next id
func (ct *CodeTable) Add(p *pattern.Pattern) {
	p.ID = len(ct.patterns)
	ct.patterns = append(ct.patterns, p)
}

// Remove removes p from its slot and renumbers every following slot.
// It returns the slot p occupied.
func (ct *CodeTable) Remove(p *pattern.Pattern) (int, error) {
	id := p.ID
	if id < 0 || id >= len(ct.patterns) || ct.patterns[id] != p {
		return -1, fmt.Errorf("table: pattern %s is not in slot %d", p.Name, id)
	}
	ct.patterns = append(ct.patterns[:id], ct.patterns[id+1:]...)
	p.ID = -1
	ct.renumber(id)
	return id, nil
}

// Restore puts p back into slot at, shifting the following slots up by one
func (ct *CodeTable) Restore(p *pattern.Pattern, at int) {
	if at < 0 || at > len(ct.patterns) {
		at = len(ct.patterns)
	}
	ct.patterns = append(ct.patterns, nil)
	copy(ct.patterns[at+1:], ct.patterns[at:])
	ct.patterns[at] = p
	ct.renumber(at)
}

// renumber restores ids == positions from slot from on
func (ct *CodeTable) renumber(from int) {
	for i := from; i < len(ct.patterns); i++ {
		ct.patterns[i].ID = i
	}
}

// --------------------------------------------------------------------------
// Queries
// --------------------------------------------------------------------------

// Contains reports whether a pattern with the given name is in the table
func (ct *CodeTable) Contains(name string) bool {
	for _, p := range ct.patterns {
		if p.Name == name {
			return true
		}
	}
	return false
}

// TotalUsage returns the sum of the usage of all patterns of the most recent cover
func (ct *CodeTable) TotalUsage() int {
	total := 0
	for _, p := range ct.patterns {
		total += p.Usage()
	}
	return total
}

// Usages returns the usage of every slot, indexed by id
func (ct *CodeTable) Usages() []int {
	usages := make([]int, len(ct.patterns))
	for i, p := range ct.patterns {
		usages[i] = p.Usage()
	}
	return usages
}

// Stats returns a copy of the statistics of every slot, indexed by id
func (ct *CodeTable) Stats() []pattern.Stats {
	stats := make([]pattern.Stats, len(ct.patterns))
	for i, p := range ct.patterns {
		stats[i] = p.Stats
	}
	return stats
}

// SetStats restores statistics previously returned by Stats.
// The table must hold the same slots as when the snapshot was taken.
func (ct *CodeTable) SetStats(stats []pattern.Stats) {
	for i := 0; i < len(stats) && i < len(ct.patterns); i++ {
		ct.patterns[i].Stats = stats[i]
	}
}

// Names returns the pattern names in slot order
func (ct *CodeTable) Names() []string {
	names := make([]string, len(ct.patterns))
	for i, p := range ct.patterns {
		names[i] = p.Name
	}
	return names
}

// --------------------------------------------------------------------------
// Dirty flag
// --------------------------------------------------------------------------

// Dirty reports whether the table changed since the last length computation
func (ct *CodeTable) Dirty() bool {
	return ct.dirty
}

// MarkDirty records a change of the table
func (ct *CodeTable) MarkDirty() {
	ct.dirty = true
}

// MarkClean records that the cached length matches the table
func (ct *CodeTable) MarkClean() {
	ct.dirty = false
}
