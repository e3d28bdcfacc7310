package collection

import (
	"fmt"
	"sort"
	"strings"
)

// SortCriterion selects the order applied by Store.Sort.
type SortCriterion int

// Sort criteria.
const (
	SortNameAsc SortCriterion = iota
	SortNameDesc
	SortMostRecent
	SortLeastRecent
)

// String returns the canonical CLI name of the criterion.
func (c SortCriterion) String() string {
	switch c {
	case SortNameAsc:
		return "name-asc"
	case SortNameDesc:
		return "name-desc"
	case SortMostRecent:
		return "recent"
	case SortLeastRecent:
		return "oldest"
	}
	return "unknown"
}

// Label returns the display label shown in the sort selector.
func (c SortCriterion) Label() string {
	switch c {
	case SortNameAsc:
		return "Nom (A-Z)"
	case SortNameDesc:
		return "Nom (Z-A)"
	case SortMostRecent:
		return "Plus récent"
	case SortLeastRecent:
		return "Plus ancien"
	}
	return ""
}

// SortCriteria lists every criterion in selector order.
func SortCriteria() []SortCriterion {
	return []SortCriterion{SortNameAsc, SortNameDesc, SortMostRecent, SortLeastRecent}
}

// ParseSortCriterion accepts a CLI name or a display label.
func ParseSortCriterion(s string) (SortCriterion, error) {
	s = strings.TrimSpace(s)
	for _, c := range SortCriteria() {
		if strings.EqualFold(s, c.String()) || s == c.Label() {
			return c, nil
		}
	}
	return SortNameAsc, fmt.Errorf("unknown sort criterion %q (valid: name-asc, name-desc, recent, oldest)", s)
}

// Sort reorders the collection in place. The sort is stable, so ties keep
// their previous relative order.
func (s *Store) Sort(c SortCriterion) {
	var less func(a, b *Record) bool
	switch c {
	case SortNameDesc:
		less = func(a, b *Record) bool { return foldName(a.Name) > foldName(b.Name) }
	case SortMostRecent:
		less = func(a, b *Record) bool { return a.ModifiedAt.After(b.ModifiedAt) }
	case SortLeastRecent:
		less = func(a, b *Record) bool { return a.ModifiedAt.Before(b.ModifiedAt) }
	default:
		less = func(a, b *Record) bool { return foldName(a.Name) < foldName(b.Name) }
	}
	sort.SliceStable(s.records, func(i, j int) bool {
		return less(s.records[i], s.records[j])
	})
}

// Filter selects records for listing.
type Filter struct {
	// Tag keeps records carrying this exact tag.
	Tag string
	// Search keeps records whose name contains this text, ignoring case.
	Search string
}

// Match reports whether r passes the filter.
func (f Filter) Match(r *Record) bool {
	if f.Tag != "" && !r.HasTag(f.Tag) {
		return false
	}
	if f.Search != "" && !strings.Contains(foldName(r.Name), foldName(f.Search)) {
		return false
	}
	return true
}

// Filter returns the records passing f, in the current order.
func (s *Store) Filter(f Filter) []*Record {
	out := make([]*Record, 0, len(s.records))
	for _, r := range s.records {
		if f.Match(r) {
			out = append(out, r)
		}
	}
	return out
}
