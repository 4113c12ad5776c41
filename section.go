package pdfanalyze

// SectionGroup is an ordered run of sections sharing a group label.
type SectionGroup struct {
	Label    string
	Sections []Section
}

// SectionIndex is a grouped, order-preserving view of a document's
// sections. Groups appear in the order their first member appeared in
// the input; within a group, sections keep their original order. The
// service is assumed to deliver sections in reading order already, so
// nothing is sorted.
type SectionIndex struct {
	groups []SectionGroup
	order  map[string]int // group label -> index into groups
}

// NewSectionIndex builds an index from sections in their received order.
func NewSectionIndex(sections []Section) *SectionIndex {
	idx := &SectionIndex{order: make(map[string]int)}
	for _, s := range sections {
		i, ok := idx.order[s.GroupLabel]
		if !ok {
			i = len(idx.groups)
			idx.order[s.GroupLabel] = i
			idx.groups = append(idx.groups, SectionGroup{Label: s.GroupLabel})
		}
		idx.groups[i].Sections = append(idx.groups[i].Sections, s)
	}
	return idx
}

// Groups returns the groups in first-occurrence order.
func (idx *SectionIndex) Groups() []SectionGroup {
	return idx.groups
}

// Len returns the total number of sections in the index.
func (idx *SectionIndex) Len() int {
	n := 0
	for _, g := range idx.groups {
		n += len(g.Sections)
	}
	return n
}

// First returns the first section in document order.
func (idx *SectionIndex) First() (Section, bool) {
	for _, g := range idx.groups {
		if len(g.Sections) > 0 {
			return g.Sections[0], true
		}
	}
	return Section{}, false
}

// FindByCitationKey returns the first section whose citation key equals
// key. Used to honor an externally supplied target section from a
// shareable link.
func (idx *SectionIndex) FindByCitationKey(key string) (Section, bool) {
	for _, g := range idx.groups {
		for _, s := range g.Sections {
			if s.CitationKey == key {
				return s, true
			}
		}
	}
	return Section{}, false
}

// FindByID returns the section with the given id.
func (idx *SectionIndex) FindByID(id string) (Section, bool) {
	for _, g := range idx.groups {
		for _, s := range g.Sections {
			if s.ID == id {
				return s, true
			}
		}
	}
	return Section{}, false
}
