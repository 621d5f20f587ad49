package types

// POICount is the number of matching map features for one category.
type POICount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// POICounts holds positive counts only, in category-table order.
// Absence of a category means "none found" or "no data"; the two are not distinguished.
type POICounts []POICount

// Has reports whether the category is present.
func (p POICounts) Has(category string) bool {
	_, ok := p.Get(category)
	return ok
}

// HasAny reports whether at least one of the categories is present.
func (p POICounts) HasAny(categories ...string) bool {
	for _, c := range categories {
		if p.Has(c) {
			return true
		}
	}
	return false
}

func (p POICounts) Get(category string) (int, bool) {
	for _, c := range p {
		if c.Category == category {
			return c.Count, true
		}
	}
	return 0, false
}

// Categories returns the present category keys in table order.
func (p POICounts) Categories() []string {
	keys := make([]string, 0, len(p))
	for _, c := range p {
		keys = append(keys, c.Category)
	}
	return keys
}
