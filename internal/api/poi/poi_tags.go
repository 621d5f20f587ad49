package poi

// Category pairs a category key with the Overpass QL selector that counts as that category.
type Category struct {
	Key      string
	Selector string
}

// CategoryTable is an immutable, ordered list of categories. The order fixes both the
// statement order of the Overpass query and the order of the resulting counts.
type CategoryTable struct {
	categories []Category
}

// NewCategoryTable copies cs so later changes to the caller's slice have no effect.
func NewCategoryTable(cs ...Category) CategoryTable {
	out := make([]Category, len(cs))
	copy(out, cs)
	return CategoryTable{categories: out}
}

// DefaultCategoryTable is the table used in production.
// OSM tags markets as amenity=marketplace, not shop=marketplace.
func DefaultCategoryTable() CategoryTable {
	return NewCategoryTable(
		Category{Key: "bus_stop", Selector: `nwr["highway"="bus_stop"]`},
		Category{Key: "subway_entrance", Selector: `nwr["railway"="subway_entrance"]`},
		Category{Key: "marketplace", Selector: `nwr["amenity"="marketplace"]`},
		Category{Key: "supermarket", Selector: `nwr["shop"="supermarket"]`},
		Category{Key: "convenience", Selector: `nwr["shop"="convenience"]`},
		Category{Key: "cafe", Selector: `nwr["amenity"="cafe"]`},
		Category{Key: "bakery", Selector: `nwr["shop"="bakery"]`},
		Category{Key: "ice_cream", Selector: `nwr["amenity"="ice_cream"]`},
		Category{Key: "park", Selector: `nwr["leisure"="park"]`},
		Category{Key: "river", Selector: `nwr["waterway"="river"]`},
		Category{Key: "office", Selector: `nwr["amenity"="office"]`},
		Category{Key: "school", Selector: `nwr["amenity"="school"]`},
		Category{Key: "university", Selector: `nwr["amenity"="university"]`},
	)
}

func (t CategoryTable) Len() int { return len(t.categories) }

// Categories returns a copy of the table rows in order.
func (t CategoryTable) Categories() []Category {
	out := make([]Category, len(t.categories))
	copy(out, t.categories)
	return out
}

// Keys returns the category keys in order.
func (t CategoryTable) Keys() []string {
	keys := make([]string, len(t.categories))
	for i, c := range t.categories {
		keys[i] = c.Key
	}
	return keys
}
