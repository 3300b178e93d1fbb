package overview

// Expansion tracks which single category card is expanded to reveal its
// transaction list.
type Expansion struct {
	category string
}

// Toggle expands category, or collapses it when it is already expanded.
func (x *Expansion) Toggle(category string) {
	if x.category == category {
		x.category = ""
		return
	}
	x.category = category
}

// Expanded returns the expanded category, or "" when all cards are
// collapsed.
func (x *Expansion) Expanded() string { return x.category }

// IsExpanded reports whether the given category is the expanded one.
func (x *Expansion) IsExpanded(category string) bool {
	return x.category != "" && x.category == category
}
