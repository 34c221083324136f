package domain

// Catalog holds the loaded article variations in workbook row order and
// tracks the sequential session cursor. Immutable after load except for
// the cursor, which only ever moves forward.
type Catalog struct {
	variations []Variation
	byNumber   map[string][]Variation
	order      []string // distinct article numbers in first-seen order
	cursor     int
}

// NewCatalog builds a catalog from variations in row order
func NewCatalog(variations []Variation) *Catalog {
	c := &Catalog{
		variations: variations,
		byNumber:   make(map[string][]Variation),
	}
	for _, v := range variations {
		if _, seen := c.byNumber[v.Number]; !seen {
			c.order = append(c.order, v.Number)
		}
		c.byNumber[v.Number] = append(c.byNumber[v.Number], v)
	}
	return c
}

// Advance returns the next variation in row order. The second return is
// false once the catalog is exhausted; every variation is yielded
// exactly once.
func (c *Catalog) Advance() (Variation, bool) {
	if c.cursor >= len(c.variations) {
		return Variation{}, false
	}
	v := c.variations[c.cursor]
	c.cursor++
	return v, true
}

// Peek returns the variation Advance would yield next without moving
// the cursor
func (c *Catalog) Peek() (Variation, bool) {
	if c.cursor >= len(c.variations) {
		return Variation{}, false
	}
	return c.variations[c.cursor], true
}

// Lookup returns all variations for an article number, or nil when the
// number is not in the catalog
func (c *Catalog) Lookup(articleNo string) []Variation {
	return c.byNumber[articleNo]
}

// Variations returns all variations in row order
func (c *Catalog) Variations() []Variation {
	return c.variations
}

// ArticleNumbers returns the distinct article numbers in first-seen order
func (c *Catalog) ArticleNumbers() []string {
	return c.order
}

// Len returns the total number of variations
func (c *Catalog) Len() int {
	return len(c.variations)
}

// Articles returns the number of distinct article numbers
func (c *Catalog) Articles() int {
	return len(c.order)
}

// Remaining returns how many variations the cursor has not yet yielded
func (c *Catalog) Remaining() int {
	return len(c.variations) - c.cursor
}
