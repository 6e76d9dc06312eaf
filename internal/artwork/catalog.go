package artwork

import "strings"

// Catalog is a fixed ordered list of artworks.
type Catalog struct {
	items []Artwork
}

// NewCatalog builds a catalog over items. The slice is copied.
func NewCatalog(items []Artwork) *Catalog {
	c := &Catalog{items: make([]Artwork, len(items))}
	copy(c.items, items)
	return c
}

// DefaultCatalog returns the built-in catalog.
func DefaultCatalog() *Catalog {
	return NewCatalog(defaultArtworks)
}

func (c *Catalog) Len() int {
	return len(c.items)
}

// Daily returns the artwork at dayOfMonth mod Len.
func (c *Catalog) Daily(dayOfMonth int) (Artwork, error) {
	n := len(c.items)
	if n == 0 {
		return Artwork{}, ErrEmptyCatalog
	}
	idx := dayOfMonth % n
	if idx < 0 {
		idx += n
	}
	return c.items[idx], nil
}

// Search returns, in catalog order, every artwork whose title, artist,
// period or style contains query, ignoring case.
func (c *Catalog) Search(query string) []Artwork {
	q := strings.ToLower(query)
	results := make([]Artwork, 0)
	for _, a := range c.items {
		if strings.Contains(strings.ToLower(a.Title), q) ||
			strings.Contains(strings.ToLower(a.Artist), q) ||
			strings.Contains(strings.ToLower(a.Period), q) ||
			strings.Contains(strings.ToLower(a.Style), q) {
			results = append(results, a)
		}
	}
	return results
}
