package catalog

import (
	"strings"
)

// Variant is one product option axis, e.g. Size or Color, with its
// ordered set of option labels.
type Variant struct {
	Type    string   `json:"type"`
	Options []string `json:"options"`
}

// Item is a product record. Prices are in paise. Items are read-only to
// every other package; the catalog owns them.
type Item struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Price         int       `json:"price"`
	OriginalPrice int       `json:"original_price,omitempty"`
	Discount      int       `json:"discount,omitempty"`
	Category      string    `json:"category"`
	SubCategory   string    `json:"sub_category"`
	Images        []string  `json:"images"`
	Rating        float64   `json:"rating"`
	ReviewCount   int       `json:"review_count"`
	InStock       bool      `json:"in_stock"`
	StockCount    int       `json:"stock_count"`
	Variants      []Variant `json:"variants,omitempty"`
	Tags          []string  `json:"tags,omitempty"`
	IsFeatured    bool      `json:"is_featured,omitempty"`
	IsTrending    bool      `json:"is_trending,omitempty"`
}

// Category groups items for browsing
type Category struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	SubCategories []string `json:"sub_categories"`
	ProductCount  int      `json:"product_count"`
}

// Provider serves the product and category lists. All reads are over a
// fixed in-memory catalog; there is no mutation entry point.
type Provider struct {
	items      []Item
	byID       map[string]Item
	categories []Category
}

// NewProvider builds a provider over the given catalog
func NewProvider(items []Item, categories []Category) *Provider {
	byID := make(map[string]Item, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}
	return &Provider{
		items:      items,
		byID:       byID,
		categories: categories,
	}
}

// NewSeededProvider builds a provider over the built-in demo catalog
func NewSeededProvider() *Provider {
	return NewProvider(seedItems, seedCategories)
}

// Items returns the full product list in catalog order
func (p *Provider) Items() []Item {
	out := make([]Item, len(p.items))
	copy(out, p.items)
	return out
}

// Get returns the item with the given id
func (p *Provider) Get(id string) (Item, bool) {
	item, ok := p.byID[id]
	return item, ok
}

// Categories returns the category list
func (p *Provider) Categories() []Category {
	out := make([]Category, len(p.categories))
	copy(out, p.categories)
	return out
}

// ByCategory returns all items in a category
func (p *Provider) ByCategory(categoryID string) []Item {
	var out []Item
	for _, item := range p.items {
		if item.Category == categoryID {
			out = append(out, item)
		}
	}
	return out
}

// Search returns items whose name, category or tags contain the query,
// case-insensitively. An empty query matches everything.
func (p *Provider) Search(query string) []Item {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return p.Items()
	}

	var out []Item
	for _, item := range p.items {
		if p.matches(item, q) {
			out = append(out, item)
		}
	}
	return out
}

func (p *Provider) matches(item Item, q string) bool {
	if strings.Contains(strings.ToLower(item.Name), q) {
		return true
	}
	if strings.Contains(strings.ToLower(item.Category), q) {
		return true
	}
	if strings.Contains(strings.ToLower(item.SubCategory), q) {
		return true
	}
	for _, tag := range item.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// Featured returns items flagged for the featured shelf
func (p *Provider) Featured() []Item {
	var out []Item
	for _, item := range p.items {
		if item.IsFeatured {
			out = append(out, item)
		}
	}
	return out
}

// Trending returns items flagged as trending
func (p *Provider) Trending() []Item {
	var out []Item
	for _, item := range p.items {
		if item.IsTrending {
			out = append(out, item)
		}
	}
	return out
}
