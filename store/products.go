package store

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pankajarora1984/chandan-sarees-api/models"
)

// ProductStore is the in-memory catalog. It is re-seeded from the sample
// data on every start; products are read-only reference data within a
// request.
type ProductStore struct {
	mu       sync.RWMutex
	products []models.Product
}

func NewProductStore() *ProductStore {
	return &ProductStore{}
}

// Seed replaces the catalog contents.
func (s *ProductStore) Seed(products []models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = append([]models.Product(nil), products...)
}

// ProductFilter narrows and orders a catalog listing. Zero values mean
// "not set"; MaxPrice 0 disables the upper bound.
type ProductFilter struct {
	Category     string
	FeaturedOnly bool
	InStockOnly  bool
	MinPrice     int
	MaxPrice     int
	Search       string
	SortBy       string
	Page         int
	Limit        int
}

// List returns the filtered, sorted, paginated catalog page.
func (s *ProductStore) List(f ProductFilter) ([]models.Product, models.Pagination) {
	s.mu.RLock()
	filtered := make([]models.Product, 0, len(s.products))
	for _, p := range s.products {
		if f.Category != "" && !strings.EqualFold(p.Category, f.Category) {
			continue
		}
		if f.FeaturedOnly && !p.Featured {
			continue
		}
		if f.InStockOnly && !p.InStock {
			continue
		}
		if f.MinPrice > 0 && p.Price < f.MinPrice {
			continue
		}
		if f.MaxPrice > 0 && p.Price > f.MaxPrice {
			continue
		}
		if f.Search != "" && !matchesSearch(p, f.Search) {
			continue
		}
		filtered = append(filtered, p)
	}
	s.mu.RUnlock()

	sortProducts(filtered, f.SortBy)
	page, pagination := paginate(len(filtered), f.Page, f.Limit)
	return filtered[page.start:page.end], pagination
}

// ByID looks a product up by id.
func (s *ProductStore) ByID(id string) (models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

// ByCategory returns every product in a category slug.
func (s *ProductStore) ByCategory(category string) []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Product
	for _, p := range s.products {
		if strings.EqualFold(p.Category, category) {
			out = append(out, p)
		}
	}
	return out
}

// All returns a copy of the full catalog.
func (s *ProductStore) All() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Product(nil), s.products...)
}

// CountByCategory derives per-category product counts for the category
// store.
func (s *ProductStore) CountByCategory() map[string]int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	counts := make(map[string]int)
	for _, p := range s.products {
		counts[p.Category]++
	}
	return counts
}

// ProductInput is the admin create payload. Name, description, price and
// category are required (validated at the boundary).
type ProductInput struct {
	Name          string
	Description   string
	Price         int
	OriginalPrice int
	Category      string
	CategoryName  string
	Images        []string
	Colors        []string
	Sizes         []string
	Material      string
	Occasion      []string
	Tags          []string
}

// Create appends a new catalog product with generated id and defaults.
func (s *ProductStore) Create(in ProductInput) models.Product {
	now := time.Now()
	p := models.Product{
		ID:            uuid.NewString(),
		Name:          in.Name,
		Description:   in.Description,
		Price:         in.Price,
		OriginalPrice: in.OriginalPrice,
		Category:      in.Category,
		CategoryName:  in.CategoryName,
		Images:        in.Images,
		Colors:        in.Colors,
		Sizes:         in.Sizes,
		Material:      in.Material,
		Occasion:      in.Occasion,
		InStock:       true,
		Featured:      false,
		Tags:          in.Tags,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if p.OriginalPrice == 0 {
		p.OriginalPrice = p.Price
	}
	if p.CategoryName == "" {
		p.CategoryName = p.Category
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = append(s.products, p)
	return p
}

// ProductUpdate is a partial admin update; nil fields are left untouched.
// The id never changes.
type ProductUpdate struct {
	Name          *string
	Description   *string
	Price         *int
	OriginalPrice *int
	Category      *string
	CategoryName  *string
	Images        []string
	Colors        []string
	Sizes         []string
	Material      *string
	Occasion      []string
	InStock       *bool
	Featured      *bool
	Tags          []string
}

func (s *ProductStore) Update(id string, u ProductUpdate) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID != id {
			continue
		}
		p := &s.products[i]
		if u.Name != nil {
			p.Name = *u.Name
		}
		if u.Description != nil {
			p.Description = *u.Description
		}
		if u.Price != nil {
			p.Price = *u.Price
		}
		if u.OriginalPrice != nil {
			p.OriginalPrice = *u.OriginalPrice
		}
		if u.Category != nil {
			p.Category = *u.Category
		}
		if u.CategoryName != nil {
			p.CategoryName = *u.CategoryName
		}
		if u.Images != nil {
			p.Images = u.Images
		}
		if u.Colors != nil {
			p.Colors = u.Colors
		}
		if u.Sizes != nil {
			p.Sizes = u.Sizes
		}
		if u.Material != nil {
			p.Material = *u.Material
		}
		if u.Occasion != nil {
			p.Occasion = u.Occasion
		}
		if u.InStock != nil {
			p.InStock = *u.InStock
		}
		if u.Featured != nil {
			p.Featured = *u.Featured
		}
		if u.Tags != nil {
			p.Tags = u.Tags
		}
		p.UpdatedAt = time.Now()
		return *p, nil
	}
	return models.Product{}, ErrProductNotFound
}

func (s *ProductStore) Delete(id string) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == id {
			deleted := s.products[i]
			s.products = append(s.products[:i], s.products[i+1:]...)
			return deleted, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

func matchesSearch(p models.Product, term string) bool {
	term = strings.ToLower(term)
	if strings.Contains(strings.ToLower(p.Name), term) ||
		strings.Contains(strings.ToLower(p.Description), term) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}

func sortProducts(products []models.Product, sortBy string) {
	switch sortBy {
	case "price_low":
		sort.SliceStable(products, func(i, j int) bool { return products[i].Price < products[j].Price })
	case "price_high":
		sort.SliceStable(products, func(i, j int) bool { return products[i].Price > products[j].Price })
	case "rating":
		sort.SliceStable(products, func(i, j int) bool { return products[i].Rating > products[j].Rating })
	case "newest":
		sort.SliceStable(products, func(i, j int) bool { return products[i].CreatedAt.After(products[j].CreatedAt) })
	case "name":
		sort.SliceStable(products, func(i, j int) bool { return products[i].Name < products[j].Name })
	default:
		// featured first, then newest
		sort.SliceStable(products, func(i, j int) bool {
			if products[i].Featured != products[j].Featured {
				return products[i].Featured
			}
			return products[i].CreatedAt.After(products[j].CreatedAt)
		})
	}
}
