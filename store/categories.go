package store

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/pankajarora1984/chandan-sarees-api/models"
)

// CategoryStore is the in-memory category list. Product counts are
// derived from the catalog on every read so they stay consistent with
// admin product changes.
type CategoryStore struct {
	mu         sync.RWMutex
	categories []models.Category
	products   *ProductStore
}

func NewCategoryStore(products *ProductStore) *CategoryStore {
	return &CategoryStore{products: products}
}

func (s *CategoryStore) Seed(categories []models.Category) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories = append([]models.Category(nil), categories...)
}

// CategoryFilter narrows and orders the category listing.
type CategoryFilter struct {
	FeaturedOnly bool
	SortBy       string
}

func (s *CategoryStore) List(f CategoryFilter) []models.Category {
	counts := s.products.CountByCategory()

	s.mu.Lock()
	for i := range s.categories {
		s.categories[i].ProductCount = counts[s.categories[i].Slug]
	}
	filtered := make([]models.Category, 0, len(s.categories))
	for _, c := range s.categories {
		if f.FeaturedOnly && !c.Featured {
			continue
		}
		filtered = append(filtered, c)
	}
	s.mu.Unlock()

	switch f.SortBy {
	case "name":
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Name < filtered[j].Name })
	case "productCount":
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].ProductCount > filtered[j].ProductCount })
	default:
		// featured first, then by name
		sort.SliceStable(filtered, func(i, j int) bool {
			if filtered[i].Featured != filtered[j].Featured {
				return filtered[i].Featured
			}
			return filtered[i].Name < filtered[j].Name
		})
	}
	return filtered
}

func (s *CategoryStore) ByID(id string) (models.Category, error) {
	counts := s.products.CountByCategory()
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.categories {
		if c.ID == id {
			c.ProductCount = counts[c.Slug]
			return c, nil
		}
	}
	return models.Category{}, ErrCategoryNotFound
}

func (s *CategoryStore) BySlug(slug string) (models.Category, error) {
	counts := s.products.CountByCategory()
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.categories {
		if c.Slug == slug {
			c.ProductCount = counts[c.Slug]
			return c, nil
		}
	}
	return models.Category{}, ErrCategoryNotFound
}

// Create adds a category. The slug is derived from the name and must not
// collide with an existing one.
func (s *CategoryStore) Create(name, description, image string, featured bool, tags []string) (models.Category, error) {
	slug := Slugify(name)

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.categories {
		if c.Slug == slug {
			return models.Category{}, ErrSlugTaken
		}
	}

	now := time.Now()
	category := models.Category{
		ID:          strconv.Itoa(len(s.categories) + 1),
		Name:        name,
		Slug:        slug,
		Description: description,
		Image:       image,
		Featured:    featured,
		Tags:        tags,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.categories = append(s.categories, category)
	return category, nil
}

// CategoryUpdate is a partial update; renaming regenerates the slug and
// re-checks uniqueness.
type CategoryUpdate struct {
	Name        *string
	Description *string
	Image       *string
	Featured    *bool
	Tags        []string
}

func (s *CategoryStore) Update(id string, u CategoryUpdate) (models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.categories {
		if s.categories[i].ID != id {
			continue
		}
		c := &s.categories[i]
		if u.Name != nil && *u.Name != c.Name {
			slug := Slugify(*u.Name)
			for _, other := range s.categories {
				if other.Slug == slug && other.ID != id {
					return models.Category{}, ErrSlugTaken
				}
			}
			c.Name = *u.Name
			c.Slug = slug
		}
		if u.Description != nil {
			c.Description = *u.Description
		}
		if u.Image != nil {
			c.Image = *u.Image
		}
		if u.Featured != nil {
			c.Featured = *u.Featured
		}
		if u.Tags != nil {
			c.Tags = u.Tags
		}
		c.UpdatedAt = time.Now()
		return *c, nil
	}
	return models.Category{}, ErrCategoryNotFound
}

// Delete removes a category unless the catalog still has products in it.
func (s *CategoryStore) Delete(id string) (models.Category, error) {
	counts := s.products.CountByCategory()

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.categories {
		if s.categories[i].ID != id {
			continue
		}
		if counts[s.categories[i].Slug] > 0 {
			return models.Category{}, ErrCategoryHasProducts
		}
		deleted := s.categories[i]
		s.categories = append(s.categories[:i], s.categories[i+1:]...)
		return deleted, nil
	}
	return models.Category{}, ErrCategoryNotFound
}

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases a name and collapses non-alphanumeric runs into
// single hyphens.
func Slugify(name string) string {
	slug := slugPattern.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(slug, "-")
}
