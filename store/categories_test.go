package store

import (
	"errors"
	"testing"
)

func newCategoryFixture(t *testing.T) (*ProductStore, *CategoryStore) {
	t.Helper()
	products := NewProductStore()
	products.Seed(SeedProducts())
	categories := NewCategoryStore(products)
	categories.Seed(SeedCategories())
	return products, categories
}

func TestSlugify(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Silk Sarees", "silk-sarees"},
		{"Salwar  Suits!", "salwar-suits"},
		{"  Lehengas ", "lehengas"},
		{"Bridal & Wedding Wear", "bridal-wedding-wear"},
	}
	for _, tc := range cases {
		if got := Slugify(tc.in); got != tc.want {
			t.Errorf("Slugify(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCategoryProductCountDerived(t *testing.T) {
	products, categories := newCategoryFixture(t)

	c, err := categories.BySlug("silk-sarees")
	if err != nil {
		t.Fatal(err)
	}
	if c.ProductCount != 1 {
		t.Errorf("silk-sarees count = %d, want 1", c.ProductCount)
	}

	products.Create(ProductInput{
		Name: "Kanjivaram Saree", Description: "Temple border silk",
		Price: 21999, Category: "silk-sarees",
	})
	c, err = categories.BySlug("silk-sarees")
	if err != nil {
		t.Fatal(err)
	}
	if c.ProductCount != 2 {
		t.Errorf("count after catalog add = %d, want 2", c.ProductCount)
	}
}

func TestCreateCategoryDuplicateSlug(t *testing.T) {
	_, categories := newCategoryFixture(t)

	_, err := categories.Create("Silk Sarees", "dup", "", false, nil)
	if !errors.Is(err, ErrSlugTaken) {
		t.Fatalf("expected ErrSlugTaken, got %v", err)
	}
}

func TestUpdateCategoryRenameRegeneratesSlug(t *testing.T) {
	_, categories := newCategoryFixture(t)

	created, err := categories.Create("Dupattas", "Matching dupattas", "", false, nil)
	if err != nil {
		t.Fatal(err)
	}

	newName := "Designer Dupattas"
	updated, err := categories.Update(created.ID, CategoryUpdate{Name: &newName})
	if err != nil {
		t.Fatal(err)
	}
	if updated.Slug != "designer-dupattas" {
		t.Errorf("slug = %q, want designer-dupattas", updated.Slug)
	}

	// Renaming onto an existing slug is rejected.
	conflict := "Silk Sarees"
	if _, err := categories.Update(created.ID, CategoryUpdate{Name: &conflict}); !errors.Is(err, ErrSlugTaken) {
		t.Errorf("expected ErrSlugTaken on rename conflict, got %v", err)
	}
}

func TestDeleteCategoryWithProductsBlocked(t *testing.T) {
	_, categories := newCategoryFixture(t)

	silk, err := categories.BySlug("silk-sarees")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := categories.Delete(silk.ID); !errors.Is(err, ErrCategoryHasProducts) {
		t.Fatalf("expected ErrCategoryHasProducts, got %v", err)
	}
}

func TestDeleteEmptyCategory(t *testing.T) {
	_, categories := newCategoryFixture(t)

	created, err := categories.Create("Stoles", "Light stoles", "", false, nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := categories.Delete(created.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, err := categories.ByID(created.ID); !errors.Is(err, ErrCategoryNotFound) {
		t.Errorf("category still present after delete")
	}
}

func TestListCategoriesFeaturedFirst(t *testing.T) {
	_, categories := newCategoryFixture(t)

	list := categories.List(CategoryFilter{})
	if len(list) == 0 {
		t.Fatal("empty category list")
	}
	seenUnfeatured := false
	for _, c := range list {
		if !c.Featured {
			seenUnfeatured = true
		} else if seenUnfeatured {
			t.Fatalf("featured category %q after unfeatured ones", c.Name)
		}
	}

	featured := categories.List(CategoryFilter{FeaturedOnly: true})
	for _, c := range featured {
		if !c.Featured {
			t.Errorf("unfeatured category %q in featured-only list", c.Name)
		}
	}
}
