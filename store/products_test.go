package store

import (
	"errors"
	"testing"
)

func seededProducts(t *testing.T) *ProductStore {
	t.Helper()
	s := NewProductStore()
	s.Seed(SeedProducts())
	return s
}

func TestListFilterByCategory(t *testing.T) {
	s := seededProducts(t)

	list, pagination := s.List(ProductFilter{Category: "silk-sarees"})
	if len(list) != 1 {
		t.Fatalf("got %d products, want 1", len(list))
	}
	if list[0].Name != "Banarasi Silk Saree" {
		t.Errorf("product = %q", list[0].Name)
	}
	if pagination.TotalItems != 1 {
		t.Errorf("TotalItems = %d", pagination.TotalItems)
	}
}

func TestListPriceBand(t *testing.T) {
	s := seededProducts(t)

	list, _ := s.List(ProductFilter{MinPrice: 5000, MaxPrice: 10000})
	for _, p := range list {
		if p.Price < 5000 || p.Price > 10000 {
			t.Errorf("%s price %d outside band", p.Name, p.Price)
		}
	}
	if len(list) != 2 { // Anarkali Suit 8999, Georgette Saree 7999
		t.Errorf("got %d products in band, want 2", len(list))
	}
}

func TestListSearchMatchesNameAndTags(t *testing.T) {
	s := seededProducts(t)

	byName, _ := s.List(ProductFilter{Search: "banarasi"})
	if len(byName) != 1 {
		t.Errorf("search by name returned %d products", len(byName))
	}

	byTag, _ := s.List(ProductFilter{Search: "wedding"})
	if len(byTag) == 0 {
		t.Error("search by tag returned nothing")
	}
}

func TestListSortPriceLow(t *testing.T) {
	s := seededProducts(t)

	list, _ := s.List(ProductFilter{SortBy: "price_low"})
	for i := 1; i < len(list); i++ {
		if list[i].Price < list[i-1].Price {
			t.Fatalf("list not sorted ascending at index %d", i)
		}
	}
}

func TestListPagination(t *testing.T) {
	s := seededProducts(t)

	first, pagination := s.List(ProductFilter{Page: 1, Limit: 4})
	if len(first) != 4 {
		t.Fatalf("page 1 has %d items, want 4", len(first))
	}
	if pagination.TotalPages != 2 || !pagination.HasNext || pagination.HasPrev {
		t.Errorf("page 1 pagination = %+v", pagination)
	}

	second, pagination := s.List(ProductFilter{Page: 2, Limit: 4})
	if len(second) != 2 {
		t.Errorf("page 2 has %d items, want 2", len(second))
	}
	if pagination.HasNext || !pagination.HasPrev {
		t.Errorf("page 2 pagination = %+v", pagination)
	}

	// Out-of-range pages return an empty slice, not an error.
	empty, _ := s.List(ProductFilter{Page: 9, Limit: 4})
	if len(empty) != 0 {
		t.Errorf("page 9 has %d items", len(empty))
	}
}

func TestCreateProductDefaults(t *testing.T) {
	s := seededProducts(t)

	p := s.Create(ProductInput{
		Name: "Patola Saree", Description: "Double ikat weave",
		Price: 18999, Category: "silk-sarees",
	})
	if p.ID == "" {
		t.Error("no id generated")
	}
	if !p.InStock {
		t.Error("new product should default to in stock")
	}
	if p.OriginalPrice != 18999 {
		t.Errorf("OriginalPrice = %d, want price fallback", p.OriginalPrice)
	}

	fetched, err := s.ByID(p.ID)
	if err != nil || fetched.Name != "Patola Saree" {
		t.Errorf("ByID after create: %v, %q", err, fetched.Name)
	}
}

func TestUpdateProductPartial(t *testing.T) {
	s := seededProducts(t)

	price := 14999
	featured := false
	updated, err := s.Update("1", ProductUpdate{Price: &price, Featured: &featured})
	if err != nil {
		t.Fatal(err)
	}
	if updated.Price != 14999 {
		t.Errorf("price = %d", updated.Price)
	}
	if updated.Featured {
		t.Error("featured flag not cleared")
	}
	// Untouched fields survive.
	if updated.Name != "Banarasi Silk Saree" || updated.OriginalPrice != 19999 {
		t.Errorf("unrelated fields changed: %+v", updated)
	}
}

func TestDeleteProduct(t *testing.T) {
	s := seededProducts(t)

	deleted, err := s.Delete("6")
	if err != nil {
		t.Fatal(err)
	}
	if deleted.Name != "Sharara Set" {
		t.Errorf("deleted %q", deleted.Name)
	}
	if _, err := s.ByID("6"); !errors.Is(err, ErrProductNotFound) {
		t.Errorf("product still present after delete")
	}
	if _, err := s.Delete("6"); !errors.Is(err, ErrProductNotFound) {
		t.Errorf("second delete should fail, got %v", err)
	}
}
