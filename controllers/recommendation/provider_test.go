package recommendationControllers

import (
	"context"
	"fmt"
	"testing"

	"github.com/pankajarora1984/chandan-sarees-api/models"
	"github.com/pankajarora1984/chandan-sarees-api/store"
)

type failingProvider struct{}

func (p *failingProvider) Name() string { return "openai" }

func (p *failingProvider) Suggest(ctx context.Context, req SuggestionRequest) ([]models.Recommendation, error) {
	return nil, fmt.Errorf("api key not configured")
}

func catalogFixture() []models.Product {
	return store.SeedProducts()
}

func TestLocalProviderFiltersByPriceRange(t *testing.T) {
	local := &localProvider{}

	recs, err := local.Suggest(context.Background(), SuggestionRequest{
		Preferences: models.Preferences{PriceRange: "premium"},
		Context:     "general",
		Catalog:     catalogFixture(),
	})
	if err != nil {
		t.Fatalf("Suggest returned error: %v", err)
	}
	if len(recs) == 0 {
		t.Fatal("no recommendations for premium preference")
	}
	for _, rec := range recs {
		if rec.Product.Price < 15000 {
			t.Errorf("%s (₹%d) below premium band", rec.Product.Name, rec.Product.Price)
		}
		if rec.Score < 0.6 || rec.Score > 1 {
			t.Errorf("score %.2f out of range", rec.Score)
		}
		if rec.Reason == "" {
			t.Errorf("%s has no reason", rec.Product.Name)
		}
	}
}

func TestLocalProviderOccasionFilter(t *testing.T) {
	local := &localProvider{}

	recs, err := local.Suggest(context.Background(), SuggestionRequest{
		Preferences: models.Preferences{Occasion: "wedding"},
		Context:     "general",
		Catalog:     catalogFixture(),
	})
	if err != nil {
		t.Fatal(err)
	}
	for _, rec := range recs {
		traits := productCategories[rec.Product.Category]
		if !containsString(traits.Occasions, "wedding") {
			t.Errorf("%s (%s) not suited for wedding", rec.Product.Name, rec.Product.Category)
		}
	}
}

func TestLocalProviderSimilarProducts(t *testing.T) {
	local := &localProvider{}
	catalog := catalogFixture()
	current := catalog[0] // Banarasi Silk Saree

	recs, err := local.Suggest(context.Background(), SuggestionRequest{
		CurrentProduct: &current,
		Context:        "product-view",
		Catalog:        catalog,
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) == 0 {
		t.Fatal("no similar products found")
	}
	for _, rec := range recs {
		if rec.Product.ID == current.ID {
			t.Error("current product recommended to itself")
		}
		if rec.Explanation != "Similar to Banarasi Silk Saree" {
			t.Errorf("explanation = %q", rec.Explanation)
		}
	}
}

func TestLocalProviderRanksByPopularity(t *testing.T) {
	local := &localProvider{}

	recs, err := local.Suggest(context.Background(), SuggestionRequest{
		Context: "general",
		Catalog: catalogFixture(),
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 6 {
		t.Fatalf("got %d recommendations, want 6", len(recs))
	}
	for i := 1; i < len(recs); i++ {
		if popularityScore(recs[i].Product) > popularityScore(recs[i-1].Product) {
			t.Fatalf("ranking not descending at index %d", i)
		}
	}
	if recs[0].Score != 1.0 {
		t.Errorf("top score = %.2f, want 1.0", recs[0].Score)
	}
}

func TestFallbackProviderSubstitutesLocal(t *testing.T) {
	p := &fallbackProvider{primary: &failingProvider{}, fallback: &localProvider{}}

	recs, err := p.Suggest(context.Background(), SuggestionRequest{
		Context: "general",
		Catalog: catalogFixture(),
	})
	if err != nil {
		t.Fatalf("fallback should swallow primary error, got %v", err)
	}
	if len(recs) == 0 {
		t.Fatal("fallback produced no recommendations")
	}
}

func TestParseModelResponse(t *testing.T) {
	catalog := catalogFixture()

	text := "Here are my picks:\n" +
		`{"recommendations":[{"productId":"2","score":0.95,"reason":"Great for weddings"},{"productId":"999","score":0.9,"reason":"unknown"},{"productId":"4"}]}` +
		"\nHope that helps!"
	recs := parseModelResponse(text, catalog)

	if len(recs) != 2 {
		t.Fatalf("got %d recommendations, want 2 (unknown id dropped)", len(recs))
	}
	if recs[0].Product.ID != "2" || recs[0].Score != 0.95 || recs[0].Reason != "Great for weddings" {
		t.Errorf("first rec = %+v", recs[0])
	}
	// Missing score and reason fall back to defaults.
	if recs[1].Score != 0.8 || recs[1].Reason != "AI recommended" {
		t.Errorf("defaults not applied: %+v", recs[1])
	}
}

func TestParseModelResponseGarbage(t *testing.T) {
	catalog := catalogFixture()

	recs := parseModelResponse("sorry, I cannot help with that", catalog)
	if len(recs) != 4 {
		t.Fatalf("got %d fallback recommendations, want 4", len(recs))
	}
	for i := 1; i < len(recs); i++ {
		if recs[i].Product.Rating > recs[i-1].Product.Rating {
			t.Fatalf("fallback not sorted by rating at index %d", i)
		}
	}
	if recs[0].Reason != "Highly rated product" {
		t.Errorf("reason = %q", recs[0].Reason)
	}
}
