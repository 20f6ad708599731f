package recommendationControllers

import (
	"context"
	"sort"
	"strings"

	"github.com/pankajarora1984/chandan-sarees-api/models"
)

// categoryTraits describes what each catalog category is suited for.
type categoryTraits struct {
	Occasions  []string
	PriceRange string
}

var productCategories = map[string]categoryTraits{
	"silk-sarees":   {Occasions: []string{"wedding", "festival", "formal"}, PriceRange: "premium"},
	"cotton-sarees": {Occasions: []string{"daily", "casual", "office"}, PriceRange: "budget-friendly"},
	"lehengas":      {Occasions: []string{"wedding", "festival", "party"}, PriceRange: "premium"},
	"salwar-suits":  {Occasions: []string{"office", "casual", "festival"}, PriceRange: "moderate"},
}

// localProvider is the rule-based scorer. It filters the catalog by the
// user's preferences and ranks by rating weighted with review count.
type localProvider struct{}

func (p *localProvider) Name() string { return "local" }

func (p *localProvider) Suggest(_ context.Context, req SuggestionRequest) ([]models.Recommendation, error) {
	candidates := req.Catalog
	explanation := "Based on your preferences and popular choices"

	if req.Context == "product-view" && req.CurrentProduct != nil {
		var similar []models.Product
		for _, product := range req.Catalog {
			if product.ID == req.CurrentProduct.ID {
				continue
			}
			if product.Category == req.CurrentProduct.Category || sharesMaterial(product.Material, req.CurrentProduct.Material) {
				similar = append(similar, product)
			}
		}
		candidates = similar
		explanation = "Similar to " + req.CurrentProduct.Name
	}

	prefs := req.Preferences
	if prefs.Occasion != "" {
		candidates = filterProducts(candidates, func(product models.Product) bool {
			traits, ok := productCategories[product.Category]
			return ok && containsString(traits.Occasions, prefs.Occasion)
		})
	}
	if prefs.PriceRange != "" {
		candidates = filterProducts(candidates, func(product models.Product) bool {
			switch prefs.PriceRange {
			case "budget":
				return product.Price < 5000
			case "moderate":
				return product.Price >= 5000 && product.Price < 15000
			case "premium":
				return product.Price >= 15000
			default:
				return true
			}
		})
	}
	if prefs.Material != "" {
		candidates = filterProducts(candidates, func(product models.Product) bool {
			return strings.Contains(strings.ToLower(product.Material), strings.ToLower(prefs.Material))
		})
	}

	sorted := append([]models.Product(nil), candidates...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return popularityScore(sorted[i]) > popularityScore(sorted[j])
	})
	if len(sorted) > maxRecommendations {
		sorted = sorted[:maxRecommendations]
	}

	recs := make([]models.Recommendation, 0, len(sorted))
	for i, product := range sorted {
		score := 1 - float64(i)*0.1
		if score < 0.6 {
			score = 0.6
		}
		recs = append(recs, models.Recommendation{
			Product:     product,
			Score:       score,
			Reason:      recommendationReason(product, prefs, req.Context),
			Explanation: explanation,
		})
	}
	return recs, nil
}

// popularityScore weighs rating heavier than review volume. Unrated
// products count as a middling 3.
func popularityScore(p models.Product) float64 {
	rating := p.Rating
	if rating == 0 {
		rating = 3
	}
	return rating*0.7 + float64(p.Reviews)*0.3
}

func recommendationReason(product models.Product, prefs models.Preferences, context string) string {
	var reasons []string

	if prefs.Occasion != "" {
		if traits, ok := productCategories[product.Category]; ok && containsString(traits.Occasions, prefs.Occasion) {
			reasons = append(reasons, "perfect for "+prefs.Occasion)
		}
	}
	if prefs.Material != "" && strings.Contains(strings.ToLower(product.Material), strings.ToLower(prefs.Material)) {
		reasons = append(reasons, "matches your "+prefs.Material+" preference")
	}
	if product.Rating >= 4 {
		reasons = append(reasons, "highly rated by customers")
	}
	if context == "product-view" {
		reasons = append(reasons, "similar style and quality")
	}

	if len(reasons) == 0 {
		return "great quality and design"
	}
	return strings.Join(reasons, ", ")
}

// materialFiller lists the words in a material description that do not
// name a fabric.
var materialFiller = map[string]bool{"pure": true, "with": true, "and": true, "lining": true, "dupatta": true}

// sharesMaterial reports whether two material descriptions name a common
// fabric: "Pure Silk" and "Silk with Net Dupatta" both name silk.
func sharesMaterial(a, b string) bool {
	fabrics := make(map[string]bool)
	for _, word := range strings.Fields(strings.ToLower(a)) {
		if !materialFiller[word] {
			fabrics[word] = true
		}
	}
	for _, word := range strings.Fields(strings.ToLower(b)) {
		if fabrics[word] {
			return true
		}
	}
	return false
}

func filterProducts(products []models.Product, keep func(models.Product) bool) []models.Product {
	var out []models.Product
	for _, p := range products {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

func containsString(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
