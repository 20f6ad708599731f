package recommendationControllers

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"regexp"
	"sort"

	"github.com/pankajarora1984/chandan-sarees-api/models"
)

const maxRecommendations = 6

// SuggestionRequest is everything a provider needs to rank the catalog
// for one user.
type SuggestionRequest struct {
	UserID         string
	Preferences    models.Preferences
	CurrentProduct *models.Product
	Context        string // product-view | cart | checkout | general
	History        []models.Interaction
	Catalog        []models.Product
}

// Provider ranks catalog products against user preferences. One
// implementation per external text-generation backend plus a local
// rule-based one.
type Provider interface {
	Name() string
	Suggest(ctx context.Context, req SuggestionRequest) ([]models.Recommendation, error)
}

// NewProviderFromEnv selects the provider by AI_PROVIDER (openai, gemini,
// anthropic; anything else means local). Remote providers are wrapped so
// any failure degrades to local scoring instead of surfacing upstream.
func NewProviderFromEnv() Provider {
	local := &localProvider{}
	var remote Provider
	switch os.Getenv("AI_PROVIDER") {
	case "openai":
		remote = &openAIProvider{apiKey: os.Getenv("OPENAI_API_KEY")}
	case "gemini":
		remote = &geminiProvider{apiKey: os.Getenv("GEMINI_API_KEY")}
	case "anthropic":
		remote = &anthropicProvider{apiKey: os.Getenv("ANTHROPIC_API_KEY")}
	default:
		return local
	}
	return &fallbackProvider{primary: remote, fallback: local}
}

// fallbackProvider substitutes the local scorer whenever the primary
// provider errors, so callers always get a list.
type fallbackProvider struct {
	primary  Provider
	fallback Provider
}

func (p *fallbackProvider) Name() string { return p.primary.Name() }

func (p *fallbackProvider) Suggest(ctx context.Context, req SuggestionRequest) ([]models.Recommendation, error) {
	recs, err := p.primary.Suggest(ctx, req)
	if err == nil {
		return recs, nil
	}
	log.Printf("⚠️ %s provider failed, using local recommendations: %v", p.primary.Name(), err)
	return p.fallback.Suggest(ctx, req)
}

var jsonBlockPattern = regexp.MustCompile(`(?s)\{.*\}`)

type modelRecommendation struct {
	ProductID string  `json:"productId"`
	Score     float64 `json:"score"`
	Reason    string  `json:"reason"`
}

type modelResponse struct {
	Recommendations []modelRecommendation `json:"recommendations"`
}

// parseModelResponse extracts the recommendation JSON object from model
// output and maps product ids back onto the catalog. Unparseable output
// degrades to the top-rated products rather than an error.
func parseModelResponse(text string, catalog []models.Product) []models.Recommendation {
	if block := jsonBlockPattern.FindString(text); block != "" {
		var parsed modelResponse
		if err := json.Unmarshal([]byte(block), &parsed); err == nil && len(parsed.Recommendations) > 0 {
			byID := make(map[string]models.Product, len(catalog))
			for _, p := range catalog {
				byID[p.ID] = p
			}

			var recs []models.Recommendation
			for _, rec := range parsed.Recommendations {
				product, ok := byID[rec.ProductID]
				if !ok {
					continue
				}
				score := rec.Score
				if score == 0 {
					score = 0.8
				}
				reason := rec.Reason
				if reason == "" {
					reason = "AI recommended"
				}
				recs = append(recs, models.Recommendation{
					Product:     product,
					Score:       score,
					Reason:      reason,
					Explanation: "AI-powered recommendation based on your preferences",
				})
			}
			if len(recs) > 0 {
				return recs
			}
		}
	}

	log.Println("⚠️ Failed to parse model response, using top-rated fallback")
	return topRated(catalog, 4)
}

// topRated returns the n best-rated catalog products.
func topRated(catalog []models.Product, n int) []models.Recommendation {
	sorted := append([]models.Product(nil), catalog...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Rating > sorted[j].Rating })
	if len(sorted) > n {
		sorted = sorted[:n]
	}

	recs := make([]models.Recommendation, 0, len(sorted))
	for _, p := range sorted {
		recs = append(recs, models.Recommendation{
			Product:     p,
			Score:       0.7,
			Reason:      "Highly rated product",
			Explanation: "Popular choice among customers",
		})
	}
	return recs
}
