package usecase

import (
	"context"
	"log"
	"strings"

	"github.com/kundurahul/peace-trail-backend/internal/entity"
)

// RecommendUseCase turns a free-text travel plan into a reply plus concrete
// packages: the model picks tags from the closed vocabulary, the sheet
// resolves the tags to packages.
type RecommendUseCase struct {
	AI      RecommenderInterface
	Catalog PackageCatalog
}

func NewRecommendUseCase(ai RecommenderInterface, catalog PackageCatalog) *RecommendUseCase {
	return &RecommendUseCase{AI: ai, Catalog: catalog}
}

func (uc *RecommendUseCase) Execute(ctx context.Context, prompt string) (*RecommendationOutput, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, &DomainError{Code: "EMPTY_PROMPT", Message: "prompt is required"}
	}

	rec, err := uc.AI.Recommend(prompt)
	if err != nil {
		return nil, &TechnicalError{Code: "AI_ERROR", Message: err.Error()}
	}

	// Drop anything outside the vocabulary the prompt promised.
	tags := make([]string, 0, len(rec.Tags))
	for _, tag := range rec.Tags {
		if entity.IsKnownTag(tag) {
			tags = append(tags, tag)
		}
	}
	rec.Tags = tags

	var packages []entity.TravelPackage
	if len(tags) > 0 {
		packages, err = uc.Catalog.FilterPackagesByTags(tags)
		if err != nil {
			// The reply is still worth showing without the package list.
			log.Printf("tag filter failed, returning reply only: %v", err)
			packages = nil
		}
	}

	return &RecommendationOutput{
		Status:   "ok",
		Content:  rec,
		Packages: packages,
	}, nil
}
