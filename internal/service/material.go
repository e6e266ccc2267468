package service

import (
	"context"
	"errors"

	"github.com/aliskhannn/tahsin-quran-bot/internal/domain/entities"
	"github.com/aliskhannn/tahsin-quran-bot/internal/repository"
)

// materialMatchThreshold is the minimum similarity for a fuzzy material lookup.
const materialMatchThreshold = 0.7

type MaterialService struct {
	repository ContentRepository
}

func NewMaterialService(repository ContentRepository) *MaterialService {
	return &MaterialService{repository: repository}
}

// List returns the materials in menu order.
func (s *MaterialService) List(_ context.Context) []*entities.Material {
	return s.repository.ListMaterials()
}

// Get returns the material with the given id.
func (s *MaterialService) Get(_ context.Context, id string) (*entities.Material, error) {
	return s.repository.GetMaterial(id)
}

// Find resolves user input to a material by exact id first, then by the
// closest id or title above the similarity threshold.
func (s *MaterialService) Find(ctx context.Context, input string) (*entities.Material, error) {
	query := normalize(input)
	if query == "" {
		return nil, repository.ErrMaterialNotFound
	}

	m, err := s.Get(ctx, query)
	if err == nil {
		return m, nil
	}
	if !errors.Is(err, repository.ErrMaterialNotFound) {
		return nil, err
	}

	var (
		best      *entities.Material
		bestScore float64
	)
	for _, m := range s.repository.ListMaterials() {
		score := max(similarity(query, normalize(m.ID)), similarity(query, normalize(m.Title)))
		if score > bestScore {
			best, bestScore = m, score
		}
	}

	if best == nil || bestScore < materialMatchThreshold {
		return nil, repository.ErrMaterialNotFound
	}
	return best, nil
}
