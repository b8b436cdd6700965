package usecase

import (
	"context"
	"fmt"

	"github.com/puIad/nlp-project/internal/core/domain"
	"github.com/puIad/nlp-project/internal/core/ports"
)

// ReadCVUseCase is the thin read model behind GET /v1/cvs/{id}.
type ReadCVUseCase struct {
	repo ports.CVRepository
}

func NewReadCVUseCase(repo ports.CVRepository) *ReadCVUseCase {
	return &ReadCVUseCase{repo: repo}
}

func (uc *ReadCVUseCase) GetByID(ctx context.Context, id string) (*domain.CV, error) {
	cv, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetch cv by id: %w", err)
	}
	return cv, nil
}
