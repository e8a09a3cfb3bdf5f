package relatorio

import (
	"context"

	domain "github.com/apacheimob/imobiliaria-api/internal/domain/relatorio"
	"github.com/apacheimob/imobiliaria-api/internal/dto"
)

const topCorretoresLimit = 5

type TopCorretoresVendas struct {
	repo domain.Repository
}

func NewTopCorretoresVendas(repo domain.Repository) *TopCorretoresVendas {
	return &TopCorretoresVendas{repo: repo}
}

func (uc *TopCorretoresVendas) Execute(
	ctx context.Context,
) ([]dto.TopCorretorDTO, error) {
	return uc.repo.TopCorretoresVendas(ctx, topCorretoresLimit)
}
