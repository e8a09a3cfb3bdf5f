package relatorio

import (
	"context"

	domain "github.com/apacheimob/imobiliaria-api/internal/domain/relatorio"
	"github.com/apacheimob/imobiliaria-api/internal/dto"
)

type MediaVendasPorCorretor struct {
	repo domain.Repository
}

func NewMediaVendasPorCorretor(repo domain.Repository) *MediaVendasPorCorretor {
	return &MediaVendasPorCorretor{repo: repo}
}

func (uc *MediaVendasPorCorretor) Execute(
	ctx context.Context,
) ([]dto.MediaVendaCorretorDTO, error) {
	return uc.repo.MediaVendasPorCorretor(ctx)
}
