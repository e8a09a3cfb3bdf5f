package relatorio

import (
	"context"

	"github.com/apacheimob/imobiliaria-api/internal/dto"
)

type Repository interface {
	// Média de venda por corretor, só contratos "Venda", ordem decrescente
	// pela média. Corretor sem contrato de venda não aparece.
	MediaVendasPorCorretor(
		ctx context.Context,
	) ([]dto.MediaVendaCorretorDTO, error)

	// Top corretores por total vendido, mesmo filtro, no máximo limit linhas.
	TopCorretoresVendas(
		ctx context.Context,
		limit int,
	) ([]dto.TopCorretorDTO, error)
}
