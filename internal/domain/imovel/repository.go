package imovel

import (
	"context"

	"github.com/apacheimob/imobiliaria-api/internal/models"
)

type Repository interface {
	// -------- Leitura --------
	ListImoveis(
		ctx context.Context,
	) ([]models.Imovel, error)

	GetImovelByID(
		ctx context.Context,
		id uint,
	) (*models.Imovel, error)

	// -------- Referência --------
	GetTipoImovelByDescricao(
		ctx context.Context,
		descricao string,
	) (*models.TipoImovel, error)

	GetOrCreateStatusImovel(
		ctx context.Context,
		descricao string,
	) (*models.StatusImovel, error)

	// -------- Mutação (uma transação por operação) --------
	CreateImovel(
		ctx context.Context,
		im *models.Imovel,
	) error

	UpdateImovel(
		ctx context.Context,
		im *models.Imovel,
	) error

	ArchiveImovel(
		ctx context.Context,
		im *models.Imovel,
	) (*models.StatusImovel, error)
}
