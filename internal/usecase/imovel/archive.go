package imovel

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/apacheimob/imobiliaria-api/internal/audit"
	domain "github.com/apacheimob/imobiliaria-api/internal/domain/imovel"
	"github.com/apacheimob/imobiliaria-api/internal/httperr"
	"github.com/apacheimob/imobiliaria-api/internal/models"
)

type ArchiveImovel struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewArchiveImovel(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *ArchiveImovel {
	return &ArchiveImovel{
		repo:  repo,
		audit: audit,
	}
}

// Execute é idempotente: o status "Arquivado" é resolvido (ou criado) por
// descrição e repetir a chamada leva ao mesmo id.
func (uc *ArchiveImovel) Execute(
	ctx context.Context,
	id uint,
) (*models.Imovel, error) {

	im, err := uc.repo.GetImovelByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("imovel_not_found")
		}
		return nil, err
	}

	if _, err := uc.repo.ArchiveImovel(ctx, im); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "imovel_arquivado",
		Entity:   "imovel",
		EntityID: &im.ID,
	})

	return im, nil
}
