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

type UpdateImovelInput struct {
	Titulo     *string
	ValorVenda *float64
}

type UpdateImovel struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateImovel(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateImovel {
	return &UpdateImovel{
		repo:  repo,
		audit: audit,
	}
}

// Execute aplica só os campos presentes no payload; payload vazio é um
// no-op bem-sucedido.
func (uc *UpdateImovel) Execute(
	ctx context.Context,
	id uint,
	in UpdateImovelInput,
) (*models.Imovel, error) {

	im, err := uc.repo.GetImovelByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("imovel_not_found")
		}
		return nil, err
	}

	if in.Titulo != nil {
		im.Titulo = *in.Titulo
	}
	if in.ValorVenda != nil {
		im.ValorVenda = in.ValorVenda
	}

	if err := uc.repo.UpdateImovel(ctx, im); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "imovel_atualizado",
		Entity:   "imovel",
		EntityID: &im.ID,
	})

	return im, nil
}
