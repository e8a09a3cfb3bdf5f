package imovel

import (
	"context"

	domain "github.com/apacheimob/imobiliaria-api/internal/domain/imovel"
	"github.com/apacheimob/imobiliaria-api/internal/dto"
)

type ListImoveis struct {
	repo domain.Repository
}

func NewListImoveis(repo domain.Repository) *ListImoveis {
	return &ListImoveis{repo: repo}
}

func (uc *ListImoveis) Execute(
	ctx context.Context,
) ([]dto.ImovelListDTO, error) {

	imoveis, err := uc.repo.ListImoveis(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]dto.ImovelListDTO, 0, len(imoveis))
	for _, im := range imoveis {
		item := dto.ImovelListDTO{
			ID:     im.ID,
			Titulo: im.Titulo,
		}

		if im.ValorVenda != nil {
			item.ValorVenda = *im.ValorVenda
		}
		if im.Proprietario != nil {
			nome := im.Proprietario.Nome
			item.Proprietario = &nome
		}

		out = append(out, item)
	}

	return out, nil
}
