package imovel

import (
	"context"
	"time"

	"github.com/apacheimob/imobiliaria-api/internal/audit"
	domain "github.com/apacheimob/imobiliaria-api/internal/domain/imovel"
	"github.com/apacheimob/imobiliaria-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateImovelInput struct {
	Titulo         string
	Descricao      string
	ValorVenda     *float64
	IDProprietario uint
}

// Defaults aplicados quando o payload não informa os demais campos.
const (
	defaultAreaM2       = 100
	defaultQuartos      = 2
	defaultBanheiros    = 1
	defaultVagasGaragem = 1
	defaultIDEndereco   = 1
)

// ======================================================
// USE CASE
// ======================================================

type CreateImovel struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateImovel(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateImovel {
	return &CreateImovel{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateImovel) Execute(
	ctx context.Context,
	in CreateImovelInput,
) (*models.Imovel, error) {

	// Tipo e status default resolvidos por descrição: os ids das tabelas
	// de referência não são estáveis entre cargas.
	tipo, err := uc.repo.GetTipoImovelByDescricao(ctx, domain.TipoApartamento)
	if err != nil {
		return nil, err
	}

	status, err := uc.repo.GetOrCreateStatusImovel(ctx, domain.StatusDisponivel)
	if err != nil {
		return nil, err
	}

	im := &models.Imovel{
		Titulo:         in.Titulo,
		Descricao:      in.Descricao,
		ValorVenda:     in.ValorVenda,
		IDTipoImovel:   tipo.ID,
		IDStatusImovel: status.ID,
		AreaM2:         defaultAreaM2,
		Quartos:        defaultQuartos,
		Banheiros:      defaultBanheiros,
		VagasGaragem:   defaultVagasGaragem,
		DataCadastro:   time.Now(),
		IDProprietario: in.IDProprietario,
		IDEndereco:     defaultIDEndereco,
	}

	if err := uc.repo.CreateImovel(ctx, im); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "imovel_criado",
		Entity:   "imovel",
		EntityID: &im.ID,
	})

	return im, nil
}
