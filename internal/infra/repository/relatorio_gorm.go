package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/apacheimob/imobiliaria-api/internal/domain/relatorio"
	"github.com/apacheimob/imobiliaria-api/internal/dto"
)

type RelatorioGormRepository struct {
	db *gorm.DB
}

func NewRelatorioGormRepository(db *gorm.DB) *RelatorioGormRepository {
	return &RelatorioGormRepository{db: db}
}

// O filtro de tipo resolve "Venda" pela descrição, nunca por id fixo: os
// ids das tabelas de referência são atribuídos pelo banco.

func (r *RelatorioGormRepository) MediaVendasPorCorretor(
	ctx context.Context,
) ([]dto.MediaVendaCorretorDTO, error) {

	var rows []dto.MediaVendaCorretorDTO

	err := r.db.WithContext(ctx).
		Table("contrato").
		Select("pessoa.nome AS corretor, COALESCE(AVG(contrato.valor), 0) AS media_venda").
		Joins("JOIN pessoa ON pessoa.id_pessoa = contrato.id_corretor").
		Joins("JOIN tipo_contrato ON tipo_contrato.id_tipo_contrato = contrato.id_tipo_contrato").
		Where("tipo_contrato.descricao = ?", "Venda").
		Group("pessoa.nome").
		Order("media_venda DESC").
		Scan(&rows).Error

	if err != nil {
		return nil, err
	}

	return rows, nil
}

func (r *RelatorioGormRepository) TopCorretoresVendas(
	ctx context.Context,
	limit int,
) ([]dto.TopCorretorDTO, error) {

	var rows []dto.TopCorretorDTO

	err := r.db.WithContext(ctx).
		Table("contrato").
		Select(`pessoa.nome AS corretor,
			COUNT(contrato.id_contrato) AS qtd_contratos,
			COALESCE(SUM(contrato.valor), 0) AS total_vendido,
			COALESCE(AVG(contrato.valor), 0) AS media_venda`).
		Joins("JOIN pessoa ON pessoa.id_pessoa = contrato.id_corretor").
		Joins("JOIN tipo_contrato ON tipo_contrato.id_tipo_contrato = contrato.id_tipo_contrato").
		Where("tipo_contrato.descricao = ?", "Venda").
		Group("pessoa.nome").
		Order("total_vendido DESC").
		Limit(limit).
		Scan(&rows).Error

	if err != nil {
		return nil, err
	}

	return rows, nil
}

// Compile-time check
var _ domain.Repository = (*RelatorioGormRepository)(nil)
