package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/apacheimob/imobiliaria-api/internal/domain/imovel"
	"github.com/apacheimob/imobiliaria-api/internal/models"
)

type ImovelGormRepository struct {
	db *gorm.DB
}

func NewImovelGormRepository(db *gorm.DB) *ImovelGormRepository {
	return &ImovelGormRepository{db: db}
}

// --------------------------------------------------
// Leitura
// --------------------------------------------------

func (r *ImovelGormRepository) ListImoveis(
	ctx context.Context,
) ([]models.Imovel, error) {

	var imoveis []models.Imovel
	if err := r.db.WithContext(ctx).
		Preload("Proprietario").
		Order("id_imovel ASC").
		Find(&imoveis).Error; err != nil {
		return nil, err
	}

	return imoveis, nil
}

func (r *ImovelGormRepository) GetImovelByID(
	ctx context.Context,
	id uint,
) (*models.Imovel, error) {

	var im models.Imovel
	if err := r.db.WithContext(ctx).First(&im, id).Error; err != nil {
		return nil, err
	}
	return &im, nil
}

// --------------------------------------------------
// Referência
// --------------------------------------------------

func (r *ImovelGormRepository) GetTipoImovelByDescricao(
	ctx context.Context,
	descricao string,
) (*models.TipoImovel, error) {

	var tipo models.TipoImovel
	if err := r.db.WithContext(ctx).
		Where("descricao = ?", descricao).
		First(&tipo).Error; err != nil {
		return nil, err
	}
	return &tipo, nil
}

func (r *ImovelGormRepository) GetOrCreateStatusImovel(
	ctx context.Context,
	descricao string,
) (*models.StatusImovel, error) {

	var status models.StatusImovel
	if err := r.db.WithContext(ctx).
		Where("descricao = ?", descricao).
		FirstOrCreate(&status, models.StatusImovel{Descricao: descricao}).
		Error; err != nil {
		return nil, err
	}
	return &status, nil
}

// --------------------------------------------------
// Mutação: cada operação roda em uma transação própria
// --------------------------------------------------

func (r *ImovelGormRepository) CreateImovel(
	ctx context.Context,
	im *models.Imovel,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(im).Error
	})
}

func (r *ImovelGormRepository) UpdateImovel(
	ctx context.Context,
	im *models.Imovel,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Save(im).Error
	})
}

// ArchiveImovel resolve (ou cria) a linha de status "Arquivado" e aponta o
// imóvel para ela, tudo na mesma transação. Arquivar duas vezes converge para
// a mesma linha: nunca nasce um segundo "Arquivado".
func (r *ImovelGormRepository) ArchiveImovel(
	ctx context.Context,
	im *models.Imovel,
) (*models.StatusImovel, error) {

	var status models.StatusImovel

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("descricao = ?", domain.StatusArquivado).
			FirstOrCreate(&status, models.StatusImovel{Descricao: domain.StatusArquivado}).
			Error; err != nil {
			return err
		}

		im.IDStatusImovel = status.ID
		return tx.Model(&models.Imovel{}).
			Where("id_imovel = ?", im.ID).
			Update("id_status_imovel", status.ID).Error
	})
	if err != nil {
		return nil, err
	}

	return &status, nil
}

// Compile-time check
var _ domain.Repository = (*ImovelGormRepository)(nil)
