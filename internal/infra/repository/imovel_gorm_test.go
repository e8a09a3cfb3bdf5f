package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	domain "github.com/apacheimob/imobiliaria-api/internal/domain/imovel"
	"github.com/apacheimob/imobiliaria-api/internal/models"
)

func seedImovelFixture(t *testing.T, gdb *gorm.DB) *models.Imovel {
	require.NoError(t, gdb.Create(&models.TipoImovel{ID: 1, Descricao: "Apartamento"}).Error)
	require.NoError(t, gdb.Create(&models.StatusImovel{ID: 1, Descricao: domain.StatusDisponivel}).Error)
	require.NoError(t, gdb.Create(&models.TipoPessoa{ID: 1, Descricao: "proprietario"}).Error)
	require.NoError(t, gdb.Create(&models.Pessoa{ID: 1, Nome: "João Silva", CpfCnpj: "111", IDTipoPessoa: 1}).Error)
	require.NoError(t, gdb.Create(&models.Endereco{ID: 1, Logradouro: "Rua A", Cidade: "Belém", Estado: "PA"}).Error)

	venda := 350000.0
	im := models.Imovel{
		Titulo:         "Apto centro",
		Descricao:      "Apto 2 quartos",
		IDTipoImovel:   1,
		IDStatusImovel: 1,
		ValorVenda:     &venda,
		AreaM2:         75,
		Quartos:        2,
		Banheiros:      1,
		VagasGaragem:   1,
		DataCadastro:   time.Now(),
		IDProprietario: 1,
		IDEndereco:     1,
	}
	require.NoError(t, gdb.Create(&im).Error)
	return &im
}

func TestListImoveisCarregaProprietario(t *testing.T) {
	gdb := setupTestDB(t)
	seedImovelFixture(t, gdb)

	repo := NewImovelGormRepository(gdb)

	imoveis, err := repo.ListImoveis(context.Background())
	require.NoError(t, err)

	require.Len(t, imoveis, 1)
	require.NotNil(t, imoveis[0].Proprietario)
	assert.Equal(t, "João Silva", imoveis[0].Proprietario.Nome)
}

func TestGetImovelByIDNotFound(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewImovelGormRepository(gdb)

	_, err := repo.GetImovelByID(context.Background(), 42)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestGetOrCreateStatusImovelReusaLinha(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewImovelGormRepository(gdb)
	ctx := context.Background()

	first, err := repo.GetOrCreateStatusImovel(ctx, domain.StatusArquivado)
	require.NoError(t, err)

	second, err := repo.GetOrCreateStatusImovel(ctx, domain.StatusArquivado)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, gdb.Model(&models.StatusImovel{}).
		Where("descricao = ?", domain.StatusArquivado).
		Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestArchiveImovelIdempotente(t *testing.T) {
	gdb := setupTestDB(t)
	im := seedImovelFixture(t, gdb)

	repo := NewImovelGormRepository(gdb)
	ctx := context.Background()

	status1, err := repo.ArchiveImovel(ctx, im)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusArquivado, status1.Descricao)

	reloaded, err := repo.GetImovelByID(ctx, im.ID)
	require.NoError(t, err)
	assert.Equal(t, status1.ID, reloaded.IDStatusImovel)

	status2, err := repo.ArchiveImovel(ctx, reloaded)
	require.NoError(t, err)
	assert.Equal(t, status1.ID, status2.ID)

	var count int64
	require.NoError(t, gdb.Model(&models.StatusImovel{}).
		Where("descricao = ?", domain.StatusArquivado).
		Count(&count).Error)
	assert.Equal(t, int64(1), count, "arquivar duas vezes não pode duplicar o status")
}

func TestUpdateImovelPersisteCampos(t *testing.T) {
	gdb := setupTestDB(t)
	im := seedImovelFixture(t, gdb)

	repo := NewImovelGormRepository(gdb)
	ctx := context.Background()

	im.Titulo = "Apto reformado"
	novoValor := 380000.0
	im.ValorVenda = &novoValor
	require.NoError(t, repo.UpdateImovel(ctx, im))

	reloaded, err := repo.GetImovelByID(ctx, im.ID)
	require.NoError(t, err)
	assert.Equal(t, "Apto reformado", reloaded.Titulo)
	require.NotNil(t, reloaded.ValorVenda)
	assert.InDelta(t, 380000.0, *reloaded.ValorVenda, 0.001)
}
