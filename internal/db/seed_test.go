package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/apacheimob/imobiliaria-api/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, Migrate(gdb))
	return gdb
}

func tableCounts(t *testing.T, gdb *gorm.DB) map[string]int64 {
	counts := map[string]int64{}
	for name, model := range map[string]any{
		"tipo_pessoa":        &models.TipoPessoa{},
		"pessoa":             &models.Pessoa{},
		"endereco":           &models.Endereco{},
		"tipo_imovel":        &models.TipoImovel{},
		"status_imovel":      &models.StatusImovel{},
		"caracteristica":     &models.Caracteristica{},
		"tipo_contrato":      &models.TipoContrato{},
		"status_contrato":    &models.StatusContrato{},
		"imovel":             &models.Imovel{},
		"contrato":           &models.Contrato{},
		"metodo_pagamento":   &models.MetodoPagamento{},
		"status_pagamento":   &models.StatusPagamento{},
		"status_agendamento": &models.StatusAgendamento{},
	} {
		var count int64
		require.NoError(t, gdb.Model(model).Count(&count).Error)
		counts[name] = count
	}
	return counts
}

func TestSeedIsIdempotent(t *testing.T) {
	gdb := setupTestDB(t)

	Seed(gdb)
	first := tableCounts(t, gdb)

	assert.Equal(t, int64(3), first["tipo_pessoa"])
	assert.Equal(t, int64(5), first["pessoa"])
	assert.Equal(t, int64(4), first["imovel"])
	assert.Equal(t, int64(3), first["contrato"])
	assert.Equal(t, int64(2), first["tipo_contrato"])

	Seed(gdb)
	second := tableCounts(t, gdb)

	assert.Equal(t, first, second)
}

func TestSeedPreservesExistingRows(t *testing.T) {
	gdb := setupTestDB(t)

	require.NoError(t, gdb.Create(&models.TipoPessoa{ID: 99, Descricao: "fiador"}).Error)

	Seed(gdb)

	var count int64
	require.NoError(t, gdb.Model(&models.TipoPessoa{}).Count(&count).Error)
	assert.Equal(t, int64(1), count, "tabela não vazia não deve ser semeada")
}

func TestPessoaCpfCnpjIsUnique(t *testing.T) {
	gdb := setupTestDB(t)
	Seed(gdb)

	dup := models.Pessoa{
		Nome:         "João Homônimo",
		CpfCnpj:      "11122233344",
		Email:        "outro@example.com",
		IDTipoPessoa: 1,
	}

	err := gdb.Create(&dup).Error
	assert.Error(t, err)

	var count int64
	require.NoError(t, gdb.Model(&models.Pessoa{}).Count(&count).Error)
	assert.Equal(t, int64(5), count)
}
