package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	dbpkg "github.com/apacheimob/imobiliaria-api/internal/db"
	"github.com/apacheimob/imobiliaria-api/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, dbpkg.Migrate(gdb))
	return gdb
}

// Tipos de contrato e pessoas mínimos para os relatórios.
func seedVendaFixture(t *testing.T, gdb *gorm.DB, corretores ...models.Pessoa) {
	require.NoError(t, gdb.Create(&[]models.TipoContrato{
		{ID: 1, Descricao: "Venda"},
		{ID: 2, Descricao: "Locação"},
	}).Error)
	require.NoError(t, gdb.Create(&models.TipoPessoa{ID: 2, Descricao: "corretor"}).Error)

	for i := range corretores {
		corretores[i].IDTipoPessoa = 2
		require.NoError(t, gdb.Create(&corretores[i]).Error)
	}
}

func contrato(gdb *gorm.DB, t *testing.T, tipoID, corretorID uint, valor float64) {
	t.Helper()
	require.NoError(t, gdb.Create(&models.Contrato{
		IDTipoContrato:   tipoID,
		IDStatusContrato: 1,
		IDCorretor:       corretorID,
		Valor:            valor,
	}).Error)
}
