package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apacheimob/imobiliaria-api/internal/models"
)

func TestMediaVendasPorCorretorSoContratosVenda(t *testing.T) {
	gdb := setupTestDB(t)
	ctx := context.Background()

	seedVendaFixture(t, gdb,
		models.Pessoa{ID: 1, Nome: "Ana", CpfCnpj: "100"},
		models.Pessoa{ID: 2, Nome: "Bruno", CpfCnpj: "200"},
	)

	contrato(gdb, t, 1, 1, 100) // Ana, Venda
	contrato(gdb, t, 1, 1, 300) // Ana, Venda
	contrato(gdb, t, 2, 2, 999999) // Bruno, Locação: fora do relatório

	repo := NewRelatorioGormRepository(gdb)

	rows, err := repo.MediaVendasPorCorretor(ctx)
	require.NoError(t, err)

	require.Len(t, rows, 1)
	assert.Equal(t, "Ana", rows[0].Corretor)
	assert.InDelta(t, 200.0, rows[0].MediaVenda, 0.001)
}

func TestMediaVendasPorCorretorOrdenaDecrescente(t *testing.T) {
	gdb := setupTestDB(t)
	ctx := context.Background()

	seedVendaFixture(t, gdb,
		models.Pessoa{ID: 1, Nome: "Ana", CpfCnpj: "100"},
		models.Pessoa{ID: 2, Nome: "Bruno", CpfCnpj: "200"},
	)

	contrato(gdb, t, 1, 1, 100)
	contrato(gdb, t, 1, 2, 500)

	repo := NewRelatorioGormRepository(gdb)

	rows, err := repo.MediaVendasPorCorretor(ctx)
	require.NoError(t, err)

	require.Len(t, rows, 2)
	assert.Equal(t, "Bruno", rows[0].Corretor)
	assert.Equal(t, "Ana", rows[1].Corretor)
}

func TestMediaVendasAgrupaPorNome(t *testing.T) {
	gdb := setupTestDB(t)
	ctx := context.Background()

	// Dois corretores homônimos viram uma linha só: comportamento
	// contratual do relatório, chaveado pelo nome.
	seedVendaFixture(t, gdb,
		models.Pessoa{ID: 1, Nome: "Ana", CpfCnpj: "100"},
		models.Pessoa{ID: 2, Nome: "Ana", CpfCnpj: "200"},
	)

	contrato(gdb, t, 1, 1, 100)
	contrato(gdb, t, 1, 2, 300)

	repo := NewRelatorioGormRepository(gdb)

	rows, err := repo.MediaVendasPorCorretor(ctx)
	require.NoError(t, err)

	require.Len(t, rows, 1)
	assert.InDelta(t, 200.0, rows[0].MediaVenda, 0.001)
}

func TestTopCorretoresVendasLimitaACinco(t *testing.T) {
	gdb := setupTestDB(t)
	ctx := context.Background()

	corretores := make([]models.Pessoa, 6)
	for i := range corretores {
		corretores[i] = models.Pessoa{
			ID:      uint(i + 1),
			Nome:    fmt.Sprintf("Corretor %d", i+1),
			CpfCnpj: fmt.Sprintf("%03d", i+1),
		}
	}
	seedVendaFixture(t, gdb, corretores...)

	for i := 1; i <= 6; i++ {
		contrato(gdb, t, 1, uint(i), float64(i*100))
		contrato(gdb, t, 1, uint(i), float64(i*300))
	}

	repo := NewRelatorioGormRepository(gdb)

	rows, err := repo.TopCorretoresVendas(ctx, 5)
	require.NoError(t, err)

	require.Len(t, rows, 5)

	for i, row := range rows {
		if i > 0 {
			assert.GreaterOrEqual(t, rows[i-1].TotalVendido, row.TotalVendido)
		}
		assert.Equal(t, 2, row.QtdContratos)
		assert.InDelta(t, row.TotalVendido, float64(row.QtdContratos)*row.MediaVenda, 0.001)
	}

	// O corretor de menor total (100+300) fica de fora.
	for _, row := range rows {
		assert.NotEqual(t, "Corretor 1", row.Corretor)
	}
}

func TestTopCorretoresVendasSemContratos(t *testing.T) {
	gdb := setupTestDB(t)
	ctx := context.Background()

	seedVendaFixture(t, gdb, models.Pessoa{ID: 1, Nome: "Ana", CpfCnpj: "100"})

	repo := NewRelatorioGormRepository(gdb)

	rows, err := repo.TopCorretoresVendas(ctx, 5)
	require.NoError(t, err)
	assert.Empty(t, rows)
}
