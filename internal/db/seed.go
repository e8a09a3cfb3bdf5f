package db

import (
	"log"
	"time"

	"github.com/apacheimob/imobiliaria-api/internal/models"
	"gorm.io/gorm"
)

// Seed carrega os dados de referência e a carga de demonstração. Cada tabela
// só é populada se estiver vazia, então rodar duas vezes não muda nada.
// Conflito de unicidade (seed concorrente) faz rollback do grupo e é apenas
// logado: nunca derruba o processo.
func Seed(db *gorm.DB) {
	for _, step := range []struct {
		name string
		fn   func(tx *gorm.DB) error
	}{
		{"tipos_pessoa", seedTiposPessoa},
		{"pessoas", seedPessoas},
		{"enderecos", seedEnderecos},
		{"tipos_imovel", seedTiposImovel},
		{"status_imovel", seedStatusImovel},
		{"caracteristicas", seedCaracteristicas},
		{"tipos_contrato", seedTiposContrato},
		{"status_contrato", seedStatusContrato},
		{"imoveis", seedImoveis},
		{"contratos", seedContratos},
		{"metodos_pagamento", seedMetodosPagamento},
		{"status_pagamento", seedStatusPagamento},
		{"status_agendamento", seedStatusAgendamento},
	} {
		if err := db.Transaction(step.fn); err != nil {
			log.Printf("seed %s skipped: %v", step.name, err)
		}
	}
}

func isEmpty(tx *gorm.DB, model any) (bool, error) {
	var count int64
	if err := tx.Model(model).Count(&count).Error; err != nil {
		return false, err
	}
	return count == 0, nil
}

func seedTiposPessoa(tx *gorm.DB) error {
	empty, err := isEmpty(tx, &models.TipoPessoa{})
	if err != nil || !empty {
		return err
	}
	return tx.Create(&[]models.TipoPessoa{
		{ID: 1, Descricao: "proprietario"},
		{ID: 2, Descricao: "corretor"},
		{ID: 3, Descricao: "cliente"},
	}).Error
}

func seedPessoas(tx *gorm.DB) error {
	empty, err := isEmpty(tx, &models.Pessoa{})
	if err != nil || !empty {
		return err
	}
	return tx.Create(&[]models.Pessoa{
		{ID: 1, Nome: "João Silva", CpfCnpj: "11122233344", Email: "joao@example.com", Telefone: "(91)99999-0001", IDTipoPessoa: 1},
		{ID: 2, Nome: "Ana Corretora", CpfCnpj: "22233344455", Email: "ana@example.com", Telefone: "(91)99999-0002", IDTipoPessoa: 2},
		{ID: 3, Nome: "Carlos Cliente", CpfCnpj: "33344455566", Email: "carlos@example.com", Telefone: "(91)99999-0003", IDTipoPessoa: 3},
		{ID: 4, Nome: "Marcos Vendas", CpfCnpj: "44455566677", Email: "marcos@example.com", Telefone: "(91)98888-0004", IDTipoPessoa: 2},
		{ID: 5, Nome: "Julia Cliente", CpfCnpj: "55566677788", Email: "julia@example.com", Telefone: "(91)98777-0005", IDTipoPessoa: 3},
	}).Error
}

func seedEnderecos(tx *gorm.DB) error {
	empty, err := isEmpty(tx, &models.Endereco{})
	if err != nil || !empty {
		return err
	}
	return tx.Create(&[]models.Endereco{
		{ID: 1, Logradouro: "Rua A", Numero: "10", Bairro: "Centro", Cidade: "Belém", Estado: "PA", Cep: "66000-000"},
		{ID: 2, Logradouro: "Av B", Numero: "200", Bairro: "Batista Campos", Cidade: "Belém", Estado: "PA", Cep: "66000-001"},
		{ID: 3, Logradouro: "Trav C", Numero: "5", Bairro: "Marco", Cidade: "Belém", Estado: "PA", Cep: "66000-002"},
		{ID: 4, Logradouro: "Rua D", Numero: "88", Bairro: "Nazaré", Cidade: "Belém", Estado: "PA", Cep: "66000-003"},
	}).Error
}

func seedTiposImovel(tx *gorm.DB) error {
	empty, err := isEmpty(tx, &models.TipoImovel{})
	if err != nil || !empty {
		return err
	}
	return tx.Create(&[]models.TipoImovel{
		{ID: 1, Descricao: "Apartamento"},
		{ID: 2, Descricao: "Casa"},
		{ID: 3, Descricao: "Terreno"},
		{ID: 4, Descricao: "Cobertura"},
	}).Error
}

func seedStatusImovel(tx *gorm.DB) error {
	empty, err := isEmpty(tx, &models.StatusImovel{})
	if err != nil || !empty {
		return err
	}
	return tx.Create(&[]models.StatusImovel{
		{ID: 1, Descricao: "Disponível"},
		{ID: 2, Descricao: "Vendido"},
		{ID: 3, Descricao: "Alugado"},
	}).Error
}

func seedCaracteristicas(tx *gorm.DB) error {
	empty, err := isEmpty(tx, &models.Caracteristica{})
	if err != nil || !empty {
		return err
	}
	return tx.Create(&[]models.Caracteristica{
		{ID: 1, Nome: "Piscina", Descricao: "Piscina privativa"},
		{ID: 2, Nome: "Garagem", Descricao: "2 vagas cobertas"},
		{ID: 3, Nome: "Jardim", Descricao: "Área verde ampla"},
	}).Error
}

func seedTiposContrato(tx *gorm.DB) error {
	empty, err := isEmpty(tx, &models.TipoContrato{})
	if err != nil || !empty {
		return err
	}
	return tx.Create(&[]models.TipoContrato{
		{ID: 1, Descricao: "Venda"},
		{ID: 2, Descricao: "Locação"},
	}).Error
}

func seedStatusContrato(tx *gorm.DB) error {
	empty, err := isEmpty(tx, &models.StatusContrato{})
	if err != nil || !empty {
		return err
	}
	return tx.Create(&[]models.StatusContrato{
		{ID: 1, Descricao: "Ativo"},
		{ID: 2, Descricao: "Concluído"},
		{ID: 3, Descricao: "Cancelado"},
	}).Error
}

func seedImoveis(tx *gorm.DB) error {
	empty, err := isEmpty(tx, &models.Imovel{})
	if err != nil || !empty {
		return err
	}
	hoje := time.Now()
	return tx.Create(&[]models.Imovel{
		{Titulo: "Apto centro", Descricao: "Apto 2 quartos", IDTipoImovel: 1, IDStatusImovel: 1, ValorVenda: valor(350000), AreaM2: 75, Quartos: 2, Banheiros: 1, VagasGaragem: 1, DataCadastro: hoje, IDProprietario: 1, IDEndereco: 1},
		{Titulo: "Casa Jardim", Descricao: "Casa 4 quartos", IDTipoImovel: 2, IDStatusImovel: 1, ValorVenda: valor(550000), AreaM2: 180, Quartos: 4, Banheiros: 3, VagasGaragem: 2, DataCadastro: hoje, IDProprietario: 1, IDEndereco: 2},
		{Titulo: "Terreno Rural", Descricao: "Terreno 1000m²", IDTipoImovel: 3, IDStatusImovel: 1, ValorVenda: valor(120000), AreaM2: 1000, Quartos: 0, Banheiros: 0, VagasGaragem: 0, DataCadastro: hoje, IDProprietario: 1, IDEndereco: 3},
		{Titulo: "Cobertura Vista Rio", Descricao: "Cobertura de luxo", IDTipoImovel: 4, IDStatusImovel: 1, ValorVenda: valor(850000), AreaM2: 220, Quartos: 3, Banheiros: 3, VagasGaragem: 2, DataCadastro: hoje, IDProprietario: 1, IDEndereco: 4},
	}).Error
}

func seedContratos(tx *gorm.DB) error {
	empty, err := isEmpty(tx, &models.Contrato{})
	if err != nil || !empty {
		return err
	}
	return tx.Create(&[]models.Contrato{
		{IDTipoContrato: 1, IDStatusContrato: 2, IDImovel: 1, IDCliente: 3, IDCorretor: 2, IDProprietario: 1, DataInicio: time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC), Valor: 350000, ComissaoPercentual: 5.0},
		{IDTipoContrato: 1, IDStatusContrato: 2, IDImovel: 2, IDCliente: 5, IDCorretor: 4, IDProprietario: 1, DataInicio: time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC), Valor: 550000, ComissaoPercentual: 4.0},
		{IDTipoContrato: 2, IDStatusContrato: 1, IDImovel: 3, IDCliente: 3, IDCorretor: 2, IDProprietario: 1, DataInicio: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), Valor: 0, ComissaoPercentual: 0.0},
	}).Error
}

func seedMetodosPagamento(tx *gorm.DB) error {
	empty, err := isEmpty(tx, &models.MetodoPagamento{})
	if err != nil || !empty {
		return err
	}
	return tx.Create(&[]models.MetodoPagamento{
		{ID: 1, Descricao: "Boleto"},
		{ID: 2, Descricao: "Cartão"},
		{ID: 3, Descricao: "Transferência"},
	}).Error
}

func seedStatusPagamento(tx *gorm.DB) error {
	empty, err := isEmpty(tx, &models.StatusPagamento{})
	if err != nil || !empty {
		return err
	}
	return tx.Create(&[]models.StatusPagamento{
		{ID: 1, Descricao: "Pendente"},
		{ID: 2, Descricao: "Pago"},
		{ID: 3, Descricao: "Estornado"},
	}).Error
}

func seedStatusAgendamento(tx *gorm.DB) error {
	empty, err := isEmpty(tx, &models.StatusAgendamento{})
	if err != nil || !empty {
		return err
	}
	return tx.Create(&[]models.StatusAgendamento{
		{ID: 1, Descricao: "Agendado"},
		{ID: 2, Descricao: "Realizado"},
		{ID: 3, Descricao: "Cancelado"},
	}).Error
}

func valor(v float64) *float64 { return &v }
