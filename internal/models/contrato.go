package models

import "time"

type Contrato struct {
	ID uint `gorm:"column:id_contrato;primaryKey" json:"id"`

	IDTipoContrato uint          `gorm:"column:id_tipo_contrato" json:"id_tipo_contrato"`
	Tipo           *TipoContrato `gorm:"foreignKey:IDTipoContrato" json:"tipo,omitempty"`

	IDStatusContrato uint            `gorm:"column:id_status_contrato" json:"id_status_contrato"`
	Status           *StatusContrato `gorm:"foreignKey:IDStatusContrato" json:"status,omitempty"`

	IDImovel uint    `gorm:"column:id_imovel" json:"id_imovel"`
	Imovel   *Imovel `gorm:"foreignKey:IDImovel" json:"imovel,omitempty"`

	// Cliente, corretor e proprietário são todos Pessoa; o proprietário
	// deve bater com o proprietário do imóvel (convenção, não constraint).
	IDCliente      uint    `gorm:"column:id_cliente" json:"id_cliente"`
	Cliente        *Pessoa `gorm:"foreignKey:IDCliente" json:"cliente,omitempty"`
	IDCorretor     uint    `gorm:"column:id_corretor" json:"id_corretor"`
	Corretor       *Pessoa `gorm:"foreignKey:IDCorretor" json:"corretor,omitempty"`
	IDProprietario uint    `gorm:"column:id_proprietario" json:"id_proprietario"`
	Proprietario   *Pessoa `gorm:"foreignKey:IDProprietario" json:"proprietario,omitempty"`

	DataInicio time.Time  `gorm:"column:data_inicio" json:"data_inicio"`
	DataFim    *time.Time `gorm:"column:data_fim" json:"data_fim"`

	Valor              float64 `gorm:"column:valor" json:"valor"`
	ComissaoPercentual float64 `gorm:"column:comissao_percentual" json:"comissao_percentual"`
}

func (Contrato) TableName() string { return "contrato" }
