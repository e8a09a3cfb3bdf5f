package models

// Tabelas de referência: id + descrição, carregadas uma vez no bootstrap.
// Lookups sempre por descrição: os ids são atribuídos pelo banco e não
// são estáveis entre cargas.

type TipoPessoa struct {
	ID        uint   `gorm:"column:id_tipo_pessoa;primaryKey" json:"id"`
	Descricao string `gorm:"column:descricao;size:50" json:"descricao"`
}

func (TipoPessoa) TableName() string { return "tipo_pessoa" }

type TipoEndereco struct {
	ID        uint   `gorm:"column:id_tipo_endereco;primaryKey" json:"id"`
	Descricao string `gorm:"column:descricao;size:50" json:"descricao"`
}

func (TipoEndereco) TableName() string { return "tipo_endereco" }

type TipoImovel struct {
	ID        uint   `gorm:"column:id_tipo_imovel;primaryKey" json:"id"`
	Descricao string `gorm:"column:descricao;size:50" json:"descricao"`
}

func (TipoImovel) TableName() string { return "tipo_imovel" }

type StatusImovel struct {
	ID        uint   `gorm:"column:id_status_imovel;primaryKey" json:"id"`
	Descricao string `gorm:"column:descricao;size:50" json:"descricao"`
}

func (StatusImovel) TableName() string { return "status_imovel" }

type TipoContrato struct {
	ID        uint   `gorm:"column:id_tipo_contrato;primaryKey" json:"id"`
	Descricao string `gorm:"column:descricao;size:50" json:"descricao"`
}

func (TipoContrato) TableName() string { return "tipo_contrato" }

type StatusContrato struct {
	ID        uint   `gorm:"column:id_status_contrato;primaryKey" json:"id"`
	Descricao string `gorm:"column:descricao;size:50" json:"descricao"`
}

func (StatusContrato) TableName() string { return "status_contrato" }

type MetodoPagamento struct {
	ID        uint   `gorm:"column:id_metodo_pagamento;primaryKey" json:"id"`
	Descricao string `gorm:"column:descricao;size:50" json:"descricao"`
}

func (MetodoPagamento) TableName() string { return "metodo_pagamento" }

type StatusPagamento struct {
	ID        uint   `gorm:"column:id_status_pagamento;primaryKey" json:"id"`
	Descricao string `gorm:"column:descricao;size:50" json:"descricao"`
}

func (StatusPagamento) TableName() string { return "status_pagamento" }

type StatusAgendamento struct {
	ID        uint   `gorm:"column:id_status_agendamento;primaryKey" json:"id"`
	Descricao string `gorm:"column:descricao;size:50" json:"descricao"`
}

func (StatusAgendamento) TableName() string { return "status_agendamento" }
