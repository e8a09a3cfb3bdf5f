package models

import "time"

type Pagamento struct {
	ID uint `gorm:"column:id_pagamento;primaryKey" json:"id"`

	IDContrato uint      `gorm:"column:id_contrato" json:"id_contrato"`
	Contrato   *Contrato `gorm:"foreignKey:IDContrato" json:"contrato,omitempty"`

	// Nulo enquanto o pagamento não foi efetuado.
	DataPagamento *time.Time `gorm:"column:data_pagamento" json:"data_pagamento"`

	ValorPago float64 `gorm:"column:valor_pago" json:"valor_pago"`

	IDMetodoPagamento uint             `gorm:"column:id_metodo_pagamento" json:"id_metodo_pagamento"`
	Metodo            *MetodoPagamento `gorm:"foreignKey:IDMetodoPagamento" json:"metodo,omitempty"`

	IDStatusPagamento uint             `gorm:"column:id_status_pagamento" json:"id_status_pagamento"`
	Status            *StatusPagamento `gorm:"foreignKey:IDStatusPagamento" json:"status,omitempty"`
}

func (Pagamento) TableName() string { return "pagamento" }
