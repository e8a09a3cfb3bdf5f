package models

import "time"

// Agendamento de visita a um imóvel.
type Agendamento struct {
	ID uint `gorm:"column:id_agendamento;primaryKey" json:"id"`

	IDImovel uint    `gorm:"column:id_imovel" json:"id_imovel"`
	Imovel   *Imovel `gorm:"foreignKey:IDImovel" json:"imovel,omitempty"`

	IDCliente  uint    `gorm:"column:id_cliente" json:"id_cliente"`
	Cliente    *Pessoa `gorm:"foreignKey:IDCliente" json:"cliente,omitempty"`
	IDCorretor uint    `gorm:"column:id_corretor" json:"id_corretor"`
	Corretor   *Pessoa `gorm:"foreignKey:IDCorretor" json:"corretor,omitempty"`

	DataHora time.Time `gorm:"column:data_hora" json:"data_hora"`

	IDStatusAgendamento uint               `gorm:"column:id_status_agendamento" json:"id_status_agendamento"`
	Status              *StatusAgendamento `gorm:"foreignKey:IDStatusAgendamento" json:"status,omitempty"`

	Observacoes string `gorm:"column:observacoes;type:text" json:"observacoes"`
}

func (Agendamento) TableName() string { return "agendamento" }
