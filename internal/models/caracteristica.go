package models

type Caracteristica struct {
	ID        uint   `gorm:"column:id_caracteristica;primaryKey" json:"id"`
	Nome      string `gorm:"column:nome;size:60" json:"nome"`
	Descricao string `gorm:"column:descricao;size:255" json:"descricao"`
}

func (Caracteristica) TableName() string { return "caracteristica" }
