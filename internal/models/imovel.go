package models

import "time"

type Imovel struct {
	ID uint `gorm:"column:id_imovel;primaryKey" json:"id"`

	Titulo    string `gorm:"column:titulo;size:100" json:"titulo"`
	Descricao string `gorm:"column:descricao;type:text" json:"descricao"`

	IDTipoImovel uint        `gorm:"column:id_tipo_imovel" json:"id_tipo_imovel"`
	Tipo         *TipoImovel `gorm:"foreignKey:IDTipoImovel" json:"tipo,omitempty"`

	IDStatusImovel uint          `gorm:"column:id_status_imovel" json:"id_status_imovel"`
	Status         *StatusImovel `gorm:"foreignKey:IDStatusImovel" json:"status,omitempty"`

	ValorVenda   *float64 `gorm:"column:valor_venda" json:"valor_venda"`
	ValorAluguel *float64 `gorm:"column:valor_aluguel" json:"valor_aluguel"`

	AreaM2       float64 `gorm:"column:area_m2" json:"area_m2"`
	Quartos      int     `gorm:"column:quartos" json:"quartos"`
	Banheiros    int     `gorm:"column:banheiros" json:"banheiros"`
	VagasGaragem int     `gorm:"column:vagas_garagem" json:"vagas_garagem"`

	DataCadastro time.Time `gorm:"column:data_cadastro" json:"data_cadastro"`

	IDProprietario uint    `gorm:"column:id_proprietario" json:"id_proprietario"`
	Proprietario   *Pessoa `gorm:"foreignKey:IDProprietario" json:"proprietario,omitempty"`

	IDEndereco uint      `gorm:"column:id_endereco" json:"id_endereco"`
	Endereco   *Endereco `gorm:"foreignKey:IDEndereco" json:"endereco,omitempty"`

	Caracteristicas []Caracteristica `gorm:"many2many:imovel_caracteristica;foreignKey:ID;joinForeignKey:IDImovel;References:ID;joinReferences:IDCaracteristica" json:"caracteristicas,omitempty"`
}

func (Imovel) TableName() string { return "imovel" }

// ImovelCaracteristica é a associação Imovel <-> Caracteristica, com um
// detalhe livre ("piscina aquecida", "2 vagas cobertas").
type ImovelCaracteristica struct {
	IDImovel         uint   `gorm:"column:id_imovel;primaryKey" json:"id_imovel"`
	IDCaracteristica uint   `gorm:"column:id_caracteristica;primaryKey" json:"id_caracteristica"`
	Detalhe          string `gorm:"column:detalhe;size:100" json:"detalhe"`
}

func (ImovelCaracteristica) TableName() string { return "imovel_caracteristica" }
