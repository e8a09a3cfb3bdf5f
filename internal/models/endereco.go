package models

type Endereco struct {
	ID uint `gorm:"column:id_endereco;primaryKey" json:"id"`

	Logradouro      string `gorm:"column:logradouro;size:120" json:"logradouro"`
	Numero          string `gorm:"column:numero;size:10" json:"numero"`
	Complemento     string `gorm:"column:complemento;size:50" json:"complemento"`
	Bairro          string `gorm:"column:bairro;size:80" json:"bairro"`
	Cidade          string `gorm:"column:cidade;size:80" json:"cidade"`
	Estado          string `gorm:"column:estado;size:2" json:"estado"`
	Cep             string `gorm:"column:cep;size:15" json:"cep"`
	PontoReferencia string `gorm:"column:ponto_referencia;size:100" json:"ponto_referencia"`
}

func (Endereco) TableName() string { return "endereco" }
