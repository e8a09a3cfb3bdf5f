package models

type Pessoa struct {
	ID uint `gorm:"column:id_pessoa;primaryKey" json:"id"`

	Nome     string `gorm:"column:nome;size:120" json:"nome"`
	CpfCnpj  string `gorm:"column:cpf_cnpj;size:20;uniqueIndex" json:"cpf_cnpj"`
	Email    string `gorm:"column:email;size:120" json:"email"`
	Telefone string `gorm:"column:telefone;size:20" json:"telefone"`

	IDTipoPessoa uint        `gorm:"column:id_tipo_pessoa" json:"id_tipo_pessoa"`
	Tipo         *TipoPessoa `gorm:"foreignKey:IDTipoPessoa" json:"tipo,omitempty"`

	Enderecos []Endereco `gorm:"many2many:pessoa_endereco;foreignKey:ID;joinForeignKey:IDPessoa;References:ID;joinReferences:IDEndereco" json:"enderecos,omitempty"`
}

func (Pessoa) TableName() string { return "pessoa" }

// PessoaEndereco é a associação Pessoa <-> Endereco. Entidade própria porque
// carrega o tipo de endereço além das duas chaves.
type PessoaEndereco struct {
	IDPessoa       uint `gorm:"column:id_pessoa;primaryKey" json:"id_pessoa"`
	IDEndereco     uint `gorm:"column:id_endereco;primaryKey" json:"id_endereco"`
	IDTipoEndereco uint `gorm:"column:id_tipo_endereco" json:"id_tipo_endereco"`
}

func (PessoaEndereco) TableName() string { return "pessoa_endereco" }
