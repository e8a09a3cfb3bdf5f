package dto

// Agrupado pelo nome do corretor, não pelo id: comportamento contratual
// dos relatórios: corretores homônimos são somados na mesma linha.

type MediaVendaCorretorDTO struct {
	Corretor   string  `gorm:"column:corretor" json:"corretor"`
	MediaVenda float64 `gorm:"column:media_venda" json:"media_venda"`
}

type TopCorretorDTO struct {
	Corretor     string  `gorm:"column:corretor" json:"corretor"`
	QtdContratos int     `gorm:"column:qtd_contratos" json:"qtd_contratos"`
	TotalVendido float64 `gorm:"column:total_vendido" json:"total_vendido"`
	MediaVenda   float64 `gorm:"column:media_venda" json:"media_venda"`
}
