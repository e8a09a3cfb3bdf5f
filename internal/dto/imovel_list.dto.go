package dto

type ImovelListDTO struct {
	ID           uint    `json:"id"`
	Titulo       string  `json:"titulo"`
	ValorVenda   float64 `json:"valor_venda"`
	Proprietario *string `json:"proprietario"`
}
