package imovel

// ===============================
// Status do Imóvel
// ===============================
//
// Os status são linhas de status_imovel; estes são os descritores
// conhecidos. "Arquivado" é criado sob demanda na primeira vez que um
// imóvel é arquivado.

const (
	StatusDisponivel = "Disponível"
	StatusVendido    = "Vendido"
	StatusAlugado    = "Alugado"
	StatusArquivado  = "Arquivado"
)

// Tipo de imóvel usado como default na criação.
const TipoApartamento = "Apartamento"
