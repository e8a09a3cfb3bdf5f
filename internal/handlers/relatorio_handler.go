package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/apacheimob/imobiliaria-api/internal/cache"
	"github.com/apacheimob/imobiliaria-api/internal/dto"
	"github.com/apacheimob/imobiliaria-api/internal/httperr"
	"github.com/apacheimob/imobiliaria-api/internal/httpresp"
	ucRelatorio "github.com/apacheimob/imobiliaria-api/internal/usecase/relatorio"
)

const relatorioCacheTTL = 60 * time.Second

type RelatorioHandler struct {
	mediaVendasUC   *ucRelatorio.MediaVendasPorCorretor
	topCorretoresUC *ucRelatorio.TopCorretoresVendas
	cache           *cache.Cache
}

func NewRelatorioHandler(
	mediaVendasUC *ucRelatorio.MediaVendasPorCorretor,
	topCorretoresUC *ucRelatorio.TopCorretoresVendas,
	cache *cache.Cache,
) *RelatorioHandler {
	return &RelatorioHandler{
		mediaVendasUC:   mediaVendasUC,
		topCorretoresUC: topCorretoresUC,
		cache:           cache,
	}
}

func (h *RelatorioHandler) MediaVendasPorCorretor(c *gin.Context) {
	ctx := c.Request.Context()

	var cached []dto.MediaVendaCorretorDTO
	if h.cache.GetJSON(ctx, "relatorio:media_vendas_por_corretor", &cached) {
		httpresp.OK(c, cached)
		return
	}

	rows, err := h.mediaVendasUC.Execute(ctx)
	if err != nil {
		httperr.Internal(c, "failed_to_build_report", err.Error())
		return
	}

	h.cache.SetJSON(ctx, "relatorio:media_vendas_por_corretor", rows, relatorioCacheTTL)
	httpresp.OK(c, rows)
}

func (h *RelatorioHandler) TopCorretoresVendas(c *gin.Context) {
	ctx := c.Request.Context()

	var cached []dto.TopCorretorDTO
	if h.cache.GetJSON(ctx, "relatorio:top_corretores_vendas", &cached) {
		httpresp.OK(c, cached)
		return
	}

	rows, err := h.topCorretoresUC.Execute(ctx)
	if err != nil {
		httperr.Internal(c, "failed_to_build_report", err.Error())
		return
	}

	h.cache.SetJSON(ctx, "relatorio:top_corretores_vendas", rows, relatorioCacheTTL)
	httpresp.OK(c, rows)
}
