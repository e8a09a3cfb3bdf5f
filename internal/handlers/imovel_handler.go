package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/apacheimob/imobiliaria-api/internal/httperr"
	"github.com/apacheimob/imobiliaria-api/internal/httpresp"
	ucImovel "github.com/apacheimob/imobiliaria-api/internal/usecase/imovel"
)

type ImovelHandler struct {
	listUC    *ucImovel.ListImoveis
	createUC  *ucImovel.CreateImovel
	updateUC  *ucImovel.UpdateImovel
	archiveUC *ucImovel.ArchiveImovel
}

func NewImovelHandler(
	listUC *ucImovel.ListImoveis,
	createUC *ucImovel.CreateImovel,
	updateUC *ucImovel.UpdateImovel,
	archiveUC *ucImovel.ArchiveImovel,
) *ImovelHandler {
	return &ImovelHandler{
		listUC:    listUC,
		createUC:  createUC,
		updateUC:  updateUC,
		archiveUC: archiveUC,
	}
}

// --------- Requests ---------

type CreateImovelRequest struct {
	Titulo         string   `json:"titulo"`
	Descricao      string   `json:"descricao"`
	ValorVenda     *float64 `json:"valor_venda"`
	IDProprietario uint     `json:"id_proprietario"`
}

type UpdateImovelRequest struct {
	Titulo     *string  `json:"titulo,omitempty"`
	ValorVenda *float64 `json:"valor_venda,omitempty"`
}

// --------- Handlers ---------

func (h *ImovelHandler) List(c *gin.Context) {
	imoveis, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_imoveis", err.Error())
		return
	}

	httpresp.OK(c, imoveis)
}

func (h *ImovelHandler) Create(c *gin.Context) {
	var req CreateImovelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	_, err := h.createUC.Execute(c.Request.Context(), ucImovel.CreateImovelInput{
		Titulo:         req.Titulo,
		Descricao:      req.Descricao,
		ValorVenda:     req.ValorVenda,
		IDProprietario: req.IDProprietario,
	})
	if err != nil {
		httperr.BadRequest(c, "failed_to_create_imovel", err.Error())
		return
	}

	c.JSON(http.StatusCreated, gin.H{"mensagem": "Imóvel criado com sucesso!"})
}

func (h *ImovelHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateImovelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	_, err := h.updateUC.Execute(c.Request.Context(), id, ucImovel.UpdateImovelInput{
		Titulo:     req.Titulo,
		ValorVenda: req.ValorVenda,
	})
	if err != nil {
		if httperr.IsBusiness(err, "imovel_not_found") {
			httperr.NotFound(c, "imovel_not_found", "Imóvel não encontrado.")
			return
		}
		httperr.BadRequest(c, "failed_to_update_imovel", err.Error())
		return
	}

	httpresp.OK(c, gin.H{"mensagem": "Imóvel atualizado com sucesso!"})
}

func (h *ImovelHandler) Archive(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	im, err := h.archiveUC.Execute(c.Request.Context(), id)
	if err != nil {
		if httperr.IsBusiness(err, "imovel_not_found") {
			httperr.NotFound(c, "imovel_not_found", "Imóvel não encontrado.")
			return
		}
		httperr.BadRequest(c, "failed_to_archive_imovel", err.Error())
		return
	}

	httpresp.OK(c, gin.H{
		"mensagem": fmt.Sprintf("Imóvel '%s' foi arquivado com sucesso!", im.Titulo),
	})
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "id inválido")
		return 0, false
	}
	return uint(id), true
}
