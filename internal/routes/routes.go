package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/apacheimob/imobiliaria-api/internal/audit"
	"github.com/apacheimob/imobiliaria-api/internal/cache"
	"github.com/apacheimob/imobiliaria-api/internal/handlers"
	infraRepo "github.com/apacheimob/imobiliaria-api/internal/infra/repository"
	"github.com/apacheimob/imobiliaria-api/internal/middleware"
	ucImovel "github.com/apacheimob/imobiliaria-api/internal/usecase/imovel"
	ucRelatorio "github.com/apacheimob/imobiliaria-api/internal/usecase/relatorio"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, reportCache *cache.Cache) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestID())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	imovelRepo := infraRepo.NewImovelGormRepository(db)
	relatorioRepo := infraRepo.NewRelatorioGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// 🧠 USE CASES
	// ======================================================
	listImoveisUC := ucImovel.NewListImoveis(imovelRepo)

	createImovelUC := ucImovel.NewCreateImovel(
		imovelRepo,
		auditDispatcher,
	)

	updateImovelUC := ucImovel.NewUpdateImovel(
		imovelRepo,
		auditDispatcher,
	)

	archiveImovelUC := ucImovel.NewArchiveImovel(
		imovelRepo,
		auditDispatcher,
	)

	mediaVendasUC := ucRelatorio.NewMediaVendasPorCorretor(relatorioRepo)
	topCorretoresUC := ucRelatorio.NewTopCorretoresVendas(relatorioRepo)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	imovelHandler := handlers.NewImovelHandler(
		listImoveisUC,
		createImovelUC,
		updateImovelUC,
		archiveImovelUC,
	)

	relatorioHandler := handlers.NewRelatorioHandler(
		mediaVendasUC,
		topCorretoresUC,
		reportCache,
	)

	// ======================================================
	// 🌐 ROTAS
	// ======================================================
	r.GET("/imoveis", imovelHandler.List)
	r.POST("/imoveis", imovelHandler.Create)
	r.PUT("/imoveis/:id", imovelHandler.Update)
	r.PUT("/imoveis/:id/arquivar", imovelHandler.Archive)

	r.GET("/media_vendas_por_corretor", relatorioHandler.MediaVendasPorCorretor)
	r.GET("/top_corretores_vendas", relatorioHandler.TopCorretoresVendas)
}
