package main

import (
	"log"
	"net/http"

	"github.com/apacheimob/imobiliaria-api/internal/cache"
	"github.com/apacheimob/imobiliaria-api/internal/config"
	dbpkg "github.com/apacheimob/imobiliaria-api/internal/db"
	"github.com/apacheimob/imobiliaria-api/internal/routes"
	"github.com/gin-gonic/gin"
)

func main() {

	cfg := config.Load()
	db := dbpkg.New(cfg)

	dbpkg.Seed(db)

	reportCache := cache.New(cfg)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, reportCache)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
