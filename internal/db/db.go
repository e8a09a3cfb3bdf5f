package db

import (
	"log"
	"time"

	"github.com/apacheimob/imobiliaria-api/internal/config"
	"github.com/apacheimob/imobiliaria-api/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func New(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := Migrate(db); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	return db
}

// Migrate registra as tabelas de associação e cria o schema. Separado de New
// para que os testes possam rodar o mesmo schema em sqlite.
func Migrate(db *gorm.DB) error {
	if err := db.SetupJoinTable(&models.Pessoa{}, "Enderecos", &models.PessoaEndereco{}); err != nil {
		return err
	}
	if err := db.SetupJoinTable(&models.Imovel{}, "Caracteristicas", &models.ImovelCaracteristica{}); err != nil {
		return err
	}

	return db.AutoMigrate(
		&models.TipoPessoa{},
		&models.TipoEndereco{},
		&models.TipoImovel{},
		&models.StatusImovel{},
		&models.TipoContrato{},
		&models.StatusContrato{},
		&models.MetodoPagamento{},
		&models.StatusPagamento{},
		&models.StatusAgendamento{},
		&models.Pessoa{},
		&models.Endereco{},
		&models.Caracteristica{},
		&models.Imovel{},
		&models.Contrato{},
		&models.Pagamento{},
		&models.Agendamento{},
		&models.AuditLog{},
	)
}
