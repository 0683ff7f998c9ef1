package db

import (
	"strings"

	"folha/config"
	"folha/models"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
	"github.com/rs/zerolog/log"
)

var conf config.Configuration

func SetConfigurations(configuration config.Configuration) {
	conf = configuration
}

// Connect abre conexão com DB (sqlite3 por padrão) e roda o automigrate.
func Connect() (*gorm.DB, error) {
	database := conf.Database
	if database == "" {
		database = "sqlite3"
	}

	var (
		db  *gorm.DB
		err error
	)

	if database == "postgres" || database == "postgresql" {
		log.Info().Msg("Utilizando conexão com o postgresql...")
		path := "host=" + conf.DbHost + " port=" + conf.DbPort
		path += " user=" + conf.DbUser + " dbname=" + conf.DbName
		path += " password=" + conf.DbPass
		db, err = gorm.Open("postgres", path)
	} else {
		log.Info().Msg("Utilizando conexão com o sqlite3...")
		db, err = gorm.Open("sqlite3", "db/database.db")
	}

	if err != nil {
		log.Error().Err(err).Msg("erro ao conectar no banco")
		return nil, err
	}

	db.LogMode(conf.Env == "development")

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate cria/atualiza o schema das entidades do sistema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Sessao{},
		&models.Profissao{},
		&models.Pessoa{},
		&models.FolhaPagamento{},
	).Error
}

// IsUniqueViolation identifica violação de constraint de unicidade
// nos dois dialetos suportados (sqlite3 e postgres). É o que transforma
// uma corrida de check-then-act em um erro de chave duplicada tratável.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") || strings.Contains(msg, "duplicate key")
}
