package main

import (
	"flag"

	"folha/config"
	"folha/db"
	"folha/logger"
	"folha/router"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "config.json", "caminho do arquivo de configuração")
	flag.Parse()

	cfg := config.Get(*configPath)
	logger.Setup(cfg.Env, cfg.LogLevel)

	db.SetConfigurations(cfg)
	database, err := db.Connect()
	if err != nil {
		log.Fatal().Err(err).Msg("erro ao conectar no banco")
	}
	defer database.Close()

	if cfg.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(db.SetDBtoContext(database))
	router.Initialize(r, cfg)

	log.Info().Str("port", cfg.ApiPort).Msg("folha listening")
	if err := r.Run(":" + cfg.ApiPort); err != nil {
		log.Fatal().Err(err).Msg("servidor encerrou com erro")
	}
}
