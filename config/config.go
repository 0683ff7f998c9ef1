package config

import (
	"strings"

	"github.com/spf13/viper"
)

type Configuration struct {
	ApiPort  string `mapstructure:"api_port"`
	Env      string `mapstructure:"env"` // "development" ou "production"
	LogLevel string `mapstructure:"log_level"`

	Database string `mapstructure:"database"` // "sqlite3" ou "postgres"
	DbHost   string `mapstructure:"db_host"`
	DbPort   string `mapstructure:"db_port"`
	DbUser   string `mapstructure:"db_user"`
	DbName   string `mapstructure:"db_name"`
	DbPass   string `mapstructure:"db_pass"`

	Security struct {
		JwtSecret         string `mapstructure:"jwt_secret"`
		SessionTTLMinutes int    `mapstructure:"session_ttl_minutes"`
	} `mapstructure:"security"`
}

// Get carrega a configuração a partir do arquivo (opcional) + variáveis
// de ambiente com prefixo FOLHA_. Defaults cobrem o ambiente de dev.
func Get(path string) Configuration {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")

	v.SetEnvPrefix("FOLHA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("api_port", "8080")
	v.SetDefault("env", "development")
	v.SetDefault("log_level", "info")
	v.SetDefault("database", "sqlite3")
	v.SetDefault("db_host", "localhost")
	v.SetDefault("db_port", "5432")
	// registrar as chaves mesmo sem default útil, para o AutomaticEnv enxergá-las
	v.SetDefault("db_user", "")
	v.SetDefault("db_name", "")
	v.SetDefault("db_pass", "")
	v.SetDefault("security.jwt_secret", "CHANGE_ME")
	v.SetDefault("security.session_ttl_minutes", 24*60)

	// config.json é opcional: defaults + env bastam em dev
	_ = v.ReadInConfig()

	var c Configuration
	if err := v.Unmarshal(&c); err != nil {
		panic("configuração inválida: " + err.Error())
	}
	return c
}
