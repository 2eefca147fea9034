package db

import (
	"fmt"
	"os"
	"strconv"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Conectar abre a conexão com o Postgres a partir das variáveis de ambiente
// DB_HOST, DB_PORT, DB_NAME, DB_USER, DB_PASSWORD e DB_SSL_MODE_DISABLE.
func Conectar() (*gorm.DB, error) {
	host := os.Getenv("DB_HOST")
	nome := os.Getenv("DB_NAME")
	usuario := os.Getenv("DB_USER")
	senha := os.Getenv("DB_PASSWORD")

	porta, err := strconv.ParseUint(os.Getenv("DB_PORT"), 10, 32)
	if err != nil {
		porta = 5432
	}

	var sslMode string
	if os.Getenv("DB_SSL_MODE_DISABLE") == "true" {
		sslMode = " sslmode=disable"
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d%s",
		host, usuario, senha, nome, porta, sslMode)

	return gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
}
