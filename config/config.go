package config

import (
	"fmt"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// InitDB abre la base según el entorno. Por defecto SQLite en un archivo
// local, suficiente para un solo hotel; DB_DRIVER=mysql con DB_DSN para
// instalaciones con servidor.
func InitDB() (*gorm.DB, error) {
	driver := os.Getenv("DB_DRIVER")
	if driver == "" {
		driver = "sqlite"
	}

	switch driver {
	case "sqlite":
		dsn := os.Getenv("DB_DSN")
		if dsn == "" {
			dsn = "hotel_limpieza.db"
		}
		return gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	case "mysql":
		dsn := os.Getenv("DB_DSN")
		if dsn == "" {
			return nil, fmt.Errorf("DB_DSN es obligatorio con DB_DRIVER=mysql")
		}
		return gorm.Open(mysql.Open(dsn), &gorm.Config{})
	default:
		return nil, fmt.Errorf("DB_DRIVER desconocido: %s", driver)
	}
}

// UploadDir es el directorio donde se guardan las fotos de los reportes.
func UploadDir() string {
	dir := os.Getenv("UPLOAD_DIR")
	if dir == "" {
		dir = "uploads"
	}
	return dir
}

// BaseURL es la raíz pública del servidor, usada por el generador de QRs.
func BaseURL() string {
	base := os.Getenv("BASE_URL")
	if base == "" {
		base = "http://localhost:3000"
	}
	return base
}
