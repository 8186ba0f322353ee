package utils

import (
	"sync"

	"gorm.io/gorm"
)

var (
	db   *gorm.DB
	once sync.Once
	mu   sync.RWMutex
)

// InitDB guarda la conexión compartida. Una sola conexión viva para todo
// el proceso, en lugar de abrir y cerrar por operación.
func InitDB(database *gorm.DB) {
	once.Do(func() {
		db = database
	})
}

// GetDB devuelve la conexión compartida.
func GetDB() *gorm.DB {
	mu.RLock()
	defer mu.RUnlock()
	return db
}
