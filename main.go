package main

import (
	"log"
	"os"

	"github.com/Javy018000/formulario-camareras/config"
	"github.com/Javy018000/formulario-camareras/database"
	"github.com/Javy018000/formulario-camareras/models"
	"github.com/Javy018000/formulario-camareras/router"
	"github.com/Javy018000/formulario-camareras/utils"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Aviso: no se encontró archivo .env: %v", err)
	}

	utils.InitLogger()
}

func main() {
	db, err := config.InitDB()
	if err != nil {
		utils.ErrorLogger.Fatalf("Error conectando a la base de datos: %v", err)
	}

	utils.InitDB(db)

	ginMode := os.Getenv("GIN_MODE")
	if ginMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	autoMigrate(db)

	if err := database.Seed(db); err != nil {
		utils.ErrorLogger.Fatalf("Error en el seed inicial: %v", err)
	}

	// Directorio de fotos listo antes del primer reporte
	if err := os.MkdirAll(config.UploadDir(), 0755); err != nil {
		utils.ErrorLogger.Fatalf("Error creando el directorio de uploads: %v", err)
	}

	r := router.SetupRouter(db)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	utils.InfoLogger.Printf("Servidor de limpieza escuchando en el puerto %s", port)
	if err := r.Run(":" + port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}

func autoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.Usuario{},
		&models.Habitacion{},
		&models.Reporte{},
	)
	if err != nil {
		utils.ErrorLogger.Fatalf("Error en AutoMigrate: %v", err)
	}
	utils.InfoLogger.Println("AutoMigrate completado.")
}
