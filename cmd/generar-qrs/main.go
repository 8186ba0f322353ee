// generar-qrs exporta un PNG escaneable por habitación activa. Cada QR
// codifica el deep link del formulario de limpieza; se imprimen y se
// pegan en la puerta de cada habitación. Herramienta de un solo disparo,
// no corre junto al servidor.
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/Javy018000/formulario-camareras/config"
	"github.com/Javy018000/formulario-camareras/models"
	"github.com/Javy018000/formulario-camareras/utils"
	"github.com/joho/godotenv"
	qrcode "github.com/skip2/go-qrcode"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Aviso: no se encontró archivo .env: %v", err)
	}

	db, err := config.InitDB()
	if err != nil {
		log.Fatalf("Error conectando a la base de datos: %v", err)
	}
	utils.InitDB(db)

	outDir := filepath.Join("static", "qrs")
	if err := os.MkdirAll(outDir, 0755); err != nil {
		log.Fatalf("Error creando %s: %v", outDir, err)
	}

	var habitaciones []models.Habitacion
	if err := utils.GetDB().Where("activa = ?", true).Order("numero").Find(&habitaciones).Error; err != nil {
		log.Fatalf("Error leyendo habitaciones: %v", err)
	}

	baseURL := config.BaseURL() + "/limpiar?hab="
	log.Printf("Generando %d códigos QR con base %s", len(habitaciones), baseURL)

	for i, hab := range habitaciones {
		url := baseURL + hab.Numero
		archivo := filepath.Join(outDir, fmt.Sprintf("habitacion_%s.png", hab.Numero))

		if err := qrcode.WriteFile(url, qrcode.Low, 256, archivo); err != nil {
			log.Fatalf("Error generando QR de la habitación %s: %v", hab.Numero, err)
		}
		log.Printf("[%d/%d] QR generado: habitación %s", i+1, len(habitaciones), hab.Numero)
	}

	abs, _ := filepath.Abs(outDir)
	log.Printf("%d códigos QR en %s", len(habitaciones), abs)
}
