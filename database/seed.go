package database

import (
	"fmt"

	"github.com/Javy018000/formulario-camareras/models"
	"github.com/Javy018000/formulario-camareras/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seed inserta las cuentas y habitaciones de arranque si las tablas
// están vacías. Idempotente: correr dos veces no duplica nada.
func Seed(db *gorm.DB) error {
	var cuentas int64
	if err := db.Model(&models.Usuario{}).Count(&cuentas).Error; err != nil {
		return err
	}

	if cuentas == 0 {
		defaults := []struct {
			nombre, usuario, password, rol string
		}{
			{"Administrador", "admin", "admin123", models.RolAdmin},
			{"Jefa de Área", "jefa", "123456", models.RolJefa},
			{"María González", "maria", "1234", models.RolCamarera},
			{"Ana López", "ana", "1234", models.RolCamarera},
			{"Carmen Ruiz", "carmen", "1234", models.RolCamarera},
		}

		for _, d := range defaults {
			hash, err := bcrypt.GenerateFromPassword([]byte(d.password), bcrypt.DefaultCost)
			if err != nil {
				return err
			}
			u := models.Usuario{
				Nombre:       d.nombre,
				Username:     d.usuario,
				PasswordHash: string(hash),
				Rol:          d.rol,
				Activo:       true,
			}
			if err := db.Create(&u).Error; err != nil {
				return err
			}
		}
		utils.InfoLogger.Printf("Seed: %d cuentas creadas", len(defaults))
	}

	var habitaciones int64
	if err := db.Model(&models.Habitacion{}).Count(&habitaciones).Error; err != nil {
		return err
	}

	if habitaciones == 0 {
		// Habitaciones 101-110, 201-210, 301-310
		for piso := 1; piso <= 3; piso++ {
			for num := 1; num <= 10; num++ {
				tipo := "Sencilla"
				if num%2 == 0 {
					tipo = "Doble"
				}
				h := models.Habitacion{
					Numero: fmt.Sprintf("%d%02d", piso, num),
					Piso:   piso,
					Tipo:   tipo,
					Activa: true,
				}
				if err := db.Create(&h).Error; err != nil {
					return err
				}
			}
		}
		utils.InfoLogger.Println("Seed: 30 habitaciones creadas")
	}

	return nil
}
