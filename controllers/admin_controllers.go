package controllers

import (
	"net/http"

	"github.com/Javy018000/formulario-camareras/models"
	"github.com/Javy018000/formulario-camareras/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AdminController struct {
	DB *gorm.DB
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{DB: db}
}

// GetPanel junta todo lo que muestra el panel de administración:
// cuentas, habitaciones (incluidas inactivas) y el historial de
// reportes completo.
func (ac *AdminController) GetPanel(c *gin.Context) {
	var usuarios []models.Usuario
	if err := ac.DB.Find(&usuarios).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var habitaciones []models.Habitacion
	if err := ac.DB.Order("numero").Find(&habitaciones).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var reportes []models.Reporte
	if err := ac.DB.Order("fecha DESC, hora_inicio DESC").Find(&reportes).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Panel de administración", gin.H{
		"usuarios":     usuarios,
		"habitaciones": habitaciones,
		"reportes":     reportes,
	})
}
