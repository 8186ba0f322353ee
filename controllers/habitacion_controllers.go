package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Javy018000/formulario-camareras/models"
	"github.com/Javy018000/formulario-camareras/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HabitacionController struct {
	DB *gorm.DB
}

func NewHabitacionController(db *gorm.DB) *HabitacionController {
	return &HabitacionController{DB: db}
}

// GetHabitacionesActivas lista las habitaciones activas ordenadas por
// número, para el selector de la camarera y el generador de QRs.
func (hc *HabitacionController) GetHabitacionesActivas(c *gin.Context) {
	var habitaciones []models.Habitacion
	if err := hc.DB.Where("activa = ?", true).Order("numero").Find(&habitaciones).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Habitaciones activas", habitaciones)
}

// GetAllHabitaciones lista todas, incluidas inactivas (panel de admin).
func (hc *HabitacionController) GetAllHabitaciones(c *gin.Context) {
	var habitaciones []models.Habitacion
	if err := hc.DB.Order("numero").Find(&habitaciones).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Lista de habitaciones", habitaciones)
}

// CrearHabitacion da de alta una habitación. El número debe ser único.
func (hc *HabitacionController) CrearHabitacion(c *gin.Context) {
	var req struct {
		Numero string `form:"numero" json:"numero" binding:"required"`
		Piso   int    `form:"piso" json:"piso" binding:"required"`
		Tipo   string `form:"tipo" json:"tipo"`
	}

	if err := c.ShouldBind(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var existentes int64
	hc.DB.Model(&models.Habitacion{}).Where("numero = ?", req.Numero).Count(&existentes)
	if existentes > 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("la habitación ya existe"))
		return
	}

	habitacion := models.Habitacion{
		Numero: req.Numero,
		Piso:   req.Piso,
		Tipo:   req.Tipo,
		Activa: true,
	}

	if err := hc.DB.Create(&habitacion).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Habitación creada: %s (piso %d)", habitacion.Numero, habitacion.Piso)
	utils.RespondJSON(c, http.StatusCreated, "Habitación creada", habitacion)
}

// ActualizarHabitacion edita número, piso, tipo o el flag activa.
func (hc *HabitacionController) ActualizarHabitacion(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("id inválido"))
		return
	}

	var req struct {
		Numero string  `form:"numero" json:"numero"`
		Piso   *int    `form:"piso" json:"piso"`
		Tipo   *string `form:"tipo" json:"tipo"`
		Activa *bool   `form:"activa" json:"activa"`
	}

	if err := c.ShouldBind(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var habitacion models.Habitacion
	if err := hc.DB.First(&habitacion, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if req.Numero != "" && req.Numero != habitacion.Numero {
		var existentes int64
		hc.DB.Model(&models.Habitacion{}).Where("numero = ? AND id <> ?", req.Numero, habitacion.ID).Count(&existentes)
		if existentes > 0 {
			utils.RespondError(c, http.StatusBadRequest, errors.New("la habitación ya existe"))
			return
		}
		habitacion.Numero = req.Numero
	}
	if req.Piso != nil {
		habitacion.Piso = *req.Piso
	}
	if req.Tipo != nil {
		habitacion.Tipo = *req.Tipo
	}
	if req.Activa != nil {
		habitacion.Activa = *req.Activa
	}

	if err := hc.DB.Save(&habitacion).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Habitación actualizada", habitacion)
}

// EliminarHabitacion borra la fila. No toca los reportes que referencian
// su número: quedan huérfanos a propósito.
func (hc *HabitacionController) EliminarHabitacion(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("id inválido"))
		return
	}

	var habitacion models.Habitacion
	if err := hc.DB.First(&habitacion, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if err := hc.DB.Delete(&habitacion).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Habitación %s eliminada", habitacion.Numero)
	utils.RespondJSON(c, http.StatusOK, "Habitación eliminada", gin.H{"id": habitacion.ID})
}
