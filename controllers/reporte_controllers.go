package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/Javy018000/formulario-camareras/config"
	"github.com/Javy018000/formulario-camareras/models"
	"github.com/Javy018000/formulario-camareras/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ReporteController struct {
	DB *gorm.DB
}

func NewReporteController(db *gorm.DB) *ReporteController {
	return &ReporteController{DB: db}
}

// FormularioLimpieza atiende el deep link del QR (/limpiar?hab=N) y
// devuelve los datos que necesita el formulario. Sin ?hab= manda al
// selector de habitaciones.
func (rc *ReporteController) FormularioLimpieza(c *gin.Context) {
	habitacion := c.Query("hab")
	if habitacion == "" {
		c.Redirect(http.StatusFound, "/seleccionar-habitacion")
		return
	}

	nombre, _ := c.Get("nombre")
	utils.RespondJSON(c, http.StatusOK, "Formulario de limpieza", gin.H{
		"habitacion": habitacion,
		"camarera":   nombre,
	})
}

// GuardarReporte crea el reporte de una limpieza. Habitación y estado
// son obligatorios; sin ellos no se persiste nada. Fecha y hora de
// inicio salen del reloj del servidor, el cliente no puede fecharlas.
func (rc *ReporteController) GuardarReporte(c *gin.Context) {
	// 16MB máximo, igual que el límite de la foto
	c.Request.ParseMultipartForm(16 << 20)

	habitacion := c.PostForm("habitacion")
	estado := c.PostForm("estado")
	if habitacion == "" || estado == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("habitación y estado son obligatorios"))
		return
	}

	tareas := c.PostFormArray("tareas[]")
	if len(tareas) == 0 {
		tareas = c.PostFormArray("tareas")
	}
	observaciones := c.PostForm("observaciones")

	userIDInterface, exists := c.Get("user_id")
	if !exists {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("no autorizado"))
		return
	}
	userID, ok := userIDInterface.(uint)
	if !ok {
		utils.RespondError(c, http.StatusInternalServerError, errors.New("user_id inválido en contexto"))
		return
	}
	nombre := c.GetString("nombre")

	ahora := time.Now()

	// Foto opcional. Extensión fuera de la lista blanca: se descarta en
	// silencio y el reporte se guarda sin foto.
	fotoPath := ""
	if file, err := c.FormFile("foto"); err == nil && file != nil && file.Filename != "" {
		if utils.ExtensionPermitida(file.Filename) {
			filename := utils.NombreFoto(habitacion, file.Filename, ahora)
			destino := filepath.Join(config.UploadDir(), filename)
			if err := os.MkdirAll(config.UploadDir(), 0755); err != nil {
				utils.RespondError(c, http.StatusInternalServerError, fmt.Errorf("error creando el directorio de fotos: %w", err))
				return
			}
			if err := c.SaveUploadedFile(file, destino); err != nil {
				utils.RespondError(c, http.StatusInternalServerError, fmt.Errorf("error guardando la foto: %w", err))
				return
			}
			// Solo el nombre generado va a la base, nunca la ruta completa
			fotoPath = filename
		}
	}

	reporte := models.Reporte{
		HabitacionNumero: habitacion,
		CamareraID:       userID,
		CamareraNombre:   nombre,
		Fecha:            ahora.Format("2006-01-02"),
		HoraInicio:       ahora.Format("15:04:05"),
		Tareas:           strings.Join(tareas, ", "),
		Estado:           estado,
		Observaciones:    observaciones,
		FotoPath:         fotoPath,
	}

	if err := rc.DB.Create(&reporte).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Reporte %d creado: habitación %s por %s", reporte.ID, habitacion, nombre)

	utils.RespondJSON(c, http.StatusCreated,
		fmt.Sprintf("Reporte de habitación %s guardado correctamente", habitacion),
		gin.H{"reporte_id": reporte.ID})
}

// GetReportesHoy lista los reportes cuya fecha coincide exactamente con
// la de hoy, los más recientes primero.
func (rc *ReporteController) GetReportesHoy(c *gin.Context) {
	hoy := time.Now().Format("2006-01-02")

	var reportes []models.Reporte
	if err := rc.DB.Where("fecha = ?", hoy).Order("hora_inicio DESC").Find(&reportes).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Reportes de hoy", reportes)
}

// GetDetalleReporte devuelve el registro completo, o 404 si el id no
// existe.
func (rc *ReporteController) GetDetalleReporte(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("id inválido"))
		return
	}

	var reporte models.Reporte
	if err := rc.DB.First(&reporte, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("reporte no encontrado"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Detalle del reporte", reporte)
}

// GetEstadisticasHoy arma los contadores del dashboard. Pendientes es
// una resta derivada, sin recorte a cero.
func (rc *ReporteController) GetEstadisticasHoy(c *gin.Context) {
	stats, err := rc.estadisticasHoy()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Estadísticas de hoy", stats)
}

func (rc *ReporteController) estadisticasHoy() (models.EstadisticasHoy, error) {
	hoy := time.Now().Format("2006-01-02")

	var stats models.EstadisticasHoy
	if err := rc.DB.Model(&models.Habitacion{}).Where("activa = ?", true).Count(&stats.Total).Error; err != nil {
		return stats, err
	}
	if err := rc.DB.Model(&models.Reporte{}).Where("fecha = ?", hoy).Count(&stats.Limpias).Error; err != nil {
		return stats, err
	}
	if err := rc.DB.Model(&models.Reporte{}).
		Where("fecha = ? AND observaciones IS NOT NULL AND observaciones <> ''", hoy).
		Count(&stats.ConObservaciones).Error; err != nil {
		return stats, err
	}
	stats.Pendientes = stats.Total - stats.Limpias
	return stats, nil
}

// Dashboard agrupa estadísticas y reportes de hoy en una sola llamada
// para la vista de la jefa.
func (rc *ReporteController) Dashboard(c *gin.Context) {
	stats, err := rc.estadisticasHoy()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	hoy := time.Now().Format("2006-01-02")
	var reportes []models.Reporte
	if err := rc.DB.Where("fecha = ?", hoy).Order("hora_inicio DESC").Find(&reportes).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Dashboard", gin.H{
		"estadisticas": stats,
		"reportes":     reportes,
	})
}

// GetAllReportes lista el historial completo (panel de admin).
func (rc *ReporteController) GetAllReportes(c *gin.Context) {
	var reportes []models.Reporte
	if err := rc.DB.Order("fecha DESC, hora_inicio DESC").Find(&reportes).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Lista de reportes", reportes)
}

// EliminarReporte borra un reporte (solo admin). Única mutación
// permitida sobre un reporte ya creado.
func (rc *ReporteController) EliminarReporte(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("id inválido"))
		return
	}

	var reporte models.Reporte
	if err := rc.DB.First(&reporte, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("reporte no encontrado"))
		return
	}

	if err := rc.DB.Delete(&reporte).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Reporte %d eliminado", reporte.ID)
	utils.RespondJSON(c, http.StatusOK, "Reporte eliminado", gin.H{"id": reporte.ID})
}

// ServirFoto entrega una foto por su nombre generado. El nombre ya viene
// saneado de origen, pero se rechaza cualquier intento de traversal y
// cualquier extensión que no sea de imagen.
func (rc *ReporteController) ServirFoto(c *gin.Context) {
	filename := c.Param("filename")
	if filename != filepath.Base(filename) || strings.Contains(filename, "..") {
		c.AbortWithStatus(http.StatusForbidden)
		return
	}
	if !utils.ExtensionPermitida(filename) {
		c.AbortWithStatus(http.StatusForbidden)
		return
	}

	ruta := filepath.Join(config.UploadDir(), filename)
	if _, err := os.Stat(ruta); err != nil {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}
	c.File(ruta)
}
