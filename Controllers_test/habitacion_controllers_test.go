package Controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/Javy018000/formulario-camareras/controllers"
	"github.com/Javy018000/formulario-camareras/middlewares"
	"github.com/Javy018000/formulario-camareras/models"
	"github.com/Javy018000/formulario-camareras/utils"
)

func setupHabitacionRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	habitacionCtrl := controllers.NewHabitacionController(db)

	camarera := r.Group("/")
	camarera.Use(middlewares.AuthMiddleware(), middlewares.RequireRoles(models.RolCamarera))
	{
		camarera.GET("/seleccionar-habitacion", habitacionCtrl.GetHabitacionesActivas)
	}

	admin := r.Group("/admin")
	admin.Use(middlewares.AuthMiddleware(), middlewares.RequireRoles(models.RolAdmin))
	{
		admin.GET("/habitaciones", habitacionCtrl.GetAllHabitaciones)
		admin.POST("/habitaciones", habitacionCtrl.CrearHabitacion)
		admin.DELETE("/habitaciones/:id", habitacionCtrl.EliminarHabitacion)
	}
	return r
}

func TestHabitacionesActivasOrdenadas(t *testing.T) {
	utils.InitLogger()
	db := setupTestDB(t)
	maria := crearUsuarioTest(t, db, "María González", "maria", "1234", models.RolCamarera)

	assert.NoError(t, db.Create(&models.Habitacion{Numero: "205", Piso: 2, Tipo: "Doble", Activa: true}).Error)
	assert.NoError(t, db.Create(&models.Habitacion{Numero: "101", Piso: 1, Tipo: "Sencilla", Activa: true}).Error)
	assert.NoError(t, db.Create(&models.Habitacion{Numero: "110", Piso: 1, Tipo: "Doble", Activa: false}).Error)

	r := setupHabitacionRouter(db)
	token, _ := utils.GenerateToken(maria.ID, maria.Nombre, maria.Rol)

	req, _ := http.NewRequest("GET", "/seleccionar-habitacion", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []models.Habitacion `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	// La inactiva no aparece y el orden es por número
	assert.Len(t, resp.Data, 2)
	assert.Equal(t, "101", resp.Data[0].Numero)
	assert.Equal(t, "205", resp.Data[1].Numero)
}

func TestCrearHabitacionDuplicada(t *testing.T) {
	utils.InitLogger()
	db := setupTestDB(t)
	admin := crearUsuarioTest(t, db, "Administrador", "admin", "admin123", models.RolAdmin)
	assert.NoError(t, db.Create(&models.Habitacion{Numero: "101", Piso: 1, Tipo: "Sencilla", Activa: true}).Error)

	r := setupHabitacionRouter(db)
	token, _ := utils.GenerateToken(admin.ID, admin.Nombre, admin.Rol)

	payload, _ := json.Marshal(map[string]interface{}{
		"numero": "101",
		"piso":   1,
		"tipo":   "Doble",
	})
	req, _ := http.NewRequest("POST", "/admin/habitaciones", bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var total int64
	db.Model(&models.Habitacion{}).Count(&total)
	assert.Equal(t, int64(1), total)
}

func TestEliminarHabitacionNoTocaReportes(t *testing.T) {
	utils.InitLogger()
	db := setupTestDB(t)
	admin := crearUsuarioTest(t, db, "Administrador", "admin", "admin123", models.RolAdmin)

	hab := models.Habitacion{Numero: "301", Piso: 3, Tipo: "Sencilla", Activa: true}
	assert.NoError(t, db.Create(&hab).Error)

	reporte := models.Reporte{
		HabitacionNumero: "301",
		CamareraID:       7,
		CamareraNombre:   "Carmen Ruiz",
		Fecha:            time.Now().Format("2006-01-02"),
		HoraInicio:       "09:30:00",
		Tareas:           "cambiar sabanas",
		Estado:           "completa",
	}
	assert.NoError(t, db.Create(&reporte).Error)

	r := setupHabitacionRouter(db)
	token, _ := utils.GenerateToken(admin.ID, admin.Nombre, admin.Rol)

	req, _ := http.NewRequest("DELETE", "/admin/habitaciones/1", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var habitaciones int64
	db.Model(&models.Habitacion{}).Count(&habitaciones)
	assert.Equal(t, int64(0), habitaciones)

	// El reporte huérfano queda intacto
	var sobreviviente models.Reporte
	assert.NoError(t, db.First(&sobreviviente, reporte.ID).Error)
	assert.Equal(t, "301", sobreviviente.HabitacionNumero)
}
