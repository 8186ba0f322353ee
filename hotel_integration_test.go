package main

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Javy018000/formulario-camareras/database"
	"github.com/Javy018000/formulario-camareras/models"
	"github.com/Javy018000/formulario-camareras/router"
	"github.com/Javy018000/formulario-camareras/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	os.Exit(m.Run())
}

// Flujo completo del día:
// 1. Seed inicial (cuentas + habitaciones)
// 2. Login de camarera -> token
// 3. Selector de habitaciones y formulario vía QR
// 4. Envío del reporte con foto
// 5. Login de jefa -> dashboard con estadísticas y detalle
// 6. Admin borra el reporte
func TestFlujoCompletoDeLimpieza(t *testing.T) {
	db := setupIntegrationDB(t)
	r := router.SetupRouter(db)
	t.Setenv("UPLOAD_DIR", t.TempDir())

	// --- Login camarera ---
	tokenMaria := loginIntegration(t, r, "maria", "1234", "/seleccionar-habitacion")

	// --- Selector de habitaciones ---
	req, _ := http.NewRequest("GET", "/seleccionar-habitacion", nil)
	req.Header.Set("Authorization", "Bearer "+tokenMaria)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var habResp struct {
		Data []models.Habitacion `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &habResp))
	assert.Len(t, habResp.Data, 30)
	assert.Equal(t, "101", habResp.Data[0].Numero)

	// --- Formulario desde el QR ---
	req, _ = http.NewRequest("GET", "/limpiar?hab=101", nil)
	req.Header.Set("Authorization", "Bearer "+tokenMaria)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	// --- Envío del reporte ---
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	assert.NoError(t, mw.WriteField("habitacion", "101"))
	assert.NoError(t, mw.WriteField("estado", "completa"))
	assert.NoError(t, mw.WriteField("observaciones", "falta jabon"))
	assert.NoError(t, mw.WriteField("tareas[]", "cambiar sabanas"))
	assert.NoError(t, mw.WriteField("tareas[]", "aspirar"))
	fw, err := mw.CreateFormFile("foto", "bañera.jpg")
	assert.NoError(t, err)
	_, err = fw.Write([]byte("imagen-de-prueba"))
	assert.NoError(t, err)
	assert.NoError(t, mw.Close())

	req, _ = http.NewRequest("POST", "/guardar-reporte", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+tokenMaria)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)

	var crearResp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &crearResp))
	assert.Equal(t, "Reporte de habitación 101 guardado correctamente", crearResp["message"])
	reporteID := int(crearResp["data"].(map[string]interface{})["reporte_id"].(float64))

	// --- Jefa revisa el dashboard ---
	tokenJefa := loginIntegration(t, r, "jefa", "123456", "/dashboard")

	req, _ = http.NewRequest("GET", "/api/estadisticas-hoy", nil)
	req.Header.Set("Authorization", "Bearer "+tokenJefa)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var statsResp struct {
		Data models.EstadisticasHoy `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &statsResp))
	assert.Equal(t, int64(30), statsResp.Data.Total)
	assert.Equal(t, int64(1), statsResp.Data.Limpias)
	assert.Equal(t, int64(29), statsResp.Data.Pendientes)
	assert.Equal(t, int64(1), statsResp.Data.ConObservaciones)

	// --- Detalle con la cookie de página ---
	req, _ = http.NewRequest("GET", "/detalle-reporte/1", nil)
	req.AddCookie(&http.Cookie{Name: "session", Value: tokenJefa})
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var detalleResp struct {
		Data models.Reporte `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &detalleResp))
	assert.Equal(t, "101", detalleResp.Data.HabitacionNumero)
	assert.Equal(t, "María González", detalleResp.Data.CamareraNombre)
	assert.Equal(t, "cambiar sabanas, aspirar", detalleResp.Data.Tareas)
	assert.Equal(t, time.Now().Format("2006-01-02"), detalleResp.Data.Fecha)
	assert.NotEmpty(t, detalleResp.Data.FotoPath)

	// --- La foto se sirve por su nombre generado ---
	req, _ = http.NewRequest("GET", "/uploads/"+detalleResp.Data.FotoPath, nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "imagen-de-prueba", w.Body.String())

	// --- Admin borra el reporte ---
	tokenAdmin := loginIntegration(t, r, "admin", "admin123", "/admin")

	req, _ = http.NewRequest("DELETE", "/admin/reportes/1", nil)
	req.Header.Set("Authorization", "Bearer "+tokenAdmin)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var quedan int64
	db.Model(&models.Reporte{}).Where("id = ?", reporteID).Count(&quedan)
	assert.Equal(t, int64(0), quedan)
}

func setupIntegrationDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("no se pudo abrir la base de prueba: %v", err)
	}
	err = db.AutoMigrate(&models.Usuario{}, &models.Habitacion{}, &models.Reporte{})
	if err != nil {
		t.Fatal(err)
	}
	if err := database.Seed(db); err != nil {
		t.Fatal(err)
	}
	return db
}

func loginIntegration(t *testing.T, r http.Handler, usuario, password, destinoEsperado string) string {
	payload, err := json.Marshal(map[string]string{
		"usuario":  usuario,
		"password": password,
	})
	assert.NoError(t, err)

	req, err := http.NewRequest("POST", "/login", bytes.NewBuffer(payload))
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, destinoEsperado, data["destino"])

	token, ok := data["token"].(string)
	assert.True(t, ok)
	assert.NotEmpty(t, token)
	return token
}
