package models

import "time"

// Reporte es el registro inmutable de una limpieza. HabitacionNumero y
// CamareraNombre se guardan desnormalizados: el reporte conserva lo que
// era cierto al momento de crearlo aunque la habitación se borre o la
// cuenta cambie de nombre después.
//
// Fecha se guarda como texto "2006-01-02" y las consultas de "hoy"
// comparan por igualdad exacta de cadena, nunca por rango.
type Reporte struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	HabitacionNumero string    `gorm:"type:varchar(50);not null" json:"habitacion_numero"`
	CamareraID       uint      `gorm:"not null" json:"camarera_id"`
	CamareraNombre   string    `gorm:"type:varchar(255);not null" json:"camarera_nombre"`
	Fecha            string    `gorm:"type:varchar(10);not null;index" json:"fecha"`
	HoraInicio       string    `gorm:"type:varchar(8);not null" json:"hora_inicio"`
	HoraFin          string    `gorm:"type:varchar(8)" json:"hora_fin"`
	Tareas           string    `gorm:"type:text;not null" json:"tareas_realizadas"`
	Estado           string    `gorm:"type:varchar(50);not null" json:"estado"`
	Observaciones    string    `gorm:"type:text" json:"observaciones"`
	FotoPath         string    `gorm:"type:varchar(255)" json:"foto_path"`
	Aprobado         bool      `gorm:"not null;default:false" json:"aprobado"`
	CreatedAt        time.Time `json:"created_at"`
}

func (Reporte) TableName() string {
	return "reportes"
}

// EstadisticasHoy agrupa los contadores del dashboard de la jefa.
// Pendientes es total - limpias sin recorte: dos reportes de la misma
// habitación en un día lo dejan en negativo, igual que el papel.
type EstadisticasHoy struct {
	Total            int64 `json:"total"`
	Limpias          int64 `json:"limpias"`
	Pendientes       int64 `json:"pendientes"`
	ConObservaciones int64 `json:"con_observaciones"`
}
