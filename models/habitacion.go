package models

import "time"

// Habitacion es una habitación del hotel. Numero es texto para admitir
// formatos no numéricos ("101-B", "PH2").
type Habitacion struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Numero    string    `gorm:"type:varchar(50);unique;not null" json:"numero"`
	Piso      int       `gorm:"not null" json:"piso"`
	Tipo      string    `gorm:"type:varchar(100)" json:"tipo"`
	Activa    bool      `gorm:"not null;default:true" json:"activa"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Habitacion) TableName() string {
	return "habitaciones"
}
