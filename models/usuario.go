package models

import "time"

// Roles del sistema. Conjunto cerrado, sin jerarquía: un admin NO pasa
// por las puertas de camarera o jefa.
const (
	RolAdmin    = "admin"
	RolJefa     = "jefa"
	RolCamarera = "camarera"
)

type Usuario struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Nombre       string    `gorm:"type:varchar(255);not null" json:"nombre"`
	Username     string    `gorm:"column:usuario;type:varchar(100);unique;not null" json:"usuario"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	Rol          string    `gorm:"type:varchar(20);not null" json:"rol"`
	Activo       bool      `gorm:"not null;default:true" json:"activo"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Usuario) TableName() string {
	return "usuarios"
}

// RolValido valida contra el conjunto cerrado de roles.
func RolValido(rol string) bool {
	return rol == RolAdmin || rol == RolJefa || rol == RolCamarera
}
