package utils

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var JWTSecret []byte

func init() {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		// Secret por defecto solo para desarrollo
		secret = "cambia-esta-clave-en-produccion"
	}
	JWTSecret = []byte(secret)
}

// CustomClaims es la sesión: {id de cuenta, nombre, rol}. El nombre viaja
// en el token porque el reporte guarda una copia del nombre de quien lo
// crea, sin consultar de nuevo la cuenta.
type CustomClaims struct {
	UserID uint   `json:"user_id"`
	Nombre string `json:"nombre"`
	Rol    string `json:"rol"`
	jwt.RegisteredClaims
}

func GenerateToken(userID uint, nombre, rol string) (string, error) {
	claims := &CustomClaims{
		UserID: userID,
		Nombre: nombre,
		Rol:    rol,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour * 24)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "FormularioCamareras",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(JWTSecret)
}

func ParseToken(tokenString string) (*CustomClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		return JWTSecret, nil
	})

	if err != nil || !token.Valid {
		return nil, errors.New("token inválido o expirado")
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok {
		return nil, errors.New("claims de token inválidos")
	}

	return claims, nil
}
