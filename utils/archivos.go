package utils

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// Extensiones de imagen aceptadas para la foto del reporte.
var extensionesPermitidas = map[string]bool{
	"png":  true,
	"jpg":  true,
	"jpeg": true,
	"gif":  true,
}

var caracteresInseguros = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// ExtensionPermitida indica si el nombre de archivo tiene una extensión
// de imagen aceptada. Una foto que no pasa este filtro se descarta en
// silencio; no es un error de la petición.
func ExtensionPermitida(filename string) bool {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if ext == "" {
		return false
	}
	return extensionesPermitidas[ext]
}

// LimpiarNombreArchivo reduce el nombre original a su base y reemplaza
// todo lo que no sea alfanumérico, punto, guión o guión bajo. Evita
// path traversal vía el nombre que manda el cliente.
func LimpiarNombreArchivo(filename string) string {
	base := filepath.Base(strings.ReplaceAll(filename, "\\", "/"))
	limpio := caracteresInseguros.ReplaceAllString(base, "_")
	limpio = strings.Trim(limpio, "._")
	if limpio == "" {
		limpio = "foto"
	}
	return limpio
}

// NombreFoto arma el nombre bajo el que se guarda la foto:
// habitacion_timestamp_original. El prefijo evita colisiones entre
// envíos del mismo archivo.
func NombreFoto(habitacion, original string, ahora time.Time) string {
	return fmt.Sprintf("%s_%s_%s",
		LimpiarNombreArchivo(habitacion),
		ahora.Format("20060102_150405"),
		LimpiarNombreArchivo(original),
	)
}
