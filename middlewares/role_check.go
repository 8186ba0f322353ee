package middlewares

import (
	"errors"
	"net/http"

	"github.com/Javy018000/formulario-camareras/utils"
	"github.com/gin-gonic/gin"
)

func rolPermitido(c *gin.Context, roles []string) bool {
	rolInterface, exists := c.Get("rol")
	if !exists {
		return false
	}
	rol, ok := rolInterface.(string)
	if !ok {
		return false
	}
	// Comparación literal contra el conjunto declarado. No hay jerarquía:
	// admin no pasa por una puerta de camarera salvo que la ruta lo liste.
	for _, r := range roles {
		if rol == r {
			return true
		}
	}
	return false
}

// RequireRoles corta operaciones de API cuando el rol de la sesión no
// está en el conjunto permitido. Responde 401 en JSON.
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rolPermitido(c, roles) {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("no autorizado"))
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireRolesPage hace lo mismo para vistas: rol equivocado vuelve al
// login en lugar de recibir JSON.
func RequireRolesPage(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rolPermitido(c, roles) {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}
