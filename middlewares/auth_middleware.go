package middlewares

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/Javy018000/formulario-camareras/utils"
	"github.com/gin-gonic/gin"
)

// SessionCookie es la cookie que guarda el token tras el login, para los
// flujos de página (el enlace del QR abre el navegador sin headers).
const SessionCookie = "session"

func extraerToken(c *gin.Context) string {
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	if cookie, err := c.Cookie(SessionCookie); err == nil && cookie != "" {
		return cookie
	}
	return c.Query("token")
}

// AuthMiddleware protege operaciones de API: sin sesión válida responde
// 401 en JSON, nunca redirige.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extraerToken(c)
		if tokenString == "" {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("no autorizado"))
			c.Abort()
			return
		}

		claims, err := utils.ParseToken(tokenString)
		if err != nil || claims == nil {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("no autorizado"))
			c.Abort()
			return
		}

		if claims.UserID == 0 {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("no autorizado"))
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("nombre", claims.Nombre)
		c.Set("rol", claims.Rol)
		c.Next()
	}
}

// AuthPageMiddleware protege vistas: sin sesión redirige a /login
// conservando el destino original en ?next=, para que el login lleve a
// la camarera de vuelta a la habitación que escaneó.
func AuthPageMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extraerToken(c)
		if tokenString != "" {
			if claims, err := utils.ParseToken(tokenString); err == nil && claims != nil && claims.UserID != 0 {
				c.Set("user_id", claims.UserID)
				c.Set("nombre", claims.Nombre)
				c.Set("rol", claims.Rol)
				c.Next()
				return
			}
		}

		destino := c.Request.URL.RequestURI()
		c.Redirect(http.StatusFound, "/login?next="+url.QueryEscape(destino))
		c.Abort()
	}
}
