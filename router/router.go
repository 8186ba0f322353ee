package router

import (
	"net/http"

	"github.com/Javy018000/formulario-camareras/controllers"
	"github.com/Javy018000/formulario-camareras/middlewares"
	"github.com/Javy018000/formulario-camareras/models"
	"github.com/Javy018000/formulario-camareras/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	// 50 peticiones por segundo por IP; antes de registrar rutas, porque
	// gin congela la cadena de middleware de cada ruta al declararla
	rateLimiter := middlewares.NewRateLimiter(50, 1)
	r.Use(rateLimiter.RateLimit())

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	usuarioCtrl := controllers.NewUsuarioController(db)
	habitacionCtrl := controllers.NewHabitacionController(db)
	reporteCtrl := controllers.NewReporteController(db)
	adminCtrl := controllers.NewAdminController(db)

	// ----------------------------------------------------------------
	//                      RUTAS PÚBLICAS
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Raíz: despacha según el rol de la sesión, o al login
	r.GET("/", func(c *gin.Context) {
		token, err := c.Cookie(middlewares.SessionCookie)
		if err != nil || token == "" {
			c.Redirect(http.StatusFound, "/login")
			return
		}
		claims, err := utils.ParseToken(token)
		if err != nil {
			c.Redirect(http.StatusFound, "/login")
			return
		}
		switch claims.Rol {
		case models.RolAdmin:
			c.Redirect(http.StatusFound, "/admin")
		case models.RolJefa:
			c.Redirect(http.StatusFound, "/dashboard")
		default:
			c.Redirect(http.StatusFound, "/seleccionar-habitacion")
		}
	})

	// GET /login devuelve los datos del formulario; el ?next= del QR se
	// devuelve tal cual para que el POST lo conserve
	r.GET("/login", func(c *gin.Context) {
		utils.RespondJSON(c, http.StatusOK, "Login", gin.H{
			"next": c.Query("next"),
		})
	})

	public := r.Group("/")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/login", usuarioCtrl.Login)
	}

	r.GET("/logout", usuarioCtrl.Logout)

	// Fotos de reportes. Solo nombres generados por el servidor, con
	// extensión de imagen; sin sesión, igual que en el sistema original.
	r.GET("/uploads/:filename", reporteCtrl.ServirFoto)

	// ----------------------------------------------------------------
	//                      CAMARERA
	// ----------------------------------------------------------------
	camarera := r.Group("/")
	camarera.Use(middlewares.AuthPageMiddleware(), middlewares.RequireRolesPage(models.RolCamarera))
	{
		camarera.GET("/seleccionar-habitacion", habitacionCtrl.GetHabitacionesActivas)
		camarera.GET("/limpiar", reporteCtrl.FormularioLimpieza)
	}

	camareraAPI := r.Group("/")
	camareraAPI.Use(middlewares.AuthMiddleware(), middlewares.RequireRoles(models.RolCamarera))
	{
		camareraAPI.POST("/guardar-reporte", reporteCtrl.GuardarReporte)
	}

	// ----------------------------------------------------------------
	//                      JEFA
	// ----------------------------------------------------------------
	jefa := r.Group("/")
	jefa.Use(middlewares.AuthPageMiddleware(), middlewares.RequireRolesPage(models.RolJefa))
	{
		jefa.GET("/dashboard", reporteCtrl.Dashboard)
		jefa.GET("/detalle-reporte/:id", reporteCtrl.GetDetalleReporte)
	}

	jefaAPI := r.Group("/api")
	jefaAPI.Use(middlewares.AuthMiddleware(), middlewares.RequireRoles(models.RolJefa))
	{
		jefaAPI.GET("/reportes-hoy", reporteCtrl.GetReportesHoy)
		jefaAPI.GET("/estadisticas-hoy", reporteCtrl.GetEstadisticasHoy)
	}

	// ----------------------------------------------------------------
	//                      ADMIN
	// ----------------------------------------------------------------
	adminPage := r.Group("/")
	adminPage.Use(middlewares.AuthPageMiddleware(), middlewares.RequireRolesPage(models.RolAdmin))
	{
		adminPage.GET("/admin", adminCtrl.GetPanel)
	}

	admin := r.Group("/admin")
	admin.Use(middlewares.AuthMiddleware(), middlewares.RequireRoles(models.RolAdmin))
	{
		admin.GET("/usuarios", usuarioCtrl.GetAllUsuarios)
		admin.POST("/usuarios", usuarioCtrl.CrearUsuario)
		admin.PATCH("/usuarios/:id", usuarioCtrl.ActualizarUsuario)
		admin.DELETE("/usuarios/:id", usuarioCtrl.EliminarUsuario)

		admin.GET("/habitaciones", habitacionCtrl.GetAllHabitaciones)
		admin.POST("/habitaciones", habitacionCtrl.CrearHabitacion)
		admin.PATCH("/habitaciones/:id", habitacionCtrl.ActualizarHabitacion)
		admin.DELETE("/habitaciones/:id", habitacionCtrl.EliminarHabitacion)

		admin.GET("/reportes", reporteCtrl.GetAllReportes)
		admin.DELETE("/reportes/:id", reporteCtrl.EliminarReporte)
	}

	// Perfil para cualquier sesión válida, sin filtro de rol
	perfil := r.Group("/")
	perfil.Use(middlewares.AuthMiddleware())
	{
		perfil.GET("/perfil", usuarioCtrl.GetPerfil)
	}

	return r
}
