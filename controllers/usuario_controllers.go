package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Javy018000/formulario-camareras/middlewares"
	"github.com/Javy018000/formulario-camareras/models"
	"github.com/Javy018000/formulario-camareras/utils"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UsuarioController struct {
	DB *gorm.DB
}

func NewUsuarioController(db *gorm.DB) *UsuarioController {
	return &UsuarioController{DB: db}
}

// destinoPorRol decide a dónde mandar a cada rol después del login.
func destinoPorRol(rol string) string {
	switch rol {
	case models.RolAdmin:
		return "/admin"
	case models.RolJefa:
		return "/dashboard"
	default:
		return "/seleccionar-habitacion"
	}
}

// Login verifica credenciales contra cuentas activas y devuelve el token
// de sesión. Si venía un ?next= (QR escaneado sin sesión), el destino
// devuelto es ese en lugar del home del rol.
func (uc *UsuarioController) Login(c *gin.Context) {
	var input struct {
		Usuario  string `form:"usuario" json:"usuario" binding:"required"`
		Password string `form:"password" json:"password" binding:"required"`
	}

	if err := c.ShouldBind(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var usuario models.Usuario
	if err := uc.DB.Where("usuario = ? AND activo = ?", input.Usuario, true).First(&usuario).Error; err != nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("usuario o contraseña incorrectos"))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usuario.PasswordHash), []byte(input.Password)); err != nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("usuario o contraseña incorrectos"))
		return
	}

	token, err := utils.GenerateToken(usuario.ID, usuario.Nombre, usuario.Rol)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	destino := destinoPorRol(usuario.Rol)
	if next := c.Query("next"); next != "" {
		destino = next
	} else if next := c.PostForm("next"); next != "" {
		destino = next
	}

	// Cookie para los flujos de página; el token del cuerpo sirve igual
	// como Bearer para llamadas de API.
	c.SetCookie(middlewares.SessionCookie, token, 60*60*24, "/", "", false, true)

	utils.InfoLogger.Printf("Login correcto: %s (rol=%s)", usuario.Username, usuario.Rol)

	utils.RespondJSON(c, http.StatusOK, "Login correcto", gin.H{
		"token":   token,
		"nombre":  usuario.Nombre,
		"rol":     usuario.Rol,
		"destino": destino,
	})
}

// Logout limpia la cookie de sesión.
func (uc *UsuarioController) Logout(c *gin.Context) {
	c.SetCookie(middlewares.SessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/login")
}

// GetPerfil devuelve la cuenta de la sesión actual.
func (uc *UsuarioController) GetPerfil(c *gin.Context) {
	userIDInterface, exists := c.Get("user_id")
	if !exists {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("no autorizado"))
		return
	}

	userID, ok := userIDInterface.(uint)
	if !ok {
		utils.RespondError(c, http.StatusInternalServerError, errors.New("user_id inválido en contexto"))
		return
	}

	var usuario models.Usuario
	if err := uc.DB.First(&usuario, userID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Perfil", gin.H{
		"id":      usuario.ID,
		"nombre":  usuario.Nombre,
		"usuario": usuario.Username,
		"rol":     usuario.Rol,
	})
}

// GetAllUsuarios lista todas las cuentas (panel de admin).
func (uc *UsuarioController) GetAllUsuarios(c *gin.Context) {
	var usuarios []models.Usuario
	if err := uc.DB.Find(&usuarios).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Lista de usuarios", usuarios)
}

// CrearUsuario da de alta una cuenta. El nombre de usuario debe ser único.
func (uc *UsuarioController) CrearUsuario(c *gin.Context) {
	var req struct {
		Nombre   string `form:"nombre" json:"nombre" binding:"required"`
		Usuario  string `form:"usuario" json:"usuario" binding:"required"`
		Password string `form:"password" json:"password" binding:"required"`
		Rol      string `form:"rol" json:"rol" binding:"required"`
	}

	if err := c.ShouldBind(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if !models.RolValido(req.Rol) {
		utils.RespondError(c, http.StatusBadRequest, errors.New("rol desconocido: "+req.Rol))
		return
	}

	var existentes int64
	uc.DB.Model(&models.Usuario{}).Where("usuario = ?", req.Usuario).Count(&existentes)
	if existentes > 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("el usuario ya existe"))
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	usuario := models.Usuario{
		Nombre:       req.Nombre,
		Username:     req.Usuario,
		PasswordHash: string(hash),
		Rol:          req.Rol,
		Activo:       true,
	}

	if err := uc.DB.Create(&usuario).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Usuario creado: %s (rol=%s)", usuario.Username, usuario.Rol)
	utils.RespondJSON(c, http.StatusCreated, "Usuario creado", gin.H{
		"id": usuario.ID,
	})
}

// ActualizarUsuario aplica una edición parcial. Password en blanco
// significa no tocar la contraseña actual.
func (uc *UsuarioController) ActualizarUsuario(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("id inválido"))
		return
	}

	var req struct {
		Nombre   string `form:"nombre" json:"nombre"`
		Usuario  string `form:"usuario" json:"usuario"`
		Password string `form:"password" json:"password"`
		Rol      string `form:"rol" json:"rol"`
	}

	if err := c.ShouldBind(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var usuario models.Usuario
	if err := uc.DB.First(&usuario, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if req.Nombre != "" {
		usuario.Nombre = req.Nombre
	}
	if req.Usuario != "" && req.Usuario != usuario.Username {
		var existentes int64
		uc.DB.Model(&models.Usuario{}).Where("usuario = ? AND id <> ?", req.Usuario, usuario.ID).Count(&existentes)
		if existentes > 0 {
			utils.RespondError(c, http.StatusBadRequest, errors.New("el usuario ya existe"))
			return
		}
		usuario.Username = req.Usuario
	}
	if req.Rol != "" {
		if !models.RolValido(req.Rol) {
			utils.RespondError(c, http.StatusBadRequest, errors.New("rol desconocido: "+req.Rol))
			return
		}
		usuario.Rol = req.Rol
	}
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
		usuario.PasswordHash = string(hash)
	}

	if err := uc.DB.Save(&usuario).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Usuario actualizado", usuario)
}

// EliminarUsuario borra la cuenta. Los reportes históricos conservan su
// copia del nombre y del id, así que no se tocan.
func (uc *UsuarioController) EliminarUsuario(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("id inválido"))
		return
	}

	var usuario models.Usuario
	if err := uc.DB.First(&usuario, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if err := uc.DB.Delete(&usuario).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Usuario %d eliminado", usuario.ID)
	utils.RespondJSON(c, http.StatusOK, "Usuario eliminado", gin.H{"id": usuario.ID})
}
