package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dvaquero/mazmorra/internal/errors"
	authsvc "github.com/dvaquero/mazmorra/internal/orchestrators/auth"
)

type registerRequest struct {
	Name string `json:"name"`
}

type loginRequest struct {
	PlayerID string `json:"playerId"`
}

func (h *Handler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.InvalidArgument("invalid request body"))
		return
	}

	out, err := h.authService.Register(c.Request.Context(), &authsvc.RegisterInput{Name: req.Name})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Jugador registrado con éxito",
		"token":   out.Token,
		"player":  out.Player,
	})
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.InvalidArgument("invalid request body"))
		return
	}

	out, err := h.authService.Login(c.Request.Context(), &authsvc.LoginInput{PlayerID: req.PlayerID})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Inicio de sesión exitoso",
		"token":   out.Token,
		"player":  out.Player,
	})
}
