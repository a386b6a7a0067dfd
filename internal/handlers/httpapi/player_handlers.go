package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dvaquero/mazmorra/internal/errors"
	playersvc "github.com/dvaquero/mazmorra/internal/orchestrators/player"
)

type createPlayerRequest struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

func (h *Handler) getPlayerInfo(c *gin.Context) {
	out, err := h.playerService.GetPlayer(c.Request.Context(), &playersvc.GetPlayerInput{
		ID: h.playerID(c),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, out.Player)
}

func (h *Handler) getCurrentRoom(c *gin.Context) {
	out, err := h.playerService.GetCurrentRoom(c.Request.Context(), &playersvc.GetCurrentRoomInput{
		PlayerID: h.playerID(c),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, out.Room)
}

func (h *Handler) moveToRoom(c *gin.Context) {
	out, err := h.playerService.MoveToRoom(c.Request.Context(), &playersvc.MoveToRoomInput{
		PlayerID: h.playerID(c),
		RoomID:   c.Param("roomId"),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Te has movido a " + out.Room.Name,
		"room":    out.Room,
	})
}

func (h *Handler) createPlayer(c *gin.Context) {
	var req createPlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.InvalidArgument("invalid request body"))
		return
	}

	out, err := h.playerService.CreatePlayer(c.Request.Context(), &playersvc.CreatePlayerInput{
		Name: req.Name,
		ID:   req.ID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Jugador creado con éxito",
		"player":  out.Player,
	})
}
