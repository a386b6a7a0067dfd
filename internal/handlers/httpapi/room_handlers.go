package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	roomsvc "github.com/dvaquero/mazmorra/internal/orchestrators/room"
)

func (h *Handler) getVisitedRooms(c *gin.Context) {
	out, err := h.roomService.ListVisitedRooms(c.Request.Context(), &roomsvc.ListVisitedRoomsInput{})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, out.Rooms)
}

func (h *Handler) getRoomByID(c *gin.Context) {
	out, err := h.roomService.GetRoom(c.Request.Context(), &roomsvc.GetRoomInput{
		ID: c.Param("id"),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, out.Room)
}

func (h *Handler) getAdjacentRooms(c *gin.Context) {
	out, err := h.roomService.GetAdjacentRooms(c.Request.Context(), &roomsvc.GetAdjacentRoomsInput{
		ID: c.Param("id"),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, out.Rooms)
}

func (h *Handler) getAllRooms(c *gin.Context) {
	out, err := h.roomService.ListAllRooms(c.Request.Context(), &roomsvc.ListAllRoomsInput{})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, out.Rooms)
}
