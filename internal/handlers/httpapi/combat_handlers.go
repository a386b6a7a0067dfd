package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dvaquero/mazmorra/internal/entities"
	"github.com/dvaquero/mazmorra/internal/errors"
	combatsvc "github.com/dvaquero/mazmorra/internal/orchestrators/combat"
)

// DrawMarker is reported as the winner when neither side went down
const DrawMarker = "empate"

// characterResponse is a combatant plus the player-only level field
type characterResponse struct {
	entities.Combatant
	Level int `json:"level,omitempty"`
}

func (h *Handler) getCharacterAttributes(c *gin.Context) {
	out, err := h.combatService.GetCharacter(c.Request.Context(), &combatsvc.GetCharacterInput{
		ID: c.Param("id"),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, characterResponse{
		Combatant: *out.Character,
		Level:     out.Level,
	})
}

func (h *Handler) startCombat(c *gin.Context) {
	p1 := c.Query("p1")
	p2 := c.Query("p2")
	if p1 == "" || p2 == "" {
		respondError(c, errors.InvalidArgument("two characters are required (p1 and p2)"))
		return
	}

	out, err := h.combatService.ResolveCombat(c.Request.Context(), &combatsvc.ResolveCombatInput{
		CombatantID1: p1,
		CombatantID2: p2,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	winner := out.WinnerID
	if out.Draw {
		winner = DrawMarker
	}

	c.JSON(http.StatusOK, gin.H{
		"combatLog":  out.Log,
		"finalState": out.FinalState,
		"winner":     winner,
	})
}

func (h *Handler) updateCharacterAttributes(c *gin.Context) {
	var update entities.AttributeUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		respondError(c, errors.InvalidArgument("invalid request body"))
		return
	}

	out, err := h.combatService.UpdateCharacter(c.Request.Context(), &combatsvc.UpdateCharacterInput{
		ID:     c.Param("id"),
		Update: update,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	message := "Atributos actualizados correctamente"
	if out.Character.Kind == entities.KindEnemy {
		message = "Atributos del enemigo actualizados correctamente"
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   message,
		"character": out.Character,
	})
}
