// Package httpapi exposes the game over HTTP. Routes, response shapes,
// and the Spanish-language messages form the public API surface; the
// handlers stay thin and delegate every decision to the orchestrators.
package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	tokens "github.com/dvaquero/mazmorra/internal/auth"
	"github.com/dvaquero/mazmorra/internal/errors"
	authsvc "github.com/dvaquero/mazmorra/internal/orchestrators/auth"
	combatsvc "github.com/dvaquero/mazmorra/internal/orchestrators/combat"
	playersvc "github.com/dvaquero/mazmorra/internal/orchestrators/player"
	roomsvc "github.com/dvaquero/mazmorra/internal/orchestrators/room"
)

// DefaultPlayerID is used on player routes when no id is given and no
// token identifies the caller
const DefaultPlayerID = "player1"

// Config holds the dependencies for the HTTP handler
type Config struct {
	PlayerService playersvc.Service
	RoomService   roomsvc.Service
	CombatService combatsvc.Service
	AuthService   authsvc.Service
	TokenIssuer   *tokens.Issuer
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.PlayerService == nil {
		vb.RequiredField("PlayerService")
	}
	if c.RoomService == nil {
		vb.RequiredField("RoomService")
	}
	if c.CombatService == nil {
		vb.RequiredField("CombatService")
	}
	if c.AuthService == nil {
		vb.RequiredField("AuthService")
	}
	if c.TokenIssuer == nil {
		vb.RequiredField("TokenIssuer")
	}

	return vb.Build()
}

// Handler wires the orchestrators to gin routes
type Handler struct {
	playerService playersvc.Service
	roomService   roomsvc.Service
	combatService combatsvc.Service
	authService   authsvc.Service
	issuer        *tokens.Issuer
}

// NewHandler creates an HTTP handler with the provided dependencies
func NewHandler(cfg *Config) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Handler{
		playerService: cfg.PlayerService,
		roomService:   cfg.RoomService,
		combatService: cfg.CombatService,
		authService:   cfg.AuthService,
		issuer:        cfg.TokenIssuer,
	}, nil
}

// RegisterRoutes attaches every route to the gin engine
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", h.welcome)

	auth := r.Group("/auth")
	{
		auth.POST("/register", h.register)
		auth.POST("/login", h.login)
	}

	player := r.Group("/jugador", h.OptionalAuth())
	{
		player.GET("", h.getPlayerInfo)
		player.GET("/habitacion", h.getCurrentRoom)
		player.GET("/:id", h.getPlayerInfo)
		player.GET("/:id/habitacion", h.getCurrentRoom)
		player.PUT("/habitacion/:roomId", h.moveToRoom)
		player.PUT("/:id/habitacion/:roomId", h.moveToRoom)
		player.POST("", h.createPlayer)
	}

	rooms := r.Group("/habitaciones", h.OptionalAuth())
	{
		rooms.GET("", h.getVisitedRooms)
		rooms.GET("/admin/all", h.RequireAuth(), h.getAllRooms)
		rooms.GET("/:id", h.getRoomByID)
		rooms.GET("/:id/adyacentes", h.getAdjacentRooms)
	}

	combat := r.Group("/combate", h.OptionalAuth())
	{
		combat.GET("/:id", h.getCharacterAttributes)
		combat.POST("", h.startCombat)
		combat.PUT("/:id", h.updateCharacterAttributes)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Ruta no encontrada"})
	})
}

// respondError maps a coded error to its HTTP status and a JSON body
func respondError(c *gin.Context, err error) {
	c.JSON(errors.GetCode(err).HTTPStatus(), gin.H{"error": errors.GetMessage(err)})
}

// playerID resolves the player a route acts on: the path parameter
// first, then the authenticated identity, then the default player.
func (h *Handler) playerID(c *gin.Context) string {
	if id := c.Param("id"); id != "" {
		return id
	}
	if id := authenticatedPlayerID(c); id != "" {
		return id
	}
	return DefaultPlayerID
}

func (h *Handler) welcome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Bienvenido a la API del juego de rol",
		"endpoints": gin.H{
			"jugador":      "/jugador",
			"habitaciones": "/habitaciones",
			"combate":      "/combate",
		},
	})
}
