package httpapi_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"

	tokens "github.com/dvaquero/mazmorra/internal/auth"
	"github.com/dvaquero/mazmorra/internal/engine"
	"github.com/dvaquero/mazmorra/internal/entities"
	"github.com/dvaquero/mazmorra/internal/handlers/httpapi"
	authsvc "github.com/dvaquero/mazmorra/internal/orchestrators/auth"
	combatsvc "github.com/dvaquero/mazmorra/internal/orchestrators/combat"
	playersvc "github.com/dvaquero/mazmorra/internal/orchestrators/player"
	roomsvc "github.com/dvaquero/mazmorra/internal/orchestrators/room"
	"github.com/dvaquero/mazmorra/internal/pkg/clock"
	"github.com/dvaquero/mazmorra/internal/pkg/dice"
	"github.com/dvaquero/mazmorra/internal/pkg/idgen"
	playerrepo "github.com/dvaquero/mazmorra/internal/repositories/player"
	worldrepo "github.com/dvaquero/mazmorra/internal/repositories/world"
	"github.com/dvaquero/mazmorra/internal/testutils"
)

type HandlerTestSuite struct {
	suite.Suite
	router *gin.Engine
	issuer *tokens.Issuer
}

func (s *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	playerRepo := playerrepo.NewInMemory()

	world := testutils.CreateTestWorld(3, 3)
	world.Rooms[0].Enemies = []entities.Combatant{
		{
			ID: "enemy-0-0-0", Name: "rata", Kind: entities.KindEnemy,
			Health: 1, MaxHealth: 1, Attack: 1, Defense: 0, Magic: 0, Strength: 0,
		},
	}
	worldRepo := worldrepo.NewInMemory(world)

	playerService, err := playersvc.NewOrchestrator(&playersvc.Config{
		PlayerRepo:  playerRepo,
		WorldRepo:   worldRepo,
		IDGenerator: idgen.NewSequential("player"),
	})
	s.Require().NoError(err)

	roomService, err := roomsvc.NewOrchestrator(&roomsvc.Config{WorldRepo: worldRepo})
	s.Require().NoError(err)

	eng, err := engine.New(&engine.Config{Roller: dice.NewSeeded(11, 11)})
	s.Require().NoError(err)

	combatService, err := combatsvc.NewOrchestrator(&combatsvc.Config{
		PlayerRepo: playerRepo,
		WorldRepo:  worldRepo,
		Engine:     eng,
	})
	s.Require().NoError(err)

	s.issuer, err = tokens.NewIssuer(&tokens.Config{Secret: "test-secret", Clock: clock.New()})
	s.Require().NoError(err)

	authService, err := authsvc.NewOrchestrator(&authsvc.Config{
		PlayerService: playerService,
		PlayerRepo:    playerRepo,
		TokenIssuer:   s.issuer,
	})
	s.Require().NoError(err)

	handler, err := httpapi.NewHandler(&httpapi.Config{
		PlayerService: playerService,
		RoomService:   roomService,
		CombatService: combatService,
		AuthService:   authService,
		TokenIssuer:   s.issuer,
	})
	s.Require().NoError(err)

	s.router = gin.New()
	handler.RegisterRoutes(s.router)

	// the default player, as seeded at server startup
	_, err = playerService.CreatePlayer(context.Background(), &playersvc.CreatePlayerInput{
		Name: "Aventurero",
		ID:   httpapi.DefaultPlayerID,
	})
	s.Require().NoError(err)
}

func (s *HandlerTestSuite) request(method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *HandlerTestSuite) decode(w *httptest.ResponseRecorder) map[string]any {
	var body map[string]any
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func (s *HandlerTestSuite) bearer(playerID string) map[string]string {
	token, err := s.issuer.Issue(playerID)
	s.Require().NoError(err)
	return map[string]string{"Authorization": "Bearer " + token}
}

func (s *HandlerTestSuite) TestWelcome() {
	w := s.request(http.MethodGet, "/", "", nil)
	s.Equal(http.StatusOK, w.Code)
	s.Equal("Bienvenido a la API del juego de rol", s.decode(w)["message"])
}

func (s *HandlerTestSuite) TestUnknownRoute() {
	w := s.request(http.MethodGet, "/no-existe", "", nil)
	s.Equal(http.StatusNotFound, w.Code)
	s.Equal("Ruta no encontrada", s.decode(w)["error"])
}

func (s *HandlerTestSuite) TestGetDefaultPlayer() {
	w := s.request(http.MethodGet, "/jugador", "", nil)
	s.Equal(http.StatusOK, w.Code)

	body := s.decode(w)
	s.Equal("player1", body["id"])
	s.Equal("Aventurero", body["name"])
	s.Equal(float64(100), body["health"])
}

func (s *HandlerTestSuite) TestGetPlayerNotFound() {
	w := s.request(http.MethodGet, "/jugador/ghost", "", nil)
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *HandlerTestSuite) TestTokenIdentifiesPlayerOnPlayerRoutes() {
	w := s.request(http.MethodPost, "/auth/register", `{"name":"Lira"}`, nil)
	s.Require().Equal(http.StatusCreated, w.Code)
	body := s.decode(w)
	token := body["token"].(string)
	playerID := body["player"].(map[string]any)["id"].(string)

	w = s.request(http.MethodGet, "/jugador", "", map[string]string{
		"Authorization": "Bearer " + token,
	})
	s.Equal(http.StatusOK, w.Code)
	s.Equal(playerID, s.decode(w)["id"])
}

func (s *HandlerTestSuite) TestCreatePlayer() {
	w := s.request(http.MethodPost, "/jugador", `{"name":"Lira","id":"lira"}`, nil)
	s.Equal(http.StatusCreated, w.Code)

	body := s.decode(w)
	s.Equal("Jugador creado con éxito", body["message"])
	s.Equal("lira", body["player"].(map[string]any)["id"])
}

func (s *HandlerTestSuite) TestCreatePlayerValidation() {
	w := s.request(http.MethodPost, "/jugador", `{}`, nil)
	s.Equal(http.StatusBadRequest, w.Code)

	// duplicate id reads as a validation failure too
	w = s.request(http.MethodPost, "/jugador", `{"name":"Otro","id":"player1"}`, nil)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlerTestSuite) TestGetCurrentRoom() {
	w := s.request(http.MethodGet, "/jugador/habitacion", "", nil)
	s.Equal(http.StatusOK, w.Code)
	s.Equal("0-0", s.decode(w)["id"])
}

func (s *HandlerTestSuite) TestMoveToRoom() {
	w := s.request(http.MethodPut, "/jugador/habitacion/1-0", "", nil)
	s.Equal(http.StatusOK, w.Code)

	body := s.decode(w)
	s.Equal("Te has movido a Sala 1-0", body["message"])

	w = s.request(http.MethodGet, "/jugador", "", nil)
	s.Equal("1-0", s.decode(w)["currentRoom"])
}

func (s *HandlerTestSuite) TestMoveToNonAdjacentRoom() {
	w := s.request(http.MethodPut, "/jugador/habitacion/2-2", "", nil)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlerTestSuite) TestVisitedRooms() {
	w := s.request(http.MethodGet, "/habitaciones", "", nil)
	s.Equal(http.StatusOK, w.Code)

	var rooms []map[string]any
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &rooms))
	s.Len(rooms, 1) // only the spawn room so far
}

func (s *HandlerTestSuite) TestRoomGate() {
	w := s.request(http.MethodGet, "/habitaciones/1-1", "", nil)
	s.Equal(http.StatusForbidden, w.Code)

	w = s.request(http.MethodGet, "/habitaciones/9-9", "", nil)
	s.Equal(http.StatusNotFound, w.Code)

	w = s.request(http.MethodGet, "/habitaciones/0-0", "", nil)
	s.Equal(http.StatusOK, w.Code)
}

func (s *HandlerTestSuite) TestAdjacentRooms() {
	w := s.request(http.MethodGet, "/habitaciones/0-0/adyacentes", "", nil)
	s.Equal(http.StatusOK, w.Code)

	var rooms []map[string]any
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &rooms))
	s.Len(rooms, 2)
}

func (s *HandlerTestSuite) TestAdminListingRequiresToken() {
	w := s.request(http.MethodGet, "/habitaciones/admin/all", "", nil)
	s.Equal(http.StatusUnauthorized, w.Code)

	w = s.request(http.MethodGet, "/habitaciones/admin/all", "", map[string]string{
		"Authorization": "Bearer garbage",
	})
	s.Equal(http.StatusUnauthorized, w.Code)

	w = s.request(http.MethodGet, "/habitaciones/admin/all", "", s.bearer("player1"))
	s.Equal(http.StatusOK, w.Code)

	var rooms []map[string]any
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &rooms))
	s.Len(rooms, 9)
}

func (s *HandlerTestSuite) TestRegisterValidation() {
	w := s.request(http.MethodPost, "/auth/register", `{}`, nil)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlerTestSuite) TestLogin() {
	w := s.request(http.MethodPost, "/auth/login", `{"playerId":"player1"}`, nil)
	s.Equal(http.StatusOK, w.Code)

	body := s.decode(w)
	s.Equal("Inicio de sesión exitoso", body["message"])
	s.NotEmpty(body["token"])

	w = s.request(http.MethodPost, "/auth/login", `{"playerId":"ghost"}`, nil)
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *HandlerTestSuite) TestGetCharacterAttributes() {
	w := s.request(http.MethodGet, "/combate/player1", "", nil)
	s.Equal(http.StatusOK, w.Code)
	body := s.decode(w)
	s.Equal("player", body["type"])
	s.Equal(float64(1), body["level"])

	w = s.request(http.MethodGet, "/combate/enemy-0-0-0", "", nil)
	s.Equal(http.StatusOK, w.Code)
	body = s.decode(w)
	s.Equal("rata", body["name"])
	s.NotContains(body, "level")

	w = s.request(http.MethodGet, "/combate/ghost", "", nil)
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *HandlerTestSuite) TestStartCombat() {
	w := s.request(http.MethodPost, "/combate?p1=player1&p2=enemy-0-0-0", "", nil)
	s.Equal(http.StatusOK, w.Code)

	body := s.decode(w)
	s.Equal("player1", body["winner"])
	s.NotEmpty(body["combatLog"])

	finalState := body["finalState"].(map[string]any)
	enemy := finalState["enemy-0-0-0"].(map[string]any)
	s.Equal(false, enemy["isAlive"])
}

func (s *HandlerTestSuite) TestStartCombatValidation() {
	w := s.request(http.MethodPost, "/combate?p1=player1", "", nil)
	s.Equal(http.StatusBadRequest, w.Code)

	w = s.request(http.MethodPost, "/combate?p1=player1&p2=ghost", "", nil)
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *HandlerTestSuite) TestUpdateCharacterAttributes() {
	w := s.request(http.MethodPut, "/combate/player1", `{"maxHealth":150,"health":140}`, nil)
	s.Equal(http.StatusOK, w.Code)

	body := s.decode(w)
	s.Equal("Atributos actualizados correctamente", body["message"])
	s.Equal(float64(140), body["character"].(map[string]any)["health"])

	w = s.request(http.MethodPut, "/combate/ghost", `{"health":10}`, nil)
	s.Equal(http.StatusNotFound, w.Code)
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
