package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	tokens "github.com/dvaquero/mazmorra/internal/auth"
	"github.com/dvaquero/mazmorra/internal/engine"
	apperrors "github.com/dvaquero/mazmorra/internal/errors"
	"github.com/dvaquero/mazmorra/internal/handlers/httpapi"
	authsvc "github.com/dvaquero/mazmorra/internal/orchestrators/auth"
	combatsvc "github.com/dvaquero/mazmorra/internal/orchestrators/combat"
	playersvc "github.com/dvaquero/mazmorra/internal/orchestrators/player"
	roomsvc "github.com/dvaquero/mazmorra/internal/orchestrators/room"
	"github.com/dvaquero/mazmorra/internal/pkg/clock"
	"github.com/dvaquero/mazmorra/internal/pkg/dice"
	"github.com/dvaquero/mazmorra/internal/pkg/idgen"
	redisclient "github.com/dvaquero/mazmorra/internal/redis"
	playerrepo "github.com/dvaquero/mazmorra/internal/repositories/player"
	worldrepo "github.com/dvaquero/mazmorra/internal/repositories/world"
	"github.com/dvaquero/mazmorra/internal/worldgen"
)

var (
	httpPort    int
	worldWidth  int
	worldHeight int
	worldSeed   uint64
	redisAddr   string
	jwtSecret   string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP server",
	Long:  `Generate the world, seed the default player, and serve the game API.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&httpPort, "port", 3000, "HTTP server port")
	serverCmd.Flags().IntVar(&worldWidth, "width", 5, "world grid width")
	serverCmd.Flags().IntVar(&worldHeight, "height", 5, "world grid height")
	serverCmd.Flags().Uint64Var(&worldSeed, "seed", 0, "world generation seed (0 for random)")
	serverCmd.Flags().StringVar(&redisAddr, "redis-addr", "", "redis address for the player store (empty for in-memory)")
	serverCmd.Flags().StringVar(&jwtSecret, "jwt-secret", "juego-rol-api-secret-key", "secret for signing auth tokens")
}

func runServer(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("received shutdown signal, gracefully stopping")
		cancel()
	}()

	router, err := buildRouter(ctx)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", httpPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		slog.Info("HTTP server starting", "port", httpPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutting down HTTP server")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Warn("graceful shutdown failed, closing", "error", err)
			return srv.Close()
		}

		slog.Info("server stopped gracefully")
		return nil
	case err := <-errChan:
		return err
	}
}

// buildRouter wires the full dependency graph: roller, world, repos,
// engine, orchestrators, token issuer, and the gin routes.
func buildRouter(ctx context.Context) (*gin.Engine, error) {
	var roller dice.Roller
	if worldSeed != 0 {
		roller = dice.NewSeeded(worldSeed, worldSeed)
	} else {
		roller = dice.New()
	}

	generator, err := worldgen.New(&worldgen.Config{
		Width:  worldWidth,
		Height: worldHeight,
		Roller: roller,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create world generator: %w", err)
	}

	world := generator.Generate()
	worldRepo := worldrepo.NewInMemory(world)
	slog.Info("world generated", "width", worldWidth, "height", worldHeight, "rooms", len(world.Rooms))

	var players playerrepo.Repository
	if redisAddr != "" {
		client, err := redisclient.NewClient(redisAddr, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create redis client: %w", err)
		}
		players = playerrepo.NewRedisRepository(client)
		slog.Info("using redis player store", "addr", redisAddr)
	} else {
		players = playerrepo.NewInMemory()
	}

	combatEngine, err := engine.New(&engine.Config{Roller: roller})
	if err != nil {
		return nil, fmt.Errorf("failed to create combat engine: %w", err)
	}

	playerService, err := playersvc.NewOrchestrator(&playersvc.Config{
		PlayerRepo:  players,
		WorldRepo:   worldRepo,
		IDGenerator: idgen.NewTimestamp("player"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create player orchestrator: %w", err)
	}

	roomService, err := roomsvc.NewOrchestrator(&roomsvc.Config{WorldRepo: worldRepo})
	if err != nil {
		return nil, fmt.Errorf("failed to create room orchestrator: %w", err)
	}

	combatService, err := combatsvc.NewOrchestrator(&combatsvc.Config{
		PlayerRepo: players,
		WorldRepo:  worldRepo,
		Engine:     combatEngine,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create combat orchestrator: %w", err)
	}

	issuer, err := tokens.NewIssuer(&tokens.Config{
		Secret: jwtSecret,
		Clock:  clock.New(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create token issuer: %w", err)
	}

	authService, err := authsvc.NewOrchestrator(&authsvc.Config{
		PlayerService: playerService,
		PlayerRepo:    players,
		TokenIssuer:   issuer,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create auth orchestrator: %w", err)
	}

	if err := seedDefaultPlayer(ctx, playerService); err != nil {
		return nil, err
	}

	handler, err := httpapi.NewHandler(&httpapi.Config{
		PlayerService: playerService,
		RoomService:   roomService,
		CombatService: combatService,
		AuthService:   authService,
		TokenIssuer:   issuer,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP handler: %w", err)
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	handler.RegisterRoutes(router)

	return router, nil
}

// seedDefaultPlayer creates the well-known starting player. An existing
// player with the same id (a redis store surviving a restart) is fine.
func seedDefaultPlayer(ctx context.Context, players playersvc.Service) error {
	_, err := players.CreatePlayer(ctx, &playersvc.CreatePlayerInput{
		Name: "Aventurero",
		ID:   httpapi.DefaultPlayerID,
	})
	if err != nil && !apperrors.IsAlreadyExists(err) {
		return fmt.Errorf("failed to seed default player: %w", err)
	}
	return nil
}
