// Package worldgen builds the world grid: a width x height array of
// themed rooms, each populated with randomized enemies and items.
package worldgen

import (
	"fmt"
	"unicode"

	"github.com/dvaquero/mazmorra/internal/entities"
	"github.com/dvaquero/mazmorra/internal/errors"
	"github.com/dvaquero/mazmorra/internal/pkg/dice"
)

// Content tables for generated rooms
var (
	roomTypes  = []string{"sala", "dormitorio", "cocina", "biblioteca", "mazmorra", "cripta", "tesoro", "armería"}
	enemyTypes = []string{"goblin", "orco", "esqueleto", "zombie", "demonio", "dragón", "espectro", "troll"}
	itemTypes  = []string{"espada", "escudo", "poción", "daga", "arco", "grimorio", "gema", "llave", "monedas"}
)

// Per-room population limits
const (
	maxEnemiesPerRoom = 2
	maxItemsPerRoom   = 3
)

// Config holds the dependencies for the world generator
type Config struct {
	Width  int
	Height int
	Roller dice.Roller
}

// Validate ensures the configuration is usable
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Width <= 0 {
		vb.InvalidField("Width", "must be positive")
	}
	if c.Height <= 0 {
		vb.InvalidField("Height", "must be positive")
	}
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}

	return vb.Build()
}

// Generator produces world grids
type Generator struct {
	width  int
	height int
	roller dice.Roller
}

// New creates a generator from the config
func New(cfg *Config) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Generator{
		width:  cfg.Width,
		height: cfg.Height,
		roller: cfg.Roller,
	}, nil
}

// Generate builds the full grid. Room ids are deterministic ("x-y");
// themes, enemies, and items come from the injected roller.
func (g *Generator) Generate() *entities.World {
	world := &entities.World{
		Width:  g.width,
		Height: g.height,
		Rooms:  make([]*entities.Room, 0, g.width*g.height),
	}

	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			world.Rooms = append(world.Rooms, g.generateRoom(x, y))
		}
	}

	return world
}

func (g *Generator) generateRoom(x, y int) *entities.Room {
	roomID := fmt.Sprintf("%d-%d", x, y)
	roomType := roomTypes[g.roller.IntN(len(roomTypes))]

	room := &entities.Room{
		ID:          roomID,
		Coordinates: entities.Coordinates{X: x, Y: y},
		Type:        roomType,
		Name:        fmt.Sprintf("%s %d-%d", capitalize(roomType), x, y),
		Description: fmt.Sprintf("Una %s misteriosa. Coordenadas: %d-%d", roomType, x, y),
		Enemies:     []entities.Combatant{},
		Items:       []entities.Item{},
	}

	enemyCount := g.roller.IntN(maxEnemiesPerRoom + 1)
	for i := 0; i < enemyCount; i++ {
		room.Enemies = append(room.Enemies, g.generateEnemy(roomID, i))
	}

	itemCount := g.roller.IntN(maxItemsPerRoom + 1)
	for i := 0; i < itemCount; i++ {
		room.Items = append(room.Items, entities.Item{
			ID:    fmt.Sprintf("item-%s-%d", roomID, i),
			Type:  itemTypes[g.roller.IntN(len(itemTypes))],
			Value: g.roller.IntN(100) + 1,
		})
	}

	return room
}

// generateEnemy rolls stats inside fixed ranges: health 50-99,
// attack 5-19, defense 1-10, magic 0-19, strength 5-19.
func (g *Generator) generateEnemy(roomID string, n int) entities.Combatant {
	enemyType := enemyTypes[g.roller.IntN(len(enemyTypes))]
	health := g.roller.IntN(50) + 50

	return entities.Combatant{
		ID:        fmt.Sprintf("enemy-%s-%d", roomID, n),
		Name:      enemyType,
		Kind:      entities.KindEnemy,
		Health:    health,
		MaxHealth: health,
		Attack:    g.roller.IntN(15) + 5,
		Defense:   g.roller.IntN(10) + 1,
		Magic:     g.roller.IntN(20),
		Strength:  g.roller.IntN(15) + 5,
	}
}

func capitalize(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
