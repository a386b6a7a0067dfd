package testutils

import (
	"fmt"

	"github.com/dvaquero/mazmorra/internal/entities"
)

// CreateTestPlayer creates a player fixture with base stats
func CreateTestPlayer(id string) *entities.Player {
	return entities.NewPlayer(id, "Aventurero de prueba", "0-0")
}

// CreateTestEnemy creates an enemy fixture with fixed mid-range stats
func CreateTestEnemy(id string) entities.Combatant {
	return entities.Combatant{
		ID:        id,
		Name:      "goblin",
		Kind:      entities.KindEnemy,
		Health:    60,
		MaxHealth: 60,
		Attack:    8,
		Defense:   3,
		Magic:     5,
		Strength:  10,
	}
}

// CreateTestWorld builds a small grid of empty themed rooms, so
// repository and orchestrator tests control the enemy population.
func CreateTestWorld(width, height int) *entities.World {
	world := &entities.World{Width: width, Height: height}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			id := fmt.Sprintf("%d-%d", x, y)
			world.Rooms = append(world.Rooms, &entities.Room{
				ID:          id,
				Coordinates: entities.Coordinates{X: x, Y: y},
				Type:        "sala",
				Name:        "Sala " + id,
				Description: "Una sala misteriosa. Coordenadas: " + id,
				Enemies:     []entities.Combatant{},
				Items:       []entities.Item{},
			})
		}
	}
	return world
}
