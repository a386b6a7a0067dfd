package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dvaquero/mazmorra/internal/entities"
)

func TestNewPlayer(t *testing.T) {
	p := entities.NewPlayer("player1", "Aventurero", "0-0")

	assert.Equal(t, "player1", p.ID)
	assert.Equal(t, entities.KindPlayer, p.Kind)
	assert.Equal(t, 100, p.Health)
	assert.Equal(t, 100, p.MaxHealth)
	assert.Equal(t, 15, p.Attack)
	assert.Equal(t, 10, p.Defense)
	assert.Equal(t, 10, p.Magic)
	assert.Equal(t, 15, p.Strength)
	assert.Equal(t, 1, p.Level)
	assert.Equal(t, 0, p.Experience)
	assert.Equal(t, "0-0", p.CurrentRoom)
	assert.NotNil(t, p.Inventory)
	assert.Empty(t, p.Inventory)
}

func TestGainExperience(t *testing.T) {
	t.Run("below threshold keeps level", func(t *testing.T) {
		p := entities.NewPlayer("p", "Test", "0-0")
		p.GainExperience(50)

		assert.Equal(t, 50, p.Experience)
		assert.Equal(t, 1, p.Level)
		assert.Equal(t, 100, p.Health)
	})

	t.Run("crossing threshold levels up and raises stats", func(t *testing.T) {
		p := entities.NewPlayer("p", "Test", "0-0")
		p.GainExperience(100)

		assert.Equal(t, 2, p.Level)
		assert.Equal(t, 110, p.Health)
		assert.Equal(t, 110, p.MaxHealth)
		assert.Equal(t, 17, p.Attack)
		assert.Equal(t, 11, p.Defense)
		assert.Equal(t, 12, p.Magic)
		assert.Equal(t, 17, p.Strength)
	})

	t.Run("large gain jumps several levels at once", func(t *testing.T) {
		p := entities.NewPlayer("p", "Test", "0-0")
		p.GainExperience(250) // level 3

		assert.Equal(t, 3, p.Level)
		assert.Equal(t, 120, p.Health)
		assert.Equal(t, 120, p.MaxHealth)
		assert.Equal(t, 19, p.Attack)
	})

	t.Run("level matches floor(exp/100)+1 after every gain", func(t *testing.T) {
		p := entities.NewPlayer("p", "Test", "0-0")
		for i := 0; i < 30; i++ {
			p.GainExperience(35)
			assert.Equal(t, p.Experience/100+1, p.Level)
		}
	})

	t.Run("level is monotonic", func(t *testing.T) {
		p := entities.NewPlayer("p", "Test", "0-0")
		prev := p.Level
		for i := 0; i < 50; i++ {
			p.GainExperience(17)
			assert.GreaterOrEqual(t, p.Level, prev)
			prev = p.Level
		}
	})

	t.Run("leveling heals a wounded player", func(t *testing.T) {
		p := entities.NewPlayer("p", "Test", "0-0")
		p.Health = 40
		p.GainExperience(100)

		assert.Equal(t, 50, p.Health)
		assert.Equal(t, 110, p.MaxHealth)
	})
}

func TestInventory(t *testing.T) {
	p := entities.NewPlayer("p", "Test", "0-0")
	sword := entities.Item{ID: "item-0-0-0", Type: "espada", Value: 40}
	potion := entities.Item{ID: "item-0-0-1", Type: "poción", Value: 15}

	p.AddItem(sword)
	p.AddItem(potion)
	require.Len(t, p.Inventory, 2)

	t.Run("remove existing item", func(t *testing.T) {
		removed, ok := p.RemoveItem("item-0-0-0")

		assert.True(t, ok)
		assert.Equal(t, sword, removed)
		assert.Equal(t, []entities.Item{potion}, p.Inventory)
	})

	t.Run("remove missing item", func(t *testing.T) {
		_, ok := p.RemoveItem("item-9-9-9")
		assert.False(t, ok)
		assert.Len(t, p.Inventory, 1)
	})
}

func TestPlayerClone(t *testing.T) {
	p := entities.NewPlayer("p", "Test", "0-0")
	p.AddItem(entities.Item{ID: "item-1", Type: "gema", Value: 5})

	clone := p.Clone()
	clone.Health = 1
	clone.Inventory[0].Value = 99

	assert.Equal(t, 100, p.Health)
	assert.Equal(t, 5, p.Inventory[0].Value)
}

func TestMoveToRoom(t *testing.T) {
	p := entities.NewPlayer("p", "Test", "0-0")
	p.MoveToRoom("1-0")

	assert.Equal(t, "1-0", p.CurrentRoom)
}
