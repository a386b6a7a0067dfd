package entities

// Experience points needed per level
const experiencePerLevel = 100

// Base stats for a freshly created player
const (
	baseHealth   = 100
	baseAttack   = 15
	baseDefense  = 10
	baseMagic    = 10
	baseStrength = 15
)

// Player is a Combatant with progression state: level, experience,
// gold, an inventory, and a position in the world.
type Player struct {
	Combatant
	Level       int    `json:"level"`
	Experience  int    `json:"experience"`
	Gold        int    `json:"gold"`
	Inventory   []Item `json:"inventory"`
	CurrentRoom string `json:"currentRoom"`
}

// NewPlayer creates a level-1 player with base stats in the given room
func NewPlayer(id, name, initialRoom string) *Player {
	return &Player{
		Combatant: Combatant{
			ID:        id,
			Name:      name,
			Kind:      KindPlayer,
			Health:    baseHealth,
			MaxHealth: baseHealth,
			Attack:    baseAttack,
			Defense:   baseDefense,
			Magic:     baseMagic,
			Strength:  baseStrength,
		},
		Level:       1,
		Experience:  0,
		Gold:        0,
		Inventory:   []Item{},
		CurrentRoom: initialRoom,
	}
}

// GainExperience adds experience and levels the player up when a
// 100-point boundary is crossed. Level never decreases.
func (p *Player) GainExperience(amount int) {
	p.Experience += amount
	newLevel := p.Experience/experiencePerLevel + 1
	if newLevel > p.Level {
		p.levelUp(newLevel)
	}
}

// levelUp raises stats proportionally to the number of levels gained.
// Health grows along with MaxHealth, so leveling is a partial heal.
func (p *Player) levelUp(newLevel int) {
	diff := newLevel - p.Level

	p.Health += 10 * diff
	p.MaxHealth += 10 * diff
	p.Attack += 2 * diff
	p.Defense += 1 * diff
	p.Magic += 2 * diff
	p.Strength += 2 * diff

	p.Level = newLevel
}

// MoveToRoom places the player in the given room. Adjacency is the
// caller's responsibility.
func (p *Player) MoveToRoom(roomID string) {
	p.CurrentRoom = roomID
}

// AddItem appends an item to the inventory
func (p *Player) AddItem(item Item) {
	p.Inventory = append(p.Inventory, item)
}

// RemoveItem removes the first item matching the id and returns it.
// The second return value is false when no item matched.
func (p *Player) RemoveItem(itemID string) (Item, bool) {
	for i, item := range p.Inventory {
		if item.ID == itemID {
			p.Inventory = append(p.Inventory[:i], p.Inventory[i+1:]...)
			return item, true
		}
	}
	return Item{}, false
}

// Clone returns a deep copy of the player
func (p *Player) Clone() *Player {
	clone := *p
	clone.Inventory = make([]Item, len(p.Inventory))
	copy(clone.Inventory, p.Inventory)
	return &clone
}
