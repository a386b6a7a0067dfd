package entities

// Coordinates locates a room on the world grid
type Coordinates struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Item is a world object generated inside a room. Immutable once
// generated.
type Item struct {
	ID    string `json:"id"`
	Type  string `json:"type"`
	Value int    `json:"value"`
}

// Room is one cell of the world grid. Identity and coordinates never
// change after generation; the embedded enemy list is mutated in place
// by combat outcomes.
type Room struct {
	ID          string      `json:"id"`
	Coordinates Coordinates `json:"coordinates"`
	Type        string      `json:"type"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Enemies     []Combatant `json:"enemies"`
	Items       []Item      `json:"items"`
}

// Clone returns a deep copy of the room
func (r *Room) Clone() *Room {
	clone := *r
	clone.Enemies = make([]Combatant, len(r.Enemies))
	copy(clone.Enemies, r.Enemies)
	clone.Items = make([]Item, len(r.Items))
	copy(clone.Items, r.Items)
	return &clone
}

// RoomSummary is the reduced room view exposed by the admin listing
type RoomSummary struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Type        string      `json:"type"`
	Coordinates Coordinates `json:"coordinates"`
	Visited     bool        `json:"visited"`
}

// World is the generated grid: exactly one room per integer coordinate
// pair in [0,width) x [0,height).
type World struct {
	Width  int     `json:"width"`
	Height int     `json:"height"`
	Rooms  []*Room `json:"rooms"`
}
