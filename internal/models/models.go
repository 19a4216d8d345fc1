package models

import (
	"maps"
	"sort"

	"github.com/google/uuid"
)

const (
	StartNode    = 1
	MaxHealth    = 100
	HealthPotion = "Health Potion"
)

// Status is where the game stands after a step.
type Status string

const (
	StatusPlaying     Status = "PLAYING"
	StatusWon         Status = "WON"
	StatusLostHealth  Status = "LOST_HEALTH"
	StatusLostTrapped Status = "LOST_TRAPPED"
	StatusQuit        Status = "QUIT"
)

// Terminal reports whether the game is over.
func (s Status) Terminal() bool {
	return s != StatusPlaying
}

// Inventory maps an item name to how many the player carries.
// Entries never hold a zero count.
type Inventory map[string]int

// Add gives the player one more of item.
func (inv Inventory) Add(item string) {
	inv[item]++
}

// Take removes one of item, dropping the entry at zero.
// It returns false if the player had none.
func (inv Inventory) Take(item string) bool {
	n, ok := inv[item]
	if !ok {
		return false
	}
	if n <= 1 {
		delete(inv, item)
	} else {
		inv[item] = n - 1
	}
	return true
}

// Names lists the items in key order, which is also menu order.
func (inv Inventory) Names() []string {
	names := make([]string, 0, len(inv))
	for name := range inv {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GameState is everything that changes while playing.
type GameState struct {
	SessionID uuid.UUID `yaml:"session_id"`
	Node      int       `yaml:"node"`
	Health    int       `yaml:"health"`
	Inventory Inventory `yaml:"inventory"`
	Status    Status    `yaml:"status"`
	Moves     int       `yaml:"moves"`
}

// NewGameState puts a fresh player at the start node with full health.
func NewGameState() *GameState {
	return &GameState{
		SessionID: uuid.New(),
		Node:      StartNode,
		Health:    MaxHealth,
		Inventory: Inventory{},
		Status:    StatusPlaying,
	}
}

// Heal adds health, capped at MaxHealth.
func (s *GameState) Heal(amount int) {
	s.Health += amount
	if s.Health > MaxHealth {
		s.Health = MaxHealth
	}
}

// Hurt subtracts health. It does not floor at zero; callers check Dead.
func (s *GameState) Hurt(amount int) {
	s.Health -= amount
}

// Dead reports whether health has run out.
func (s *GameState) Dead() bool {
	return s.Health <= 0
}

// Snapshot returns a copy of s that shares no memory with it.
func (s *GameState) Snapshot() GameState {
	c := *s
	c.Inventory = make(Inventory, len(s.Inventory))
	maps.Copy(c.Inventory, s.Inventory)
	return c
}
