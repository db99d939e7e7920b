package bots

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// Registry holds named Persona definitions, mirroring holdem/npc's
// PersonaRegistry: load from JSON, look up by ID, or list everything.
type Registry struct {
	mu       sync.RWMutex
	personas map[string]*Persona
}

func NewRegistry() *Registry {
	return &Registry{personas: make(map[string]*Persona)}
}

func (r *Registry) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read personas file: %w", err)
	}
	return r.LoadFromJSON(data)
}

func (r *Registry) LoadFromJSON(data []byte) error {
	var list []*Persona
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("parse personas JSON: %w", err)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range list {
		if p.ID == "" {
			continue
		}
		r.personas[p.ID] = p
	}
	return nil
}

func (r *Registry) Get(id string) *Persona {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.personas[id]
}

func (r *Registry) All() []*Persona {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Persona, 0, len(r.personas))
	for _, p := range r.personas {
		out = append(out, p)
	}
	return out
}

func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.personas)
}

// DefaultPersonas returns a small built-in roster, so a caller that
// doesn't want to manage a persona file can still field varied bots.
func DefaultPersonas() []*Persona {
	return []*Persona{
		{ID: "steady", Name: "Steady", Tagline: "plays it safe and waits",
			Profile: Profile{Caution: 0.8, Aggression: 0.2, Randomness: 0.1, NopeWillingness: 0.7}},
		{ID: "gambler", Name: "Gambler", Tagline: "takes every opening",
			Profile: Profile{Caution: 0.2, Aggression: 0.8, Randomness: 0.3, NopeWillingness: 0.3}},
		{ID: "wildcard", Name: "Wildcard", Tagline: "unpredictable",
			Profile: Profile{Caution: 0.5, Aggression: 0.5, Randomness: 0.7, NopeWillingness: 0.5}},
	}
}
