package classes

import (
	"fmt"
	"sync"

	"github.com/ironquest/backend/internal/progression/xp"
)

// ID identifies a character class.
type ID string

const (
	ClassWarrior   ID = "warrior"
	ClassMonk      ID = "monk"
	ClassRanger    ID = "ranger"
	ClassSage      ID = "sage"
	ClassChampion  ID = "champion"
	ClassBerserker ID = "berserker"
)

func (id ID) IsValid() bool {
	switch id {
	case ClassWarrior, ClassMonk, ClassRanger, ClassSage, ClassChampion, ClassBerserker:
		return true
	default:
		return false
	}
}

// Class bundles a class identity with its capability pair. Secondary
// and Triggered are mutually exclusive: a class has either a second
// passive skill or a cooldown-gated one.
type Class struct {
	ID          ID
	Name        string
	FavoredType xp.ExerciseType
	Primary     PassiveAbility
	Secondary   PassiveAbility
	Triggered   TriggeredAbility
}

// Registry holds all registered classes. It is populated once at
// startup and treated as read-only afterwards; registering the same
// class twice is a harmless overwrite.
type Registry struct {
	mu      sync.RWMutex
	classes map[ID]Class
}

func NewRegistry() *Registry {
	return &Registry{
		classes: make(map[ID]Class),
	}
}

// NewDefaultRegistry returns a registry with all six classes registered.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(Warrior())
	r.Register(Monk())
	r.Register(Ranger())
	r.Register(Sage())
	r.Register(Champion())
	r.Register(Berserker())
	return r
}

func (r *Registry) Register(c Class) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.classes[c.ID] = c
}

func (r *Registry) Get(id ID) (Class, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.classes[id]
	if !ok {
		return Class{}, fmt.Errorf("class %q not registered", id)
	}
	return c, nil
}

func (r *Registry) All() []Class {
	r.mu.RLock()
	defer r.mu.RUnlock()
	all := make([]Class, 0, len(r.classes))
	for _, c := range r.classes {
		all = append(all, c)
	}
	return all
}
