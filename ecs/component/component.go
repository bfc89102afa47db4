// Package component declares the data attached to entities. Each component
// type registers one kind at package init; systems look components up by
// that kind.
package component

import (
	"errors"
	"fmt"
	"sync/atomic"
)

var (
	ErrEntityNotAlive       = errors.New("ecs: entity not alive")
	ErrNilComponent         = errors.New("ecs: component is nil")
	ErrInvalidComponentKind = errors.New("ecs: invalid component kind")
)

// ComponentID names a storage slot in the world. Zero is never issued.
type ComponentID uint32

var lastID atomic.Uint32

// KindID lets queries mix kinds of different component types.
type KindID interface {
	ID() ComponentID
}

// ComponentKind is the typed key for component T.
type ComponentKind[T any] struct {
	id   ComponentID
	name string
}

func NewComponentKind[T any]() ComponentKind[T] {
	var zero T
	return ComponentKind[T]{id: ComponentID(lastID.Add(1)), name: fmt.Sprintf("%T", zero)}
}

func (k ComponentKind[T]) ID() ComponentID { return k.id }
func (k ComponentKind[T]) Valid() bool     { return k.id != 0 }

func (k ComponentKind[T]) String() string {
	if k.name == "" {
		return "component(invalid)"
	}
	return fmt.Sprintf("%s#%d", k.name, k.id)
}

// ComponentHandle is what component files export, e.g.
// var PositionComponent = NewComponent[Position]().
type ComponentHandle[T any] struct {
	kind ComponentKind[T]
}

func NewComponent[T any]() ComponentHandle[T] {
	return ComponentHandle[T]{kind: NewComponentKind[T]()}
}

func (h ComponentHandle[T]) Kind() ComponentKind[T] { return h.kind }
