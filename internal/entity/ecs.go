// internal/entity/ecs.go
package entity

import (
	"errors"
	"fmt"

	"go-vector-demo/internal/component"
	"go-vector-demo/internal/types"
)

// ErrUnregisteredKind is the panic value (wrapped) raised when a query names
// a kind that has no store behind it.
var ErrUnregisteredKind = errors.New("entity: query on unregistered attribute kind")

// view is the read side of a store that queries intersect.
type view interface {
	Has(e types.EntityID) bool
	All() []types.EntityID
}

// paintView exposes the entities of Paints whose variant is kind.
type paintView struct {
	paints *Store[component.Paint]
	kind   component.Kind
}

func (v paintView) Has(e types.EntityID) bool {
	p, ok := v.paints.Get(e)
	return ok && p != nil && p.Kind() == v.kind
}

func (v paintView) All() []types.EntityID {
	all := v.paints.All()
	out := all[:0]
	for _, e := range all {
		if v.Has(e) {
			out = append(out, e)
		}
	}
	return out
}

type ECS struct {
	NextID types.EntityID
	Shapes *Store[component.Shape]
	Paints *Store[component.Paint]
	Movers *Store[component.Moving]

	kinds map[component.Kind]view
}

func NewECS() *ECS {
	ecs := &ECS{
		NextID: 1,
		Shapes: NewStore[component.Shape](),
		Paints: NewStore[component.Paint](),
		Movers: NewStore[component.Moving](),
	}
	ecs.kinds = map[component.Kind]view{
		component.KindShape:  ecs.Shapes,
		component.KindCircle: paintView{paints: ecs.Paints, kind: component.KindCircle},
		component.KindText:   paintView{paints: ecs.Paints, kind: component.KindText},
		component.KindMoving: ecs.Movers,
	}
	return ecs
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// DestroyEntity detaches every attribute of e.
func (ecs *ECS) DestroyEntity(e types.EntityID) {
	ecs.Shapes.Remove(e)
	ecs.Paints.Remove(e)
	ecs.Movers.Remove(e)
}

// Registered reports whether kind can be queried.
func (ecs *ECS) Registered(kind component.Kind) bool {
	_, ok := ecs.kinds[kind]
	return ok
}

// Query returns the entities holding every listed kind, in the insertion
// order of the first kind's store. The slice is a fresh snapshot.
// An unregistered kind is a programming error and panics.
func (ecs *ECS) Query(kinds ...component.Kind) []types.EntityID {
	views := make([]view, 0, len(kinds))
	for _, k := range kinds {
		v, ok := ecs.kinds[k]
		if !ok {
			panic(fmt.Errorf("%w: %v", ErrUnregisteredKind, k))
		}
		views = append(views, v)
	}
	if len(views) == 0 {
		return []types.EntityID{}
	}

	candidates := views[0].All()
	for _, v := range views[1:] {
		filtered := candidates[:0]
		for _, e := range candidates {
			if v.Has(e) {
				filtered = append(filtered, e)
			}
		}
		candidates = filtered
		if len(candidates) == 0 {
			break
		}
	}
	return candidates
}
