package ecs

import "github.com/milk9111/cavehop/ecs/component"

// Query returns the live entities holding every listed kind, in the dense
// order of the smallest store. With no kinds it returns every entity.
func (w *World) Query(kinds ...component.Kind) []Entity {
	if w == nil {
		return nil
	}
	if len(kinds) == 0 {
		return w.Entities()
	}

	stores := make([]store, 0, len(kinds))
	for _, k := range kinds {
		s, ok := w.stores[k.ID()]
		if !ok {
			return nil
		}
		stores = append(stores, s)
	}

	base := smallest(stores...)
	out := make([]Entity, 0, len(base.entities()))
	for _, e := range base.entities() {
		if !w.IsAlive(e) {
			continue
		}
		all := true
		for _, s := range stores {
			if !s.has(e) {
				all = false
				break
			}
		}
		if all {
			out = append(out, e)
		}
	}
	return out
}

// First returns any live entity holding kind. Used for singletons such as
// the stage or the player.
func (w *World) First(kind component.Kind) (Entity, bool) {
	if w == nil {
		return 0, false
	}
	s, ok := w.stores[kind.ID()]
	if !ok {
		return 0, false
	}
	for _, e := range s.entities() {
		if w.IsAlive(e) {
			return e, true
		}
	}
	return 0, false
}
