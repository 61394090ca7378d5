package engine

// GameObjectRef is a weak reference to a GameObject by UID. It never keeps
// an object alive and resolves to nil once the object leaves the scene.
type GameObjectRef struct {
	UID UID // 0 = none
}

// Get resolves the reference in scene.
func (r GameObjectRef) Get(scene *Scene) *GameObject {
	if r.UID == 0 || scene == nil {
		return nil
	}
	return scene.FindByUID(r.UID)
}

// IsValid reports whether the reference points at something. It does not
// check that the object still exists.
func (r GameObjectRef) IsValid() bool {
	return r.UID != 0
}

// Is reports whether the reference points at uid.
func (r GameObjectRef) Is(uid UID) bool {
	return uid != 0 && r.UID == uid
}

// Set points the reference at g. Pass nil to clear it.
func (r *GameObjectRef) Set(g *GameObject) {
	if g == nil {
		r.UID = 0
	} else {
		r.UID = g.UID
	}
}

func (r *GameObjectRef) Clear() {
	r.UID = 0
}
