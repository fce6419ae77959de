package spruce

// PointerTracker turns a raw pointer stream (position + primary button) into
// ornament hover and activate events. One instance per pointer; Run owns one
// for the mouse, and custom game loops can do the same.
//
// Activation follows press-then-release over the same ornament, so a drag
// that wanders off an ornament before release does not click it.
type PointerTracker struct {
	hover    OrnamentID
	hasHover bool

	pressed     bool
	pressTarget OrnamentID
	hasTarget   bool
}

// Process advances the tracker by one frame of pointer state and dispatches
// the resulting events to the scene. Hits are tested against the sprites the
// renderer projected for its most recent frame.
func (pt *PointerTracker) Process(scene *Scene, r *BillboardRenderer, x, y float64, pressed bool) {
	hit, ok := r.Pick(x, y)

	// Hover enter/leave when the ornament under the pointer changes.
	if ok != pt.hasHover || (ok && hit != pt.hover) {
		if pt.hasHover {
			scene.HoverExit(pt.hover, x, y)
		}
		if ok {
			scene.HoverEnter(hit, x, y)
		}
		pt.hover = hit
		pt.hasHover = ok
	}

	switch {
	case pressed && !pt.pressed:
		pt.pressTarget = hit
		pt.hasTarget = ok
	case !pressed && pt.pressed:
		if pt.hasTarget && ok && hit == pt.pressTarget {
			scene.Activate(hit, x, y)
		}
		pt.hasTarget = false
	}
	pt.pressed = pressed
}

// Hovering returns the ornament currently under the pointer, if any.
func (pt *PointerTracker) Hovering() (OrnamentID, bool) {
	return pt.hover, pt.hasHover
}
