package systems

import (
	"github.com/automoto/ascent/components"
	"github.com/automoto/ascent/tags"
	"github.com/yohamta/donburi"
)

// UpdateLevel moves the character across sub-level exits and advances the
// slide-in. Only the character drives traversal.
func UpdateLevel(w donburi.World) {
	ctrl, ok := ActiveLevel(w)
	if !ok {
		return
	}
	tags.Character.Each(w, func(e *donburi.Entry) {
		body := components.Object.Get(e)
		if ctrl.Grid().Holds(body.Object) {
			ctrl.Traverse(body.Object)
		}
	})
	ctrl.Tick()
}
