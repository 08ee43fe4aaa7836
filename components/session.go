package components

import (
	"github.com/automoto/platformer/platformer"
	"github.com/yohamta/donburi"
)

// SessionData links a scene to the controller that owns the playthrough.
type SessionData struct {
	Controller *platformer.Controller
}

var Session = donburi.NewComponentType[SessionData]()
