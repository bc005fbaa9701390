package sdlkeys

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/landmarks/pkg/landmark"
)

// Init starts the SDL event subsystem for hosts that have not initialised
// SDL themselves. Pair it with Quit.
func Init() error {
	if sdl.WasInit(sdl.INIT_EVENTS) != 0 {
		return nil
	}
	if err := sdl.Init(sdl.INIT_EVENTS); err != nil {
		return landmark.NewHostError("sdl_init", err)
	}
	return nil
}

// Quit shuts down SDL.
func Quit() {
	sdl.Quit()
}
