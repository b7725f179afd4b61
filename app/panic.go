package app

import (
	"fmt"
	"runtime/debug"
	"strings"

	"quark/hal"
)

// guard turns a panic inside step into an error. The stack goes to the HAL
// log and the screen is flooded dark red so a stuck window is recognizable.
func guard(h hal.HAL, step func() error) func() error {
	return func() (err error) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}
			if l := h.Logger(); l != nil {
				l.WriteLineString(fmt.Sprintf("quark panic: %v", r))
				for _, line := range strings.Split(string(debug.Stack()), "\n") {
					if line == "" {
						continue
					}
					l.WriteLineString(line)
				}
			}
			if d := h.Display(); d != nil {
				if fb := d.Framebuffer(); fb != nil {
					fb.ClearRGB(0x80, 0, 0)
					_ = fb.Present()
				}
			}
			err = fmt.Errorf("app: panic: %v", r)
		}()
		return step()
	}
}
