//go:build !cgo

package hal

import "fmt"

func RunWindow(_ Config, _ func(HAL) (func() error, error)) error {
	return fmt.Errorf("window mode requires cgo (build/run with CGO_ENABLED=1): %w", ErrNotImplemented)
}
