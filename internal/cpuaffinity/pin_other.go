//go:build !linux

package cpuaffinity

import "errors"

var errUnsupported = errors.New("cpu affinity is not supported on this platform")

// Pin is a stub on platforms without thread affinity control. Pinning is
// best-effort everywhere, so callers only log the returned error.
func Pin(cpu int) error {
	return errUnsupported
}
