//go:build linux

package cpuaffinity

import "golang.org/x/sys/unix"

// Pin binds the calling thread to the given CPU. The caller must hold
// runtime.LockOSThread for the pin to stay attached to its goroutine.
func Pin(cpu int) error {
	var set unix.CPUSet
	set.Zero()
	set.Set(cpu)

	return unix.SchedSetaffinity(0, &set)
}
