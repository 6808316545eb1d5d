// File: affinity/affinity.go
// Author: momentics <momentics@gmail.com>
//
// Platform-neutral API for CPU affinity. Ring producers and consumers pin
// themselves to separate cores so each cursor stays in one core's cache.
// Platform-specific implementations live in build-tagged files.

package affinity

import "runtime"

// SetAffinity pins the current OS thread to a given logical CPU.
// Callers must hold runtime.LockOSThread for the pin to stick to the goroutine.
// On unsupported platforms it returns api.ErrNotSupported.
func SetAffinity(cpuID int) error {
	return setAffinityPlatform(cpuID)
}

// Pin locks the calling goroutine to its OS thread and pins that thread to cpuID.
// The returned release func unlocks the thread; it is safe to call when Pin failed.
func Pin(cpuID int) (release func(), err error) {
	runtime.LockOSThread()
	if err := SetAffinity(cpuID); err != nil {
		runtime.UnlockOSThread()
		return func() {}, err
	}
	return runtime.UnlockOSThread, nil
}
