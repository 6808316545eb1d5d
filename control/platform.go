// control/platform.go
// Author: momentics <momentics@gmail.com>
//
// Platform probes relevant to ring placement: CPU count, cache line size
// used for cursor padding, and a few SIMD feature bits.

package control

import (
	"runtime"
	"unsafe"

	"golang.org/x/sys/cpu"
)

// RegisterPlatformProbes installs the platform.* probes.
func RegisterPlatformProbes(dp *DebugProbes) {
	dp.RegisterProbe("platform.cpus", func() any {
		return runtime.NumCPU()
	})
	dp.RegisterProbe("platform.cacheline", func() any {
		return int(unsafe.Sizeof(cpu.CacheLinePad{}))
	})
	dp.RegisterProbe("platform.arch", func() any {
		return runtime.GOARCH
	})
	dp.RegisterProbe("platform.x86.avx2", func() any {
		return cpu.X86.HasAVX2
	})
	dp.RegisterProbe("platform.arm64.atomics", func() any {
		return cpu.ARM64.HasATOMICS
	})
}
