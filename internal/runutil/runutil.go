// internal/runutil/runutil.go
package runutil

import "runtime"

// EffectiveThreads maps the --threads value to a worker count
// (0 = all CPUs).
func EffectiveThreads(n int) int {
	if n <= 0 {
		return runtime.NumCPU()
	}
	return n
}
