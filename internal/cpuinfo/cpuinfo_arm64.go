//go:build arm64

package cpuinfo

import "golang.org/x/sys/cpu"

func init() {
	flags.ASIMD = cpu.ARM64.HasASIMD
	flags.SVE2 = cpu.ARM64.HasSVE2
}
