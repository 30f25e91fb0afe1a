//go:build amd64

package cpuinfo

import "golang.org/x/sys/cpu"

func init() {
	flags.AVX2 = cpu.X86.HasAVX2 && cpu.X86.HasFMA
	flags.AVX512F = cpu.X86.HasAVX512F
	flags.AVX512BW = cpu.X86.HasAVX512BW
}
