package cpuinfo

import (
	"os"
	"runtime"
	"strings"
)

// ISA represents a SIMD instruction set architecture.
type ISA uint8

const (
	// Generic means no vector extension was detected.
	Generic ISA = iota
	// NEON represents ARM64 NEON (ASIMD).
	NEON
	// SVE2 represents ARM64 SVE2.
	SVE2
	// AVX2 represents x86-64 AVX2 with FMA.
	AVX2
	// AVX512 represents x86-64 AVX-512 (F+BW).
	AVX512
)

// String returns the string representation of an ISA.
func (i ISA) String() string {
	switch i {
	case Generic:
		return "generic"
	case NEON:
		return "neon"
	case SVE2:
		return "sve2"
	case AVX2:
		return "avx2"
	case AVX512:
		return "avx512"
	default:
		return "unknown"
	}
}

// ParseISA parses a string into an ISA value.
func ParseISA(s string) (ISA, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "generic":
		return Generic, true
	case "neon":
		return NEON, true
	case "sve2":
		return SVE2, true
	case "avx2":
		return AVX2, true
	case "avx512":
		return AVX512, true
	default:
		return Generic, false
	}
}

// Features is the detected CPU feature set.
type Features struct {
	GOOS     string `json:"goos" yaml:"goos"`
	GOARCH   string `json:"goarch" yaml:"goarch"`
	NumCPU   int    `json:"num_cpu" yaml:"num_cpu"`
	Best     ISA    `json:"-" yaml:"-"`
	BestName string `json:"isa" yaml:"isa"`
	Override bool   `json:"override" yaml:"override"`

	ASIMD    bool `json:"asimd,omitempty" yaml:"asimd,omitempty"`
	SVE2     bool `json:"sve2,omitempty" yaml:"sve2,omitempty"`
	AVX2     bool `json:"avx2,omitempty" yaml:"avx2,omitempty"`
	AVX512F  bool `json:"avx512f,omitempty" yaml:"avx512f,omitempty"`
	AVX512BW bool `json:"avx512bw,omitempty" yaml:"avx512bw,omitempty"`
}

// flags is filled by the platform-specific init.
var flags Features

// Detect returns the host feature set.
func Detect() Features {
	f := flags
	f.GOOS = runtime.GOOS
	f.GOARCH = runtime.GOARCH
	f.NumCPU = runtime.NumCPU()
	f.Best = selectBest(f)

	if override := os.Getenv("VECEXPR_ISA"); override != "" {
		if isa, ok := ParseISA(override); ok && available(f, isa) {
			f.Best = isa
			f.Override = true
		}
	}

	f.BestName = f.Best.String()
	return f
}

func available(f Features, isa ISA) bool {
	switch isa {
	case Generic:
		return true
	case NEON:
		return f.ASIMD
	case SVE2:
		return f.SVE2
	case AVX2:
		return f.AVX2
	case AVX512:
		return f.AVX512F && f.AVX512BW
	default:
		return false
	}
}

func selectBest(f Features) ISA {
	switch f.GOARCH {
	case "arm64":
		// Apple's SVE2 is slower than NEON.
		if f.SVE2 && f.GOOS != "darwin" {
			return SVE2
		}
		if f.ASIMD {
			return NEON
		}
	case "amd64":
		if f.AVX512F && f.AVX512BW {
			return AVX512
		}
		if f.AVX2 {
			return AVX2
		}
	}
	return Generic
}
