package scimd

import "golang.org/x/sys/cpu"

// The archsimd registers are VEX encoded, so even the 128-bit tier needs AVX.
func cpuFeatures(l Level) []Feature {
	return []Feature{
		{Name: "sse2", Present: cpu.X86.HasSSE2, Required: l >= LevelSSE},
		{Name: "sse4.1", Present: cpu.X86.HasSSE41, Required: l >= LevelSSE},
		{Name: "sse4.2", Present: cpu.X86.HasSSE42, Required: l >= LevelSSE},
		{Name: "avx", Present: cpu.X86.HasAVX, Required: l >= LevelSSE},
		{Name: "avx2", Present: cpu.X86.HasAVX2, Required: l >= LevelAVX},
		{Name: "fma", Present: cpu.X86.HasFMA, Required: l >= LevelAVX},
		{Name: "avx512f", Present: cpu.X86.HasAVX512F, Required: l >= LevelAVX512},
		{Name: "avx512dq", Present: cpu.X86.HasAVX512DQ, Required: l >= LevelAVX512},
		{Name: "avx512bw", Present: cpu.X86.HasAVX512BW, Required: l >= LevelAVX512},
		{Name: "avx512vl", Present: cpu.X86.HasAVX512VL, Required: l >= LevelAVX512},
	}
}
