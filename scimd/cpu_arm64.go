package scimd

import "golang.org/x/sys/cpu"

// arm64 always runs the scalar tier; the list is informational.
func cpuFeatures(Level) []Feature {
	return []Feature{
		{Name: "fp", Present: cpu.ARM64.HasFP},
		{Name: "asimd", Present: cpu.ARM64.HasASIMD},
		{Name: "sve", Present: cpu.ARM64.HasSVE},
		{Name: "sve2", Present: cpu.ARM64.HasSVE2},
	}
}
