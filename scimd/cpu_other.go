//go:build !amd64 && !arm64

package scimd

func cpuFeatures(Level) []Feature { return nil }
