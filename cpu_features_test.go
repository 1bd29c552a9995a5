package blas1

import (
	"strings"
	"testing"
)

func TestGetCPUInfo(t *testing.T) {
	info := GetCPUInfo()
	if info == "" {
		t.Fatal("GetCPUInfo returned empty string")
	}
	if !strings.Contains(info, "CPU features:") && info != "No SIMD extensions detected" {
		t.Errorf("unexpected report format: %q", info)
	}
}

func TestFeatureConsistency(t *testing.T) {
	// AVX2 implies AVX on every real part; the detector must not invent
	// features the package reports.
	if cpuFeatures.HasAVX2 && !cpuFeatures.HasAVX {
		t.Error("detector reports AVX2 without AVX")
	}
	if cpuFeatures.HasAVX512F && !cpuFeatures.HasAVX2 {
		t.Error("detector reports AVX512F without AVX2")
	}
}
