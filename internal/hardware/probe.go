// Package hardware answers capability questions about the local machine.
package hardware

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Probe reports hardware capabilities. Implementations are fail-closed: a
// query that cannot be answered reports false rather than returning an error.
type Probe interface {
	HasAMDGPU() bool
	HasNVIDIAGPU() bool
	HasIntelGPU() bool
	IsLaptop() bool
}

// LspciProbe inspects lspci output and /sys/class/power_supply.
type LspciProbe struct{}

func (LspciProbe) HasAMDGPU() bool    { return hasGPUVendor("AMD") }
func (LspciProbe) HasNVIDIAGPU() bool { return hasGPUVendor("NVIDIA") }
func (LspciProbe) HasIntelGPU() bool  { return hasGPUVendor("Intel") }

func hasGPUVendor(vendor string) bool {
	out, err := exec.Command("lspci").Output()
	if err != nil {
		return false
	}
	s := string(out)
	return strings.Contains(s, vendor) &&
		(strings.Contains(s, "VGA") || strings.Contains(s, "Display"))
}

// IsLaptop reports whether any power supply identifies as a battery.
func (LspciProbe) IsLaptop() bool {
	paths, err := filepath.Glob("/sys/class/power_supply/*/type")
	if err != nil {
		return false
	}
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		if strings.TrimSpace(string(data)) == "Battery" {
			return true
		}
	}
	return false
}
