// Package source collects installed-package and usage signals from the
// system. Both sources shell out to standard tooling and are best-effort.
package source

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
)

// PackageInfo is the metadata nix-env reports per package. The recommender
// only cares about the name; the rest is carried through opaquely.
type PackageInfo struct {
	Name    string `json:"name"`
	PName   string `json:"pname"`
	Version string `json:"version"`
	System  string `json:"system"`
}

// PackageSource lists the packages installed on the system.
type PackageSource interface {
	InstalledPackages(ctx context.Context) (map[string]PackageInfo, error)
}

// NixEnvSource queries the nix-env user profile.
type NixEnvSource struct{}

func (NixEnvSource) InstalledPackages(ctx context.Context) (map[string]PackageInfo, error) {
	out, err := exec.CommandContext(ctx, "nix-env", "--query", "--installed", "--json").Output()
	if err != nil {
		return nil, fmt.Errorf("run nix-env: %w", err)
	}
	var pkgs map[string]PackageInfo
	if err := json.Unmarshal(out, &pkgs); err != nil {
		return nil, fmt.Errorf("parse nix-env output: %w", err)
	}
	return pkgs, nil
}
