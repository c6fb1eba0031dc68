package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"app-recommender/internal/repository"
	"app-recommender/internal/source"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := repository.NewDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

// fakeProbe answers hardware queries from fixed values.
type fakeProbe struct {
	amd, nvidia, intel, laptop bool
}

func (p fakeProbe) HasAMDGPU() bool    { return p.amd }
func (p fakeProbe) HasNVIDIAGPU() bool { return p.nvidia }
func (p fakeProbe) HasIntelGPU() bool  { return p.intel }
func (p fakeProbe) IsLaptop() bool     { return p.laptop }

// fakePackageSource returns a fixed package map or a fixed error.
type fakePackageSource struct {
	pkgs map[string]source.PackageInfo
	err  error
}

func (s fakePackageSource) InstalledPackages(context.Context) (map[string]source.PackageInfo, error) {
	return s.pkgs, s.err
}

// fakeUsageSource returns a fixed name list or a fixed error.
type fakeUsageSource struct {
	names []string
	err   error
}

func (s fakeUsageSource) RecentlyUsed(context.Context) ([]string, error) {
	return s.names, s.err
}
