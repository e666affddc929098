package scaffold

import (
	"context"
	"fmt"
	"time"

	"github.com/kxue43/vite-tailwind-init/registry"
)

type (
	VersionLookup interface {
		LatestAll(ctx context.Context, names []string) ([]registry.Release, error)
	}

	versionCheck struct {
		lookup  VersionLookup
		timeout time.Duration
	}
)

// "tailwindcss init" was dropped from the CLI in this major version.
const tailwindInitRemovedIn = 4

// WithVersionCheck makes Run look up the latest release of every package it is about to install.
// The lookups are informational; they never abort a run.
func (p *Pipeline) WithVersionCheck(lookup VersionLookup, timeout time.Duration) *Pipeline {
	p.versions = &versionCheck{lookup: lookup, timeout: timeout}

	return p
}

func packagesToInstall(useDaisyUI bool) []string {
	names := append([]string{}, buildDeps...)

	if useDaisyUI {
		names = append(names, daisyUIDep)
	}

	return names
}

func (vc *versionCheck) run(ctx context.Context, progress Progress, logger Logger, useDaisyUI bool) {
	ctx, cancel := context.WithTimeout(ctx, vc.timeout)
	defer cancel()

	releases, err := vc.lookup.LatestAll(ctx, packagesToInstall(useDaisyUI))
	if err != nil {
		logger.Printf("version check incomplete: %s", err)
	}

	for _, r := range releases {
		logger.Debugf("latest %s: %s", r.Name, r.Version)

		if r.Name == "tailwindcss" && registry.AtLeastMajor(r.Version, tailwindInitRemovedIn) {
			progress.Warn(fmt.Sprintf("tailwindcss %s is the latest release; \"tailwindcss init\" is not available from version %d on", r.Version, tailwindInitRemovedIn))
		}
	}
}
