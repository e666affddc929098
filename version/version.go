package version

import (
	"fmt"
	"runtime/debug"
	"strings"
)

// FromBuildInfo describes the running binary from the module version and VCS stamps the Go toolchain embeds.
func FromBuildInfo() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unavailable"
	}

	return describe(info)
}

func describe(info *debug.BuildInfo) string {
	var parts []string

	if v := info.Main.Version; v != "" && v != "(devel)" {
		parts = append(parts, v)
	}

	settings := make(map[string]string, len(info.Settings))

	for _, s := range info.Settings {
		settings[s.Key] = s.Value
	}

	if revision := settings["vcs.revision"]; revision != "" {
		desc := fmt.Sprintf("built from %s revision %s", settings["vcs"], revision)

		if ts := settings["vcs.time"]; ts != "" {
			desc += " at " + ts
		}

		if settings["vcs.modified"] == "true" {
			desc += " (modified)"
		}

		parts = append(parts, desc)
	}

	if len(parts) == 0 {
		return "unavailable"
	}

	return strings.Join(parts, ", ")
}
