package version

import (
	"fmt"
	"runtime/debug"
	"strings"
)

// Set at build time with -ldflags.
var (
	Version   = "dev"
	GitCommit = ""
	BuildTime = ""
)

// Product is the name used in the User-Agent header.
const Product = "reqkit"

// Info describes the running build.
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit,omitempty"`
	BuildTime string `json:"build_time,omitempty"`
	GoVersion string `json:"go_version"`
	IsDirty   bool   `json:"is_dirty"`
}

// GetVersionInfo returns the build information, filling gaps from the
// binary's embedded build settings.
func GetVersionInfo() Info {
	info := Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildTime: BuildTime,
	}

	if bi, ok := debug.ReadBuildInfo(); ok {
		info.GoVersion = bi.GoVersion
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				if info.GitCommit == "" {
					info.GitCommit = s.Value
				}
			case "vcs.time":
				if info.BuildTime == "" {
					info.BuildTime = s.Value
				}
			case "vcs.modified":
				info.IsDirty = s.Value == "true"
			}
		}
	}
	if len(info.GitCommit) > 7 {
		info.GitCommit = info.GitCommit[:7]
	}
	return info
}

// GetShortVersion returns "version[-commit][-dirty]".
func GetShortVersion() string {
	info := GetVersionInfo()
	parts := []string{info.Version}
	if info.GitCommit != "" {
		parts = append(parts, info.GitCommit)
	}
	if info.IsDirty {
		parts = append(parts, "dirty")
	}
	return strings.Join(parts, "-")
}

// String renders the full build information on one line.
func (i Info) String() string {
	s := fmt.Sprintf("%s %s", Product, i.Version)
	if i.GitCommit != "" {
		s += " (" + i.GitCommit
		if i.IsDirty {
			s += ", dirty"
		}
		s += ")"
	}
	if i.BuildTime != "" {
		s += " built " + i.BuildTime
	}
	if i.GoVersion != "" {
		s += " " + i.GoVersion
	}
	return s
}

// UserAgent returns the default User-Agent header value, "reqkit/<version>".
func UserAgent() string {
	return Product + "/" + Version
}
