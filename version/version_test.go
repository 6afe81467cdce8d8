package version

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func override(t *testing.T, version, commit, buildTime string) {
	t.Helper()
	origVersion, origCommit, origBuildTime := Version, GitCommit, BuildTime
	Version, GitCommit, BuildTime = version, commit, buildTime
	t.Cleanup(func() {
		Version, GitCommit, BuildTime = origVersion, origCommit, origBuildTime
	})
}

func TestGetVersionInfoUsesLinkerValues(t *testing.T) {
	override(t, "1.2.3", "abcdef0123456789", "2026-01-02T03:04:05Z")

	info := GetVersionInfo()
	assert.Equal(t, "1.2.3", info.Version)
	assert.Equal(t, "2026-01-02T03:04:05Z", info.BuildTime)
	assert.Equal(t, "abcdef0", info.GitCommit)
}

func TestGetShortVersion(t *testing.T) {
	override(t, "1.2.3", "abc1234", "")
	got := GetShortVersion()
	assert.True(t, strings.HasPrefix(got, "1.2.3-abc1234"), got)
}

func TestInfoString(t *testing.T) {
	info := Info{Version: "1.0.0", GitCommit: "abc1234", IsDirty: true, BuildTime: "t", GoVersion: "go1.26.0"}
	assert.Equal(t, "reqkit 1.0.0 (abc1234, dirty) built t go1.26.0", info.String())
	assert.Equal(t, "reqkit dev", Info{Version: "dev"}.String())
}

func TestUserAgent(t *testing.T) {
	override(t, "2.0.0", "", "")
	assert.Equal(t, "reqkit/2.0.0", UserAgent())
}
