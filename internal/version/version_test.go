package version

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var semverPattern = regexp.MustCompile(`^\d+\.\d+\.\d+(-[0-9A-Za-z.-]+)?$`)

func TestShort(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Version, Short())
	assert.Regexp(t, semverPattern, Short())
}

// The User-Agent sent by the client is "shared-ng/" + Short(), so it must be a single token.
func TestShort_UsableAsProductVersion(t *testing.T) {
	t.Parallel()

	agent := "shared-ng/" + Short()

	assert.NotContains(t, agent, " ")
	assert.Equal(t, 1, strings.Count(agent, "/"))
	assert.Equal(t, "shared-ng/"+Version, agent)
}

func TestFull(t *testing.T) {
	t.Parallel()

	full := Full()

	parts := strings.Split(full, ", ")
	require.Len(t, parts, 3)
	assert.Equal(t, "version: "+Version, parts[0])
	assert.Equal(t, "commit: "+Commit, parts[1])
	assert.Equal(t, "built at: "+BuildTime, parts[2])
}

func TestDefaults(t *testing.T) {
	t.Parallel()

	// Values a plain "go build" leaves behind, without -ldflags overrides.
	assert.Equal(t, "0.1.0", Version)
	assert.Equal(t, "none", Commit)
	assert.Equal(t, "unknown", BuildTime)
}
