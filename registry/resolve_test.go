package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseFixture(t *testing.T) *Registry {
	t.Helper()
	reg, err := Parse([]byte(fixtureXML))
	require.NoError(t, err)
	return reg
}

func TestResolveCoreProfile(t *testing.T) {
	reg := parseFixture(t)

	iface, err := reg.Resolve(Selection{API: "gl", Version: "4.6", Profile: "core"})
	require.NoError(t, err)

	assert.True(t, iface.Commands["glEnable"])
	assert.True(t, iface.Commands["glBufferData"])
	assert.True(t, iface.Commands["glMapBufferRange"])
	assert.True(t, iface.Enums["GL_CULL_FACE"])
	assert.True(t, iface.Enums["GL_TIMEOUT_IGNORED"])

	// Removed from the core profile in 3.2.
	assert.False(t, iface.Commands["glAccum"])
	assert.False(t, iface.Enums["GL_QUADS"])

	// gles2-only features never apply to the gl API.
	assert.True(t, iface.Commands["glGetString"])
}

func TestResolveCompatibilityProfileKeepsRemoved(t *testing.T) {
	reg := parseFixture(t)

	iface, err := reg.Resolve(Selection{API: "gl", Version: "4.6", Profile: "compatibility"})
	require.NoError(t, err)

	assert.True(t, iface.Commands["glAccum"])
	assert.True(t, iface.Enums["GL_QUADS"])
}

func TestResolveVersionCutoff(t *testing.T) {
	reg := parseFixture(t)

	iface, err := reg.Resolve(Selection{API: "gl", Version: "1.5", Profile: "core"})
	require.NoError(t, err)

	assert.True(t, iface.Commands["glDrawElements"])
	assert.False(t, iface.Commands["glMapBufferRange"])

	// The 3.2 remove has not happened yet either.
	assert.True(t, iface.Commands["glAccum"])
}

func TestResolveExtensions(t *testing.T) {
	reg := parseFixture(t)

	iface, err := reg.Resolve(Selection{
		API: "gl", Version: "4.6", Profile: "core",
		Extensions: []string{"GL_KHR_debug"},
	})
	require.NoError(t, err)

	assert.True(t, iface.Commands["glDebugMessageCallback"])
	assert.True(t, iface.Enums["GL_DEBUG_OUTPUT"])
}

func TestResolveUnknownExtension(t *testing.T) {
	reg := parseFixture(t)

	_, err := reg.Resolve(Selection{
		API: "gl", Version: "4.6", Profile: "core",
		Extensions: []string{"GL_ARB_nonexistent"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown extension")
}

func TestResolveUnsupportedExtension(t *testing.T) {
	reg := parseFixture(t)

	_, err := reg.Resolve(Selection{
		API: "gl", Version: "4.6", Profile: "core",
		Extensions: []string{"GL_OES_gles_only"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not support")
}

func TestExtensionSupportsGLCore(t *testing.T) {
	ext := Extension{Supported: "glcore|gles2"}

	assert.True(t, extensionSupports(ext, Selection{API: "gl", Profile: "core"}))
	assert.False(t, extensionSupports(ext, Selection{API: "gl", Profile: "compatibility"}))
	assert.True(t, extensionSupports(ext, Selection{API: "gles2"}))
}

func TestParseVersion(t *testing.T) {
	v, err := parseVersion("4.6")
	require.NoError(t, err)
	assert.Equal(t, 406, v)

	v, err = parseVersion("1.0")
	require.NoError(t, err)
	assert.Equal(t, 100, v)

	_, err = parseVersion("46")
	assert.Error(t, err)
}
