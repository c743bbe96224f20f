package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixtureXML is a miniature gl.xml with the registry's structural
// quirks: mixed character data around <ptype>/<name>, C integer
// suffixes on values, profile-scoped removes and api-filtered features.
const fixtureXML = `<?xml version="1.0" encoding="UTF-8"?>
<registry>
  <enums namespace="GL" group="Boolean">
    <enum value="0" name="GL_FALSE"/>
    <enum value="1" name="GL_TRUE"/>
  </enums>
  <enums namespace="GL">
    <enum value="0x0B44" name="GL_CULL_FACE"/>
    <enum value="0x0007" name="GL_QUADS"/>
    <enum value="0x1406" name="GL_FLOAT"/>
    <enum value="0x92E0" name="GL_DEBUG_OUTPUT"/>
    <enum value="0xFFFFFFFFFFFFFFFFull" name="GL_TIMEOUT_IGNORED"/>
    <enum value="0x0105" name="GL_VERSION_ES_CM_1_1" api="gles1"/>
  </enums>
  <commands namespace="GL">
    <command>
      <proto>void <name>glEnable</name></proto>
      <param group="EnableCap"><ptype>GLenum</ptype> <name>cap</name></param>
    </command>
    <command>
      <proto><ptype>GLenum</ptype> <name>glGetError</name></proto>
    </command>
    <command>
      <proto>const <ptype>GLubyte</ptype> *<name>glGetString</name></proto>
      <param><ptype>GLenum</ptype> <name>name</name></param>
    </command>
    <command>
      <proto>void <name>glBufferData</name></proto>
      <param><ptype>GLenum</ptype> <name>target</name></param>
      <param><ptype>GLsizeiptr</ptype> <name>size</name></param>
      <param>const void *<name>data</name></param>
      <param><ptype>GLenum</ptype> <name>usage</name></param>
    </command>
    <command>
      <proto>void <name>glGenBuffers</name></proto>
      <param><ptype>GLsizei</ptype> <name>n</name></param>
      <param><ptype>GLuint</ptype> *<name>buffers</name></param>
    </command>
    <command>
      <proto>void <name>glDrawElements</name></proto>
      <param><ptype>GLenum</ptype> <name>mode</name></param>
      <param><ptype>GLsizei</ptype> <name>count</name></param>
      <param><ptype>GLenum</ptype> <name>type</name></param>
      <param>const void *<name>indices</name></param>
    </command>
    <command>
      <proto>void *<name>glMapBufferRange</name></proto>
      <param><ptype>GLenum</ptype> <name>target</name></param>
      <param><ptype>GLintptr</ptype> <name>offset</name></param>
      <param><ptype>GLsizeiptr</ptype> <name>length</name></param>
      <param><ptype>GLbitfield</ptype> <name>access</name></param>
    </command>
    <command>
      <proto>void <name>glAccum</name></proto>
      <param><ptype>GLenum</ptype> <name>op</name></param>
      <param><ptype>GLfloat</ptype> <name>value</name></param>
    </command>
    <command>
      <proto>void <name>glDebugMessageCallback</name></proto>
      <param><ptype>GLDEBUGPROC</ptype> <name>callback</name></param>
      <param>const void *<name>userParam</name></param>
    </command>
  </commands>
  <feature api="gl" name="GL_VERSION_1_0" number="1.0">
    <require>
      <enum name="GL_FALSE"/>
      <enum name="GL_TRUE"/>
      <enum name="GL_CULL_FACE"/>
      <enum name="GL_QUADS"/>
      <enum name="GL_FLOAT"/>
      <command name="glEnable"/>
      <command name="glGetError"/>
      <command name="glGetString"/>
      <command name="glAccum"/>
    </require>
  </feature>
  <feature api="gl" name="GL_VERSION_1_5" number="1.5">
    <require>
      <command name="glBufferData"/>
      <command name="glGenBuffers"/>
      <command name="glDrawElements"/>
    </require>
  </feature>
  <feature api="gl" name="GL_VERSION_3_0" number="3.0">
    <require>
      <command name="glMapBufferRange"/>
    </require>
  </feature>
  <feature api="gl" name="GL_VERSION_3_2" number="3.2">
    <require>
      <enum name="GL_TIMEOUT_IGNORED"/>
    </require>
    <remove profile="core">
      <enum name="GL_QUADS"/>
      <command name="glAccum"/>
    </remove>
  </feature>
  <feature api="gles2" name="GL_ES_VERSION_2_0" number="2.0">
    <require>
      <command name="glEnable"/>
    </require>
  </feature>
  <extensions>
    <extension name="GL_KHR_debug" supported="gl|glcore|gles2">
      <require>
        <enum name="GL_DEBUG_OUTPUT"/>
        <command name="glDebugMessageCallback"/>
      </require>
    </extension>
    <extension name="GL_OES_gles_only" supported="gles2">
      <require>
        <enum name="GL_VERSION_ES_CM_1_1"/>
      </require>
    </extension>
  </extensions>
</registry>
`

func TestParseEnums(t *testing.T) {
	reg, err := Parse([]byte(fixtureXML))
	require.NoError(t, err)

	assert.Equal(t, "0", reg.Enums["GL_FALSE"])
	assert.Equal(t, "0x0B44", reg.Enums["GL_CULL_FACE"])

	// C integer suffixes must not survive into Go literals.
	assert.Equal(t, "0xFFFFFFFFFFFFFFFF", reg.Enums["GL_TIMEOUT_IGNORED"])

	// api-specific redefinitions for other APIs are skipped.
	_, ok := reg.Enums["GL_VERSION_ES_CM_1_1"]
	assert.False(t, ok)
}

func TestParseCommands(t *testing.T) {
	reg, err := Parse([]byte(fixtureXML))
	require.NoError(t, err)

	enable := reg.Commands["glEnable"]
	assert.Equal(t, "", enable.Ret)
	require.Len(t, enable.Params, 1)
	assert.Equal(t, Param{Name: "cap", CType: "GLenum"}, enable.Params[0])

	getError := reg.Commands["glGetError"]
	assert.Equal(t, "GLenum", getError.Ret)
	assert.Empty(t, getError.Params)

	getString := reg.Commands["glGetString"]
	assert.Equal(t, "const GLubyte *", getString.Ret)

	bufferData := reg.Commands["glBufferData"]
	require.Len(t, bufferData.Params, 4)
	assert.Equal(t, "const void *", bufferData.Params[2].CType)

	mapRange := reg.Commands["glMapBufferRange"]
	assert.Equal(t, "void *", mapRange.Ret)
}

func TestParseFeaturesAndExtensions(t *testing.T) {
	reg, err := Parse([]byte(fixtureXML))
	require.NoError(t, err)

	require.Len(t, reg.Features, 5)
	assert.Equal(t, "GL_VERSION_3_2", reg.Features[3].Name)
	require.Len(t, reg.Features[3].Remove, 1)
	assert.Equal(t, "core", reg.Features[3].Remove[0].Profile)
	assert.Contains(t, reg.Features[3].Remove[0].Commands, "glAccum")

	ext, ok := reg.Extensions["GL_KHR_debug"]
	require.True(t, ok)
	assert.Equal(t, "gl|glcore|gles2", ext.Supported)
}

func TestCleanEnumValue(t *testing.T) {
	assert.Equal(t, "0xFFFFFFFF", cleanEnumValue("0xFFFFFFFFu"))
	assert.Equal(t, "0xFFFFFFFFFFFFFFFF", cleanEnumValue("0xFFFFFFFFFFFFFFFFull"))
	assert.Equal(t, "1", cleanEnumValue("1"))
}
