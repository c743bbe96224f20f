package gl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrawArraysIndirectCommandLayout(t *testing.T) {
	cmd := DrawArraysIndirectCommand{
		Count:         3,
		InstanceCount: 1,
		First:         0x01020304,
		BaseInstance:  7,
	}
	buf := cmd.Encode(nil)
	require.Len(t, buf, DrawArraysIndirectCommandSize)

	// Little-endian, fields in spec order.
	assert.Equal(t, []byte{
		3, 0, 0, 0,
		1, 0, 0, 0,
		0x04, 0x03, 0x02, 0x01,
		7, 0, 0, 0,
	}, buf)

	assert.Equal(t, cmd, DecodeDrawArraysIndirectCommand(buf))
}

func TestDrawElementsIndirectCommandLayout(t *testing.T) {
	cmd := DrawElementsIndirectCommand{
		Count:         36,
		InstanceCount: 100,
		FirstIndex:    6,
		BaseVertex:    -4,
		BaseInstance:  2,
	}
	buf := cmd.Encode(nil)
	require.Len(t, buf, DrawElementsIndirectCommandSize)

	// BaseVertex is the only signed field and sits fourth.
	assert.Equal(t, []byte{
		36, 0, 0, 0,
		100, 0, 0, 0,
		6, 0, 0, 0,
		0xFC, 0xFF, 0xFF, 0xFF,
		2, 0, 0, 0,
	}, buf)

	assert.Equal(t, cmd, DecodeDrawElementsIndirectCommand(buf))
}

func TestDispatchIndirectCommandLayout(t *testing.T) {
	cmd := DispatchIndirectCommand{NumGroupsX: 16, NumGroupsY: 8, NumGroupsZ: 1}
	buf := cmd.Encode(nil)
	require.Len(t, buf, DispatchIndirectCommandSize)

	assert.Equal(t, []byte{
		16, 0, 0, 0,
		8, 0, 0, 0,
		1, 0, 0, 0,
	}, buf)

	assert.Equal(t, cmd, DecodeDispatchIndirectCommand(buf))
}

func TestEncodeAppends(t *testing.T) {
	// Multiple records can be packed back to back for MultiDraw*.
	var buf []byte
	for i := uint32(0); i < 3; i++ {
		buf = DrawArraysIndirectCommand{Count: i}.Encode(buf)
	}
	require.Len(t, buf, 3*DrawArraysIndirectCommandSize)
	for i := uint32(0); i < 3; i++ {
		got := DecodeDrawArraysIndirectCommand(buf[i*DrawArraysIndirectCommandSize:])
		assert.Equal(t, i, got.Count)
	}
}
