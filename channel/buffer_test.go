package channel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuffer(t *testing.T) {
	assert := assert.New(t)

	buf := NewBuffer("AB")
	assert.Equal(2, buf.Remaining())

	value, ok := buf.Receive()
	assert.True(ok)
	assert.Equal(uint8('A'), value)

	value, ok = buf.Receive()
	assert.True(ok)
	assert.Equal(uint8('B'), value)
	assert.Equal(0, buf.Remaining())

	for range 3 {
		value, ok = buf.Receive()
		assert.False(ok)
		assert.Equal(uint8(0), value)
	}

	assert.NoError(buf.Send('x'))
	assert.NoError(buf.Send(0))
	assert.NoError(buf.Send(0xff))
	assert.Equal("x\x00\xff", buf.String())
}

func TestBuffer_Rewind(t *testing.T) {
	assert := assert.New(t)

	buf := NewBuffer("Q")
	buf.Receive()
	buf.Send('z')

	buf.Rewind()
	assert.Equal(1, buf.Remaining())
	assert.Equal("", buf.String())

	value, ok := buf.Receive()
	assert.True(ok)
	assert.Equal(uint8('Q'), value)
}

func TestBuffer_Empty(t *testing.T) {
	assert := assert.New(t)

	buf := &Buffer{}
	_, ok := buf.Receive()
	assert.False(ok)
	assert.Equal("", buf.String())
}
