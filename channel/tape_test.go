package channel

import (
	"bufio"
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type closedReader struct{}

func (closedReader) Read(p []byte) (int, error) {
	return 0, os.ErrClosed
}

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) {
	return 0, errors.New("write failed")
}

func TestTape_Receive(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{Input: strings.NewReader("hi")}

	value, ok := tape.Receive()
	assert.True(ok)
	assert.Equal(uint8('h'), value)

	value, ok = tape.Receive()
	assert.True(ok)
	assert.Equal(uint8('i'), value)

	value, ok = tape.Receive()
	assert.False(ok)
	assert.Equal(uint8(0), value)
}

func TestTape_ReceiveClosed(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{Input: closedReader{}}
	_, ok := tape.Receive()
	assert.False(ok)

	tape = &Tape{}
	_, ok = tape.Receive()
	assert.False(ok)
}

func TestTape_SendFlush(t *testing.T) {
	assert := assert.New(t)

	sink := &bytes.Buffer{}
	tape := &Tape{Output: bufio.NewWriter(sink), Flush: true}

	assert.NoError(tape.Send('a'))
	assert.Equal("a", sink.String())
	assert.NoError(tape.Send('b'))
	assert.Equal("ab", sink.String())
}

func TestTape_SendBuffered(t *testing.T) {
	assert := assert.New(t)

	sink := &bytes.Buffer{}
	tape := &Tape{Output: bufio.NewWriter(sink)}

	assert.NoError(tape.Send('a'))
	assert.NoError(tape.Send('b'))
	assert.Equal("", sink.String())

	assert.NoError(tape.Drain())
	assert.Equal("ab", sink.String())
}

func TestTape_SendUnbuffered(t *testing.T) {
	assert := assert.New(t)

	sink := &bytes.Buffer{}
	tape := &Tape{Output: sink, Flush: true}

	assert.NoError(tape.Send('z'))
	assert.Equal("z", sink.String())
	assert.NoError(tape.Drain())
}

func TestTape_SendError(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{Output: failWriter{}, Flush: true}
	assert.Error(tape.Send('z'))
}
