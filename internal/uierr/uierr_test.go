package uierr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTerminalIOErrorIsFatal(t *testing.T) {
	err := TerminalIOError(errors.New("raw mode failed"))
	assert.True(t, IsFatal(err))
}

func TestUnmappedAddressErrorIsNotFatal(t *testing.T) {
	err := UnmappedAddressError("left", 42)
	assert.False(t, IsFatal(err))
}

func TestQueryCompileErrorIsNotFatal(t *testing.T) {
	err := QueryCompileError("(", errors.New("unbalanced parens"))
	assert.False(t, IsFatal(err))
}
