package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var errSentinel = New("sentinel")

func TestWrapKeepsSentinel(t *testing.T) {
	t.Parallel()

	err := Wrapf(Wrap(errSentinel, "inner"), "outer %d", 1)

	assert.ErrorIs(t, err, errSentinel)
	assert.Equal(t, errSentinel, Cause(err))
	assert.Equal(t, "outer 1: inner: sentinel", err.Error())
	assert.NoError(t, Wrap(nil, "nothing"))
}

func TestStackTrace(t *testing.T) {
	t.Parallel()

	assert.Empty(t, StackTrace(nil))
	assert.Equal(t, "sentinel", StackTrace(errSentinel))

	trace := StackTrace(Wrap(errSentinel, "ctx"))
	assert.Contains(t, trace, "ctx: sentinel")
	assert.Contains(t, trace, "TestStackTrace")
}
