package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errSentinel = New("sentinel")

func TestWrapKeepsSentinel(t *testing.T) {
	err := Wrap(errSentinel, "loading user")

	assert.True(t, Is(err, errSentinel))
	assert.Equal(t, "loading user: sentinel", err.Error())
	assert.Equal(t, errSentinel, Cause(err))
}

func TestWrapNil(t *testing.T) {
	assert.NoError(t, Wrap(nil, "nothing"))
	assert.NoError(t, WithStack(nil))
}

func TestWithStackFormatsTrace(t *testing.T) {
	err := WithStack(errSentinel)

	assert.Contains(t, fmt.Sprintf("%+v", err), "TestWithStackFormatsTrace")
}

func TestJoin(t *testing.T) {
	other := New("other")
	err := Join(errSentinel, other)

	assert.True(t, Is(err, errSentinel))
	assert.True(t, Is(err, other))
}
