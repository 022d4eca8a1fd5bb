package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	errFirst  = New("first")
	errSecond = New("second")
)

func TestWrap_KeepsCauseAndStack(t *testing.T) {
	err := Wrap(errFirst, "loading cart")

	assert.True(t, Is(err, errFirst))
	assert.Equal(t, "loading cart: first", err.Error())
	assert.Contains(t, fmt.Sprintf("%+v", err), "TestWrap_KeepsCauseAndStack")
}

func TestWrap_NilStaysNil(t *testing.T) {
	assert.NoError(t, Wrap(nil, "ignored"))
	assert.NoError(t, WithStack(nil))
}

func TestIsAny(t *testing.T) {
	err := Wrapf(errSecond, "attempt %d", 2)

	assert.True(t, IsAny(err, errFirst, errSecond))
	assert.False(t, IsAny(err, errFirst))
	assert.False(t, IsAny(err))
}

func TestJoin(t *testing.T) {
	err := Join(errFirst, nil, errSecond)

	assert.True(t, Is(err, errFirst))
	assert.True(t, Is(err, errSecond))
	assert.Nil(t, Join(nil, nil))
}
