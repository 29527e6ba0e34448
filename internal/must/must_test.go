package must_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.abhg.dev/keyhold/internal/must"
)

func TestNotBeBlankf(t *testing.T) {
	assert.NotPanics(t, func() {
		must.NotBeBlankf("ok", "must not be blank")
	})

	assert.Panics(t, func() {
		must.NotBeBlankf("", "must not be blank")
	})

	assert.Panics(t, func() {
		must.NotBeBlankf("  \t", "must not be blank")
	})
}

func TestNotBeNilf(t *testing.T) {
	assert.NotPanics(t, func() {
		must.NotBeNilf(new(int), "must not be nil")
	})

	assert.Panics(t, func() {
		must.NotBeNilf(nil, "must not be nil")
	})
}
