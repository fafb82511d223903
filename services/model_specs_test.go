package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupModelSpecsLongestMatchWins(t *testing.T) {
	v4, ok := LookupModelSpecs("Yamaha R15 V4")
	assert.True(t, ok)
	assert.Equal(t, "Dual Channel ABS", v4.BrakeType)

	base, ok := LookupModelSpecs("Yamaha R15")
	assert.True(t, ok)
	assert.Equal(t, "Dual Disc ABS", base.BrakeType)
}

func TestLookupModelSpecsNormalizes(t *testing.T) {
	a, ok := LookupModelSpecs("HONDA HORNET 2.0")
	assert.True(t, ok)
	b, ok2 := LookupModelSpecs("honda-hornet 2.0")
	assert.True(t, ok2)
	assert.Equal(t, a, b)
}

func TestLookupModelSpecsMiss(t *testing.T) {
	_, ok := LookupModelSpecs("Unknown Cruiser 9000")
	assert.False(t, ok)
}
