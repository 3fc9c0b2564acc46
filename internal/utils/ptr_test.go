package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringOrNil(t *testing.T) {
	assert.Nil(t, StringOrNil(""))
	assert.Nil(t, StringOrNil("  \t\n"))
	assert.Equal(t, "abc", *StringOrNil("  abc "))
}

func TestOrZero(t *testing.T) {
	assert.Equal(t, "", OrZero[string](nil))
	assert.Equal(t, 7, OrZero(Ptr(7)))
}

func TestCleanName(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{input: "Ma Long", expected: "Ma Long"},
		{input: "  Fan   Zhendong ", expected: "Fan Zhendong"},
		{input: "\tTimo\nBoll", expected: "Timo Boll"},
		{input: "   ", expected: ""},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.expected, CleanName(tc.input))
	}
}
