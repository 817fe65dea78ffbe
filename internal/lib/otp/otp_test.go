package otp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		code, err := Generate()
		require.NoError(t, err)
		assert.Len(t, code, CodeLength)
		for _, r := range code {
			assert.True(t, r >= '0' && r <= '9', "code must contain only digits: %s", code)
		}
		seen[code] = struct{}{}
	}
	// 100 подряд одинаковых кодов — практически невозможное событие
	assert.Greater(t, len(seen), 1)
}
