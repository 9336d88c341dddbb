package ordernum

import (
	"regexp"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_Next_Format(t *testing.T) {
	gen := NewGenerator("SQ")

	number, err := gen.Next()
	require.NoError(t, err)

	pattern := regexp.MustCompile(`^SQ-\d{8}-[0-9A-F]{8}$`)
	assert.Regexp(t, pattern, number)
}

func TestGenerator_DefaultPrefix(t *testing.T) {
	gen := NewGenerator("  ")

	number, err := gen.Next()
	require.NoError(t, err)
	assert.Regexp(t, `^SQ-`, number)
}

func TestGenerator_LowercasePrefixNormalized(t *testing.T) {
	gen := NewGenerator("shop")

	number, err := gen.Next()
	require.NoError(t, err)
	assert.Regexp(t, `^SHOP-`, number)
}

func TestGenerator_ConcurrentNumbersDistinct(t *testing.T) {
	gen := NewGenerator("SQ")

	const n = 1000
	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		numbers = make(map[string]bool, n)
	)

	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()

			number, err := gen.Next()
			assert.NoError(t, err)

			mu.Lock()
			numbers[number] = true
			mu.Unlock()
		}()
	}
	wg.Wait()

	// Four random bytes give 4.3B suffixes; the birthday bound for 1000
	// draws is ~1e-4, so a collision here means a broken randomness source.
	assert.Len(t, numbers, n)
}
