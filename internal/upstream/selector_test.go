package upstream

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFixedSelector(t *testing.T) {
	assert.Equal(t, "https://a.example", FixedSelector("https://a.example").Pick())
}

func TestRandomSelector_UsesInjectedChoice(t *testing.T) {
	urls := []string{"https://a", "https://b", "https://c"}
	sel := NewRandomSelector(urls, func(n int) int { return n - 1 })
	assert.Equal(t, "https://c", sel.Pick())
}

func TestRandomSelector_DefaultStaysInPool(t *testing.T) {
	urls := []string{"https://a", "https://b"}
	sel := NewRandomSelector(urls, nil)
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		seen[sel.Pick()] = true
	}
	for u := range seen {
		assert.Contains(t, urls, u)
	}
}

func TestRandomSelector_CopiesInput(t *testing.T) {
	urls := []string{"https://a"}
	sel := NewRandomSelector(urls, nil)
	urls[0] = "https://mutated"
	assert.Equal(t, []string{"https://a"}, sel.URLs())
}

func TestRandomSelector_Empty(t *testing.T) {
	assert.Equal(t, "", NewRandomSelector(nil, nil).Pick())
}

func TestExtractMessage(t *testing.T) {
	assert.Equal(t, "boom", ExtractMessage([]byte(`{"error":"boom"}`)))
	assert.Equal(t, "Invalid symbol.", ExtractMessage([]byte(`{"code":-1121,"msg":"Invalid symbol."}`)))
	assert.Equal(t, "", ExtractMessage([]byte(`not json`)))
	assert.Equal(t, "", ExtractMessage([]byte(`{"error":42}`)))
}
