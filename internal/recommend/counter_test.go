package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderedCounterKeepsFirstSeenOrder(t *testing.T) {
	c := NewOrderedCounter()
	for _, k := range []string{"b", "a", "b", "c", "a", "b"} {
		c.Inc(k)
	}

	assert.Equal(t, 3, c.Count("b"))
	assert.Equal(t, 2, c.Count("a"))
	assert.Equal(t, 1, c.Count("c"))
	assert.Equal(t, 0, c.Count("missing"))
	assert.Equal(t, 3, c.Len())

	entries := c.Entries()
	assert.Equal(t, []CountEntry{{"b", 3}, {"a", 2}, {"c", 1}}, entries)
}
