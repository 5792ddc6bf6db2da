package utils

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSequenceGuard(t *testing.T) {
	t.Run("Ticket mais recente vence o anterior", func(t *testing.T) {
		var guard SequenceGuard

		first := guard.Next()
		assert.True(t, guard.Latest(first))

		second := guard.Next()
		assert.False(t, guard.Latest(first))
		assert.True(t, guard.Latest(second))
	})

	t.Run("Emissão concorrente produz exatamente um ticket vencedor", func(t *testing.T) {
		var guard SequenceGuard
		var wg sync.WaitGroup

		const goroutines = 50
		tickets := make([]uint64, goroutines)

		for i := 0; i < goroutines; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				tickets[i] = guard.Next()
			}(i)
		}
		wg.Wait()

		winners := 0
		for _, ticket := range tickets {
			if guard.Latest(ticket) {
				winners++
			}
		}
		assert.Equal(t, 1, winners)
	})
}
