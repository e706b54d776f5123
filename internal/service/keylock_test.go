package service

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyLock_SameKeySameMutex(t *testing.T) {
	kl := NewKeyLock()
	assert.Same(t, kl.Get(7), kl.Get(7))
	assert.NotSame(t, kl.Get(7), kl.Get(8))
}

func TestKeyLock_ConcurrentGet(t *testing.T) {
	kl := NewKeyLock()

	const workers = 64
	results := make([]*sync.Mutex, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = kl.Get(int32(i % 4))
		}(i)
	}
	wg.Wait()

	for i := 0; i < workers; i++ {
		assert.Same(t, kl.Get(int32(i%4)), results[i])
	}
}

func TestKeyLock_SerializesCriticalSection(t *testing.T) {
	kl := NewKeyLock()

	var inside, maxInside int
	var mu sync.Mutex
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			lock := kl.Get(1)
			lock.Lock()
			defer lock.Unlock()

			mu.Lock()
			inside++
			if inside > maxInside {
				maxInside = inside
			}
			mu.Unlock()

			mu.Lock()
			inside--
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, maxInside)
}
