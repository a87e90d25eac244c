package worker

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunnerExecutesJobsInOrder(t *testing.T) {
	runner := NewRunner(8)

	var mu sync.Mutex
	var order []int
	for i := 0; i < 5; i++ {
		i := i
		runner.Enqueue(func() error {
			mu.Lock()
			order = append(order, i)
			mu.Unlock()
			return nil
		})
	}
	runner.Close()

	require.Equal(t, []int{0, 1, 2, 3, 4}, order)
}

// Job yang gagal atau panik tidak menghentikan job berikutnya.
func TestRunnerIsolatesFailures(t *testing.T) {
	runner := NewRunner(8)

	var mu sync.Mutex
	var done []string
	runner.Enqueue(func() error { return errors.New("gagal kirim") })
	runner.Enqueue(func() error { panic("meledak") })
	runner.Enqueue(func() error {
		mu.Lock()
		done = append(done, "selamat")
		mu.Unlock()
		return nil
	})
	runner.Close()

	assert.Equal(t, []string{"selamat"}, done)
}

func TestRunnerEnqueueAfterCloseIsNoop(t *testing.T) {
	runner := NewRunner(1)
	runner.Close()

	assert.NotPanics(t, func() {
		runner.Enqueue(func() error { return nil })
	})
	// Close kedua juga aman.
	assert.NotPanics(t, runner.Close)
}

func TestRunnerCloseDrainsPending(t *testing.T) {
	runner := NewRunner(16)

	var mu sync.Mutex
	count := 0
	for i := 0; i < 10; i++ {
		runner.Enqueue(func() error {
			mu.Lock()
			count++
			mu.Unlock()
			return nil
		})
	}
	runner.Close()

	assert.Equal(t, 10, count)
}
