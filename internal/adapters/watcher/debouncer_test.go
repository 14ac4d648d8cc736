package watcher_test

import (
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caxe-dev/cx/internal/adapters/watcher"
)

type recorder struct {
	mu      sync.Mutex
	batches [][]string
}

func (r *recorder) record(paths []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	sort.Strings(paths)
	r.batches = append(r.batches, paths)
}

func (r *recorder) get() [][]string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([][]string(nil), r.batches...)
}

func TestDebouncer_CoalescesBurst(t *testing.T) {
	rec := &recorder{}
	d := watcher.NewDebouncer(20*time.Millisecond, rec.record)

	d.Add("src/main.cpp")
	d.Add("src/util.cpp")
	d.Add("src/main.cpp")

	require.Eventually(t, func() bool { return len(rec.get()) == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, []string{"src/main.cpp", "src/util.cpp"}, rec.get()[0])
}

func TestDebouncer_QuietWindowResets(t *testing.T) {
	rec := &recorder{}
	d := watcher.NewDebouncer(50*time.Millisecond, rec.record)

	d.Add("a.cpp")
	time.Sleep(20 * time.Millisecond)
	d.Add("b.cpp")

	// First window was reset, so nothing fired yet.
	assert.Empty(t, rec.get())

	require.Eventually(t, func() bool { return len(rec.get()) == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, []string{"a.cpp", "b.cpp"}, rec.get()[0])
}

func TestDebouncer_FlushDeliversPending(t *testing.T) {
	rec := &recorder{}
	d := watcher.NewDebouncer(time.Hour, rec.record)

	d.Add("a.cpp")
	d.Flush()

	batches := rec.get()
	require.Len(t, batches, 1)
	assert.Equal(t, []string{"a.cpp"}, batches[0])
}

func TestDebouncer_FlushWithNothingPending(t *testing.T) {
	rec := &recorder{}
	d := watcher.NewDebouncer(time.Hour, rec.record)

	d.Flush()
	assert.Empty(t, rec.get())
}
