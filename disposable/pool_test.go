package disposable

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeResource is a Disposable that can be told to fail.
type fakeResource struct {
	name     string
	disposed bool
	panicVal any
	log      *[]string
}

func (f *fakeResource) Dispose() {
	if f.panicVal != nil {
		panic(f.panicVal)
	}
	f.disposed = true
	if f.log != nil {
		*f.log = append(*f.log, f.name)
	}
}

func (f *fakeResource) IsDisposed() bool {
	return f.disposed
}

func Test_PoolDisposesInInsertionOrder(t *testing.T) {
	var order []string
	pool := NewPool()
	for _, name := range []string{"first", "second", "third"} {
		require.NoError(t, pool.Add(name, &fakeResource{name: name, log: &order}))
	}
	require.Equal(t, 3, pool.Len())

	errs := pool.Dispose()
	assert.Nil(t, errs)
	assert.Equal(t, []string{"first", "second", "third"}, order)
	assert.True(t, pool.IsDisposed())
	assert.Zero(t, pool.Len())
}

func Test_PoolAggregatesOneFaultPerFailingResource(t *testing.T) {
	boom := errors.New("handle still busy")
	good := &fakeResource{name: "good"}

	pool := NewPool()
	require.NoError(t, pool.Add("flaky-a", &fakeResource{panicVal: boom}))
	require.NoError(t, pool.Add("good", good))
	require.NoError(t, pool.Add("flaky-b", &fakeResource{panicVal: "not even an error"}))

	errs := pool.Dispose()
	require.Len(t, errs, 2)

	// A failing resource never stops the rest of the pool from releasing.
	assert.True(t, good.IsDisposed())

	assert.True(t, errors.Is(errs[0], boom))
	assert.Contains(t, errs[0].Error(), "flaky-a")
	assert.Contains(t, errs[1].Error(), "flaky-b")
	assert.Contains(t, errs[1].Error(), "not even an error")
}

func Test_PoolAddAfterDisposeFails(t *testing.T) {
	pool := NewPool()
	pool.Dispose()

	err := pool.Add("late", &fakeResource{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDisposed))

	var de *DisposedError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, "disposable pool", de.Resource)
}

func Test_PoolDisposeIsIdempotent(t *testing.T) {
	pool := NewPool()
	require.NoError(t, pool.Add("only", &fakeResource{panicVal: "always fails"}))

	errs := pool.Dispose()
	require.Len(t, errs, 1)

	assert.Nil(t, pool.Dispose())
	assert.True(t, pool.IsDisposed())
}
