package idx_test

import (
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/leasehold/pkg/idx"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	id := idx.New()
	require.False(t, id.IsZero())
	require.Len(t, id.String(), 26)

	got, err := idx.Parse("  " + id.String() + "\n")
	require.NoError(t, err)
	require.Equal(t, id, got)

	for _, s := range []string{"", "   ", "prop-1", "01HQ7T3Z1MZ0JQ3M6MZQ1FQ3Z", "01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZVX"} {
		_, err := idx.Parse(s)
		require.ErrorIs(t, err, idx.ErrInvalid, "input %q", s)
		require.False(t, idx.Valid(s), "input %q", s)
	}
	require.True(t, idx.Valid("01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV"))
}

func TestSortsInMintOrder(t *testing.T) {
	at := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	ids := make([]string, 50)
	for i := range ids {
		ids[i] = idx.NewAt(at).String()
	}
	require.True(t, slices.IsSorted(ids), "same millisecond IDs keep call order")

	later := idx.NewAt(at.Add(time.Millisecond))
	require.Less(t, ids[len(ids)-1], later.String())
}

func TestConcurrentMintingIsUnique(t *testing.T) {
	const workers, each = 8, 200

	var (
		mu   sync.Mutex
		seen = make(map[idx.ID]struct{}, workers*each)
		wg   sync.WaitGroup
	)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range each {
				id := idx.New()
				mu.Lock()
				seen[id] = struct{}{}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	require.Len(t, seen, workers*each)
}

func TestTime(t *testing.T) {
	at := time.Date(2026, 3, 1, 9, 30, 15, 250*int(time.Millisecond), time.UTC)
	require.True(t, at.Equal(idx.NewAt(at).Time()))
	require.True(t, idx.Zero.Time().IsZero())
	require.True(t, idx.ID("garbage").Time().IsZero())
}
