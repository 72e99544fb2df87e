package lvc

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChannel_SendRecvValue(t *testing.T) {
	getter, updater := NewChannel(12)
	assert.Equal(t, 12, *getter.Latest())

	require := assert.New(t)
	require.NoError(updater.Update(123))
	require.Equal(123, *getter.Latest())
}

func TestChannel_LatestWins(t *testing.T) {
	getter, updater := NewChannel(0)

	for _, v := range []int{1, 2, 3} {
		if err := updater.Update(v); err != nil {
			t.Fatalf("update(%d): %v", v, err)
		}
	}

	if got := *getter.Latest(); got != 3 {
		t.Errorf("expected latest write 3, got %d", got)
	}
	if got := *getter.Latest(); got != 3 {
		t.Errorf("second read should repeat last value, got %d", got)
	}
}

func TestChannel_DropGetter(t *testing.T) {
	getter, updater := NewChannel(0)
	getter.Close()

	err := updater.Update(42)
	var dead *DeadGetterError[int]
	if !assertAsDeadGetterError(t, err, &dead) {
		return
	}
	if dead.Value != 42 {
		t.Errorf("expected dropped value 42, got %v", dead.Value)
	}
	if !updater.IsGetterDead() {
		t.Errorf("expected IsGetterDead to report true")
	}
}

func assertAsDeadGetterError(t *testing.T, err error, target **DeadGetterError[int]) bool {
	t.Helper()
	d, ok := err.(*DeadGetterError[int])
	if !ok {
		t.Errorf("expected *DeadGetterError[int], got %T (%v)", err, err)
		return false
	}
	*target = d
	return true
}

func TestChannel_ConcurrentSendRecv(t *testing.T) {
	getter, updater := NewChannel(0)
	var wg sync.WaitGroup
	wg.Add(1)

	ready := make(chan struct{})
	go func() {
		defer wg.Done()
		close(ready)
		for num := 1; num <= 2000; num++ {
			if err := updater.Update(num); err != nil {
				t.Errorf("update(%d): %v", num, err)
				return
			}
		}
	}()

	<-ready
	distinct := 1
	last := *getter.Latest()
	for last < 2000 {
		next := *getter.Latest()
		if next != last {
			distinct++
		}
		last = next
	}
	wg.Wait()

	if *getter.Latest() != 2000 {
		t.Errorf("expected final read 2000, got %d", *getter.Latest())
	}
	if distinct <= 1 {
		t.Errorf("expected coalescing to still allow more than one distinct read, got %d", distinct)
	}
}
