package editor

import (
	"sync"
	"testing"
)

func TestCoalescerLatestWins(t *testing.T) {
	var c Coalescer[MoveNode]
	for i := range 10 {
		c.Submit(MoveNode{ID: "n1", X: float64(i)})
	}

	got, ok := c.Take()
	if !ok || got.X != 9 {
		t.Errorf("Take() = %+v, %v; want X=9", got, ok)
	}
	if _, ok := c.Take(); ok {
		t.Error("second Take() should find nothing pending")
	}
}

func TestCoalescerCancel(t *testing.T) {
	var c Coalescer[int]
	c.Submit(1)
	if !c.Pending() {
		t.Fatal("expected pending value")
	}
	c.Cancel()
	if c.Pending() {
		t.Error("Cancel should drop the pending value")
	}
	if _, ok := c.Take(); ok {
		t.Error("Take after Cancel should find nothing")
	}
}

func TestCoalescerConcurrentSubmit(t *testing.T) {
	var c Coalescer[int]
	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Submit(i)
		}()
	}
	wg.Wait()

	if _, ok := c.Take(); !ok {
		t.Fatal("expected one pending value")
	}
	if c.Pending() {
		t.Error("Take should leave nothing pending")
	}
}
