package goid

import "testing"

func TestIDStableWithinGoroutine(t *testing.T) {
	a := ID()
	b := ID()
	if a == 0 {
		t.Fatal("ID() returned 0")
	}
	if a != b {
		t.Errorf("ID() not stable within one goroutine: %d then %d", a, b)
	}
}

func TestIDDiffersAcrossGoroutines(t *testing.T) {
	main := ID()

	got := make(chan uint64)
	go func() { got <- ID() }()

	other := <-got
	if other == 0 {
		t.Fatal("ID() returned 0 in spawned goroutine")
	}
	if other == main {
		t.Errorf("spawned goroutine reported the same id as the caller: %d", main)
	}
}
