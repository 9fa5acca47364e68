package engine

import "testing"

func TestEventInvokeOrder(t *testing.T) {
	var e EventWithArg[int]
	var got []int

	e.AddListener(func(v int) { got = append(got, v*10) })
	e.AddListener(func(v int) { got = append(got, v*100) })

	e.Invoke(2)

	if len(got) != 2 || got[0] != 20 || got[1] != 200 {
		t.Errorf("Expected [20 200], got %v", got)
	}
}

func TestEventNilListenerIgnored(t *testing.T) {
	var e EventWithArg[string]

	if id := e.AddListener(nil); id != 0 {
		t.Errorf("Expected id 0 for nil listener, got %d", id)
	}
	if e.GetListenerCount() != 0 {
		t.Errorf("Expected 0 listeners, got %d", e.GetListenerCount())
	}

	// Should not panic
	e.Invoke("x")
}

func TestEventRemoveListener(t *testing.T) {
	var e EventWithArg[int]
	calls := 0

	first := e.AddListener(func(int) { calls++ })
	e.AddListener(func(int) { calls += 10 })

	e.RemoveListener(first)
	e.Invoke(0)

	if calls != 10 {
		t.Errorf("Expected only second listener to run, calls = %d", calls)
	}
	if e.GetListenerCount() != 1 {
		t.Errorf("Expected 1 listener, got %d", e.GetListenerCount())
	}

	// Unknown id is a no-op
	e.RemoveListener(99)
	if e.GetListenerCount() != 1 {
		t.Errorf("Expected 1 listener after removing unknown id, got %d", e.GetListenerCount())
	}
}

func TestEventRemoveAllListeners(t *testing.T) {
	var e EventWithArg[int]
	e.AddListener(func(int) {})
	e.AddListener(func(int) {})

	e.RemoveAllListeners()

	if e.GetListenerCount() != 0 {
		t.Errorf("Expected 0 listeners, got %d", e.GetListenerCount())
	}
}
