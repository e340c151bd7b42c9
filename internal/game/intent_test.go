package game

import (
	"sync"
	"testing"
)

func TestIntentBuffer_TapSurvivesUntilTake(t *testing.T) {
	var b IntentBuffer
	b.Press(Intent{Fire: true})
	b.Press(Intent{})
	if got := b.Take(); !got.Fire {
		t.Fatal("a tap between ticks must not be lost")
	}
	if got := b.Take(); got.Fire {
		t.Fatal("released key should not repeat on the next tick")
	}
}

func TestIntentBuffer_HeldKeyRepeats(t *testing.T) {
	var b IntentBuffer
	b.Press(Intent{MoveForward: true})
	for i := 0; i < 3; i++ {
		if !b.Take().MoveForward {
			t.Fatalf("held key dropped on take %d", i)
		}
	}
	b.Press(Intent{})
	b.Take()
	if b.Take().MoveForward {
		t.Fatal("key should stop once released")
	}
}

func TestIntent_Merge(t *testing.T) {
	got := Intent{TurnLeft: true}.Merge(Intent{Fire: true, Restart: true})
	want := Intent{TurnLeft: true, Fire: true, Restart: true}
	if got != want {
		t.Fatalf("expected %+v got %+v", want, got)
	}
}

func TestIntentBuffer_ConcurrentPress(t *testing.T) {
	var b IntentBuffer
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				b.Press(Intent{Fire: i%2 == 0, Reload: i%2 == 1})
			}
		}(i)
	}
	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-done:
				return
			default:
				b.Take()
			}
		}
	}()
	wg.Wait()
	close(done)
	b.Take()
}

func TestIntentBuffer_ResetClearsHeldAndPending(t *testing.T) {
	var b IntentBuffer
	b.Press(Intent{MoveForward: true})
	b.Press(Intent{Fire: true})
	b.Reset()
	if in := b.Take(); in != (Intent{}) {
		t.Fatalf("expected an empty snapshot after reset, got %+v", in)
	}
	if in := b.Take(); in != (Intent{}) {
		t.Fatalf("held keys should not come back after reset, got %+v", in)
	}
}
