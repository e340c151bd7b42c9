package game

import "sync"

// Intent is the per-tick command set, already abstracted from key bindings.
// Every flag is level-triggered; the world edge-detects ToggleZoom.
type Intent struct {
	TurnLeft     bool
	TurnRight    bool
	MoveForward  bool
	MoveBackward bool
	Fire         bool
	Reload       bool
	ToggleZoom   bool
	Restart      bool
}

// Merge ORs every flag of o into in.
func (in Intent) Merge(o Intent) Intent {
	return Intent{
		TurnLeft:     in.TurnLeft || o.TurnLeft,
		TurnRight:    in.TurnRight || o.TurnRight,
		MoveForward:  in.MoveForward || o.MoveForward,
		MoveBackward: in.MoveBackward || o.MoveBackward,
		Fire:         in.Fire || o.Fire,
		Reload:       in.Reload || o.Reload,
		ToggleZoom:   in.ToggleZoom || o.ToggleZoom,
		Restart:      in.Restart || o.Restart,
	}
}

// IntentBuffer latches intents between simulation ticks. Producers (a frame
// loop or a background poller) Press; the simulation Takes once per tick.
// The buffer is the only state input producers may write.
type IntentBuffer struct {
	mu      sync.Mutex
	pending Intent
	held    Intent
}

// Press merges a sampled intent into the pending snapshot.
func (b *IntentBuffer) Press(in Intent) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pending = b.pending.Merge(in)
	b.held = in
}

// Reset drops every latched and held flag.
func (b *IntentBuffer) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pending = Intent{}
	b.held = Intent{}
}

// Take returns the latched snapshot and resets it to the most recent
// sample, so keys still held stay active on the next tick.
func (b *IntentBuffer) Take() Intent {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := b.pending
	b.pending = b.held
	return out
}
