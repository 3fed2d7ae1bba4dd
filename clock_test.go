package skycave

import (
	"testing"
	"time"
)

func Test_clockTagGuard(t *testing.T) {
	c := newClock(time.Second)
	c, _ = c.update(clockStartMsg{now: time.Now()})
	if !c.running {
		t.Fatalf("clock not running after start")
	}
	// A tick with a stale tag must be rejected so only one tick chain stays
	// alive.
	c.tag = 3
	updated, cmd := c.update(clockTickMsg{tag: 1})
	if cmd != nil {
		t.Errorf("stale tick scheduled a follow-up")
	}
	if updated.tag != 3 {
		t.Errorf("stale tick advanced tag to %d", updated.tag)
	}
	updated, cmd = c.update(clockTickMsg{tag: 3})
	if cmd == nil {
		t.Errorf("current tick did not schedule a follow-up")
	}
	if updated.tag != 4 {
		t.Errorf("tag = %d after tick, want 4", updated.tag)
	}
}

func Test_clockFormats(t *testing.T) {
	var c clock
	if c.date() != "" || c.time() != "" {
		t.Errorf("zero clock renders %q %q, want empty", c.date(), c.time())
	}
	c.now = time.Date(2024, 1, 30, 13, 5, 9, 0, time.UTC)
	if got := c.date(); got != "2024-01-30" {
		t.Errorf("date() = %q, want 2024-01-30", got)
	}
	if got := c.time(); got != "13:05:09" {
		t.Errorf("time() = %q, want 13:05:09", got)
	}
}
