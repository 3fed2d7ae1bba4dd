package skycave

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func newClock(interval time.Duration) clock {
	return clock{interval: interval}
}

// clock drives the date/time readout in the screen header. Ticks once per
// interval while the application runs.
type clock struct {
	interval time.Duration
	now      time.Time
	tag      int
	running  bool
}

// start begins ticking from the current wall clock.
func (c clock) start() tea.Cmd {
	return tea.Sequence(func() tea.Msg {
		return clockStartMsg{now: time.Now()}
	}, clockTick(c.tag, c.interval))
}

// update clock state based on messages.
func (c clock) update(message tea.Msg) (clock, tea.Cmd) {
	switch msg := message.(type) {
	case clockStartMsg:
		if c.running {
			return c, nil
		}
		c.now = msg.now
		c.running = true
		return c, nil
	case clockTickMsg:
		if !c.running {
			return c, nil
		}
		// If a tag is set, and it's not the one we expect, reject the message.
		// This keeps a single tick chain alive no matter how many start
		// commands were issued.
		if msg.tag > 0 && msg.tag != c.tag {
			return c, nil
		}
		c.tag++
		c.now = time.Now()
		return c, clockTick(c.tag, c.interval)
	}
	return c, nil
}

// date returns the header date in ISO form.
func (c clock) date() string {
	if c.now.IsZero() {
		return ""
	}
	return c.now.Format(time.DateOnly)
}

// time returns the header time.
func (c clock) time() string {
	if c.now.IsZero() {
		return ""
	}
	return c.now.Format(time.TimeOnly)
}

func clockTick(tag int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(_ time.Time) tea.Msg {
		return clockTickMsg{tag: tag}
	})
}
