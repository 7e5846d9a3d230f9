package watcher

import (
	"fmt"
	"sync"
	"time"
)

// debouncer coalesces bursts of change events (editors often write a file
// several times in quick succession) into one handler call.
type debouncer struct {
	delay  time.Duration
	events map[string]FileChangeEvent
	timer  *time.Timer
	mutex  sync.Mutex
	done   chan struct{}
}

func newDebouncer(delay time.Duration) *debouncer {
	return &debouncer{
		delay:  delay,
		events: make(map[string]FileChangeEvent),
		done:   make(chan struct{}),
	}
}

func (d *debouncer) add(event FileChangeEvent, handler FileChangeHandler) {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	d.events[event.Path] = event
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, func() {
		d.flush(handler)
	})
}

func (d *debouncer) flush(handler FileChangeHandler) {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	if len(d.events) == 0 {
		return
	}
	changed := make([]string, 0, len(d.events))
	for path := range d.events {
		changed = append(changed, path)
	}
	d.events = make(map[string]FileChangeEvent)
	if err := handler(changed); err != nil {
		fmt.Printf("Re-analysis failed: %v\n", err)
	}
}

func (d *debouncer) stop() {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	close(d.done)
}
