package events

import (
	"context"

	"sort-visualizer/internal/models"
	"sort-visualizer/internal/uithread"
)

// Handler consumes one notification on the UI thread
type Handler func(n models.Notification)

// Pump moves notifications from an Inbox onto the UI thread. Each drained
// batch runs inside a single DoAndWait, in posting order, so handlers never
// overlap and never reorder.
type Pump struct {
	inbox      *Inbox
	dispatcher uithread.Dispatcher
	handler    Handler
	done       chan struct{}
}

func NewPump(inbox *Inbox, dispatcher uithread.Dispatcher, handler Handler) *Pump {
	return &Pump{
		inbox:      inbox,
		dispatcher: dispatcher,
		handler:    handler,
		done:       make(chan struct{}),
	}
}

// Run delivers notifications until the inbox is closed and drained, or ctx
// is cancelled.
func (p *Pump) Run(ctx context.Context) {
	defer close(p.done)

	for {
		batch, closed := p.inbox.take()
		if len(batch) > 0 {
			p.dispatcher.DoAndWait(func() {
				for _, n := range batch {
					p.handler(n)
				}
			})
		}
		if closed {
			// Post drops everything after Close, so this batch was the last
			return
		}

		select {
		case <-p.inbox.wake:
		case <-ctx.Done():
			return
		}
	}
}

// Done is closed when Run returns
func (p *Pump) Done() <-chan struct{} {
	return p.done
}
