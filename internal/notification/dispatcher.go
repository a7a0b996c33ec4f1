package notification

import (
	"context"
	"sync"
	"time"
)

const (
	defaultQueueSize   = 100
	defaultSendTimeout = 30 * time.Second
)

// Dispatcher asynchronous delivery queue. Dispatch never blocks the caller:
// when the buffer is full the message is dropped and logged.
type Dispatcher struct {
	sender   Sender
	queue    chan Message
	logger   Logger
	observer Observer
	timeout  time.Duration

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

// NewDispatcher starts workers consuming the queue
func NewDispatcher(sender Sender, queueSize, workers int, logger Logger, observer Observer) *Dispatcher {
	if queueSize <= 0 {
		queueSize = defaultQueueSize
	}
	if workers <= 0 {
		workers = 1
	}

	d := &Dispatcher{
		sender:   sender,
		queue:    make(chan Message, queueSize),
		logger:   logger,
		observer: observer,
		timeout:  defaultSendTimeout,
	}

	d.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go d.worker()
	}
	return d
}

// Dispatch enqueues msg
func (d *Dispatcher) Dispatch(msg Message) {
	if len(msg.To) == 0 {
		d.logger.Warn("Dispatch: %s has no recipients, skipped", msg.Kind)
		d.observe(msg.Kind, "skipped")
		return
	}

	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		d.logger.Warn("Dispatch: dispatcher closed, dropping %s to %v", msg.Kind, msg.To)
		d.observe(msg.Kind, "dropped")
		return
	}

	select {
	case d.queue <- msg:
	default:
		d.logger.Error("Dispatch: queue full, dropping %s to %v", msg.Kind, msg.To)
		d.observe(msg.Kind, "dropped")
	}
}

// Close stops accepting messages and waits until the queue is drained
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	close(d.queue)
	d.mu.Unlock()

	d.wg.Wait()
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()
	for msg := range d.queue {
		d.deliver(msg)
	}
}

func (d *Dispatcher) deliver(msg Message) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("Dispatch: panic while sending %s: %v", msg.Kind, r)
			d.observe(msg.Kind, "failed")
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()

	if err := d.sender.Send(ctx, msg); err != nil {
		d.logger.Error("Dispatch: failed to send %s to %v: %v", msg.Kind, msg.To, err)
		d.observe(msg.Kind, "failed")
		return
	}

	d.observe(msg.Kind, "sent")
	if msg.OnSent != nil {
		msg.OnSent(ctx)
	}
}

func (d *Dispatcher) observe(kind Kind, result string) {
	if d.observer != nil {
		d.observer.ObserveNotification(string(kind), result)
	}
}
