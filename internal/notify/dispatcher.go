// internal/notify/dispatcher.go
package notify

import (
	"context"
	"sync"
	"time"

	"internship-allocator/internal/common/logger"
	"internship-allocator/internal/common/metrics"
)

const sendTimeout = 10 * time.Second

// Dispatcher decouples email delivery from request handling with a bounded
// queue and a single delivery worker. When the queue is full the email is
// dropped and logged rather than blocking an allocation.
type Dispatcher struct {
	queue  chan Email
	sender Sender
	logger logger.Logger

	closeOnce sync.Once
	done      chan struct{}
}

func NewDispatcher(sender Sender, queueSize int, log logger.Logger) *Dispatcher {
	if queueSize <= 0 {
		queueSize = 256
	}
	d := &Dispatcher{
		queue:  make(chan Email, queueSize),
		sender: sender,
		logger: log.WithFields(map[string]interface{}{"component": "email-dispatcher"}),
		done:   make(chan struct{}),
	}
	go d.run()
	return d
}

// Enqueue hands an email to the delivery worker. Returns false if the queue
// is full or the dispatcher is closed.
func (d *Dispatcher) Enqueue(email Email) bool {
	select {
	case <-d.done:
		return false
	default:
	}

	select {
	case d.queue <- email:
		metrics.EmailsQueued.WithLabelValues(email.Kind).Inc()
		return true
	default:
		d.logger.Warn("email queue full, dropping", map[string]interface{}{
			"to":   email.To,
			"kind": email.Kind,
		})
		return false
	}
}

// Close stops intake and drains whatever is already queued. The queue channel
// itself is never closed, so an Enqueue racing with Close can not panic; at
// worst its email lands in the buffer and is delivered during the drain.
func (d *Dispatcher) Close() {
	d.closeOnce.Do(func() {
		close(d.done)
	})
}

func (d *Dispatcher) run() {
	for {
		select {
		case email := <-d.queue:
			d.deliver(email)
		case <-d.done:
			for {
				select {
				case email := <-d.queue:
					d.deliver(email)
				default:
					return
				}
			}
		}
	}
}

func (d *Dispatcher) deliver(email Email) {
	ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
	defer cancel()
	if err := d.sender.Send(ctx, email); err != nil {
		d.logger.Error("email delivery failed", map[string]interface{}{
			"to":      email.To,
			"subject": email.Subject,
			"error":   err,
		})
	}
}
