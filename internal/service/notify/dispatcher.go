// Package notify delivers submitter emails in the background. Delivery is
// best-effort: failures are retried, then logged and counted, and never
// reach the request that triggered them.
package notify

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/heartmarshall/tooldir-backend/internal/adapter/mailer"
	"github.com/heartmarshall/tooldir-backend/internal/config"
)

const (
	KindApproval  = "approval"
	KindRejection = "rejection"
)

type sender interface {
	Send(ctx context.Context, msg mailer.Message) error
}

type recorder interface {
	NotificationSent(kind string)
	NotificationFailed(kind string)
	NotificationDropped()
}

type job struct {
	kind string
	msg  mailer.Message
}

// Dispatcher queues notifications and sends them from a fixed pool of
// workers. Enqueueing never blocks: when the queue is full the message is
// dropped.
type Dispatcher struct {
	log     *slog.Logger
	sender  sender
	metrics recorder
	cfg     config.NotifyConfig

	queue   chan job
	quit    chan struct{}
	stopped atomic.Bool
	wg      sync.WaitGroup

	runCtx    context.Context
	cancelRun context.CancelFunc
	startOnce sync.Once
	stopOnce  sync.Once
}

// NewDispatcher creates a Dispatcher. Call Start before enqueueing.
func NewDispatcher(log *slog.Logger, s sender, metrics recorder, cfg config.NotifyConfig) *Dispatcher {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 1
	}
	runCtx, cancel := context.WithCancel(context.Background())
	return &Dispatcher{
		log:       log.With("service", "notify"),
		sender:    s,
		metrics:   metrics,
		cfg:       cfg,
		queue:     make(chan job, cfg.QueueSize),
		quit:      make(chan struct{}),
		runCtx:    runCtx,
		cancelRun: cancel,
	}
}

// Start launches the workers. Subsequent calls are no-ops.
func (d *Dispatcher) Start() {
	d.startOnce.Do(func() {
		for i := 0; i < d.cfg.Workers; i++ {
			d.wg.Add(1)
			go d.worker()
		}
		d.log.Info("notification dispatcher started", slog.Int("workers", d.cfg.Workers))
	})
}

// Stop stops accepting work and waits for queued messages to be sent. If ctx
// expires first, in-flight sends are cancelled and ctx.Err() is returned.
func (d *Dispatcher) Stop(ctx context.Context) error {
	var err error
	d.stopOnce.Do(func() {
		d.stopped.Store(true)
		close(d.quit)

		done := make(chan struct{})
		go func() {
			d.wg.Wait()
			close(done)
		}()

		select {
		case <-done:
		case <-ctx.Done():
			d.cancelRun()
			<-done
			err = ctx.Err()
		}
		d.cancelRun()
	})
	return err
}

// SendApprovalEmail queues the message telling a submitter their tool is live.
func (d *Dispatcher) SendApprovalEmail(email, name, toolURL string) {
	d.enqueue(job{kind: KindApproval, msg: mailer.Message{
		To:      email,
		Subject: fmt.Sprintf("%q has been approved", name),
		Body: fmt.Sprintf("Good news! Your submission %q was approved and is now listed.\n\n"+
			"View it here: %s\n", name, toolURL),
	}})
}

// SendRejectionEmail queues the message telling a submitter why their tool
// was declined.
func (d *Dispatcher) SendRejectionEmail(email, name, reason string) {
	d.enqueue(job{kind: KindRejection, msg: mailer.Message{
		To:      email,
		Subject: fmt.Sprintf("Update on your submission %q", name),
		Body: fmt.Sprintf("Thank you for submitting %q. After review we are unable to list it.\n\n"+
			"Reason: %s\n", name, reason),
	}})
}

func (d *Dispatcher) enqueue(j job) {
	if d.stopped.Load() {
		d.drop(j, "dispatcher stopped")
		return
	}
	select {
	case d.queue <- j:
	default:
		d.drop(j, "queue full")
	}
}

func (d *Dispatcher) drop(j job, why string) {
	d.metrics.NotificationDropped()
	d.log.Warn("notification dropped",
		slog.String("kind", j.kind),
		slog.String("to", j.msg.To),
		slog.String("reason", why),
	)
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()
	for {
		select {
		case j := <-d.queue:
			d.deliver(j)
		case <-d.quit:
			// Drain what was accepted before Stop.
			for {
				select {
				case j := <-d.queue:
					d.deliver(j)
				default:
					return
				}
			}
		}
	}
}

func (d *Dispatcher) newBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = d.cfg.InitialBackoff
	b.MaxElapsedTime = 0
	return backoff.WithContext(backoff.WithMaxRetries(b, d.cfg.MaxRetries), d.runCtx)
}

func (d *Dispatcher) deliver(j job) {
	attempt := 0
	op := func() error {
		attempt++
		ctx := d.runCtx
		if d.cfg.SendTimeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, d.cfg.SendTimeout)
			defer cancel()
		}
		return d.sender.Send(ctx, j.msg)
	}
	notify := func(err error, wait time.Duration) {
		d.log.Warn("notification attempt failed",
			slog.String("kind", j.kind),
			slog.Int("attempt", attempt),
			slog.Duration("retry_in", wait),
			slog.String("error", err.Error()),
		)
	}

	if err := backoff.RetryNotify(op, d.newBackOff(), notify); err != nil {
		d.metrics.NotificationFailed(j.kind)
		d.log.Error("notification failed",
			slog.String("kind", j.kind),
			slog.String("to", j.msg.To),
			slog.Int("attempts", attempt),
			slog.String("error", err.Error()),
		)
		return
	}
	d.metrics.NotificationSent(j.kind)
	d.log.Info("notification sent", slog.String("kind", j.kind), slog.String("to", j.msg.To))
}
