package email

import (
	"sync"

	"go.uber.org/zap"
)

// Dispatcher decouples email delivery from the request/response lifecycle.
// Handlers submit a confirmation and return immediately; the worker's only
// output channel is the log. There is no retry and no cancellation path.
type Dispatcher struct {
	sender Sender
	jobs   chan Confirmation
	logger *zap.Logger
	wg     sync.WaitGroup
	once   sync.Once
}

func NewDispatcher(sender Sender, logger *zap.Logger) *Dispatcher {
	d := &Dispatcher{
		sender: sender,
		jobs:   make(chan Confirmation, 128),
		logger: logger,
	}
	d.wg.Add(1)
	go d.run()
	return d
}

func (d *Dispatcher) run() {
	defer d.wg.Done()
	for job := range d.jobs {
		if !d.sender.Send(job) {
			d.logger.Warn("confirmation email failed",
				zap.String("recipient", job.Recipient),
				zap.String("download_link", job.DownloadLink))
		}
	}
}

// Dispatch submits a confirmation without blocking. If the queue is full the
// job is dropped and logged; delivery here is strictly best-effort.
func (d *Dispatcher) Dispatch(c Confirmation) {
	select {
	case d.jobs <- c:
	default:
		d.logger.Warn("email queue full, dropping confirmation",
			zap.String("recipient", c.Recipient))
	}
}

// Close stops accepting jobs and waits for in-flight sends to finish.
func (d *Dispatcher) Close() {
	d.once.Do(func() {
		close(d.jobs)
	})
	d.wg.Wait()
}
