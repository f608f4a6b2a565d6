package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/aurora-hotel/inventory-system/internal/api/metrics"
	"github.com/aurora-hotel/inventory-system/internal/core/ports"
)

const (
	defaultWorkers = 8
	channelBuffer  = 256
)

// Dispatcher routes stay events to a fixed set of workers using consistent
// hashing on the room number, guaranteeing per-room event ordering.
type Dispatcher struct {
	workers []chan ports.StayEventInput
	service ports.EventService
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.EventService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.StayEventInput, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.StayEventInput, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends an event to the worker responsible for its room.
// The call is non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(event ports.StayEventInput) {
	idx := d.shardIndex(event.RoomNumber)
	d.workers[idx] <- event
	metrics.EventsQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
}

// EnqueueBatch enqueues multiple events preserving per-room ordering.
func (d *Dispatcher) EnqueueBatch(events []ports.StayEventInput) {
	for _, e := range events {
		d.Enqueue(e)
	}
}

// shardIndex maps a room number deterministically to a worker index.
func (d *Dispatcher) shardIndex(roomNumber string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(roomNumber))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.StayEventInput) {
	workerID := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			metrics.EventsQueueDepth.WithLabelValues(workerID).Set(float64(len(ch)))
			if err := d.service.Process(ctx, event); err != nil {
				metrics.EventsErrorsTotal.WithLabelValues("process_failed").Inc()
				d.log.Error().Err(err).
					Str("room", event.RoomNumber).
					Int("worker_id", id).
					Msg("event processing failed")
				continue
			}
			metrics.EventsProcessedTotal.WithLabelValues(event.Type, event.Source).Inc()
		}
	}
}
