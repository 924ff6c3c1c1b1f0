package queue

import (
	"errors"
	"sync"

	"github.com/sirupsen/logrus"

	"boardscout/server/internal/models"
)

var (
	ErrQueueFull   = errors.New("queue is full")
	ErrQueueClosed = errors.New("queue is closed")
)

// BillboardQueue is an in-memory queue of billboard batches feeding the
// import pipeline.
type BillboardQueue struct {
	items    chan []*models.Billboard
	done     chan struct{}
	maxSize  int
	closed   bool
	mu       sync.RWMutex
	logger   *logrus.Logger
	handlers []func([]*models.Billboard) error
}

// NewBillboardQueue creates a queue with the specified buffer size.
func NewBillboardQueue(bufferSize int, logger *logrus.Logger) *BillboardQueue {
	return &BillboardQueue{
		items:    make(chan []*models.Billboard, bufferSize),
		done:     make(chan struct{}),
		maxSize:  bufferSize,
		logger:   logger,
		handlers: make([]func([]*models.Billboard) error, 0),
	}
}

// Push adds a batch of billboards to the queue.
func (q *BillboardQueue) Push(billboards []*models.Billboard) error {
	q.mu.RLock()
	if q.closed {
		q.mu.RUnlock()
		return ErrQueueClosed
	}
	q.mu.RUnlock()

	// Non-blocking send to prevent deadlocks
	select {
	case q.items <- billboards:
		q.logger.WithField("batch_size", len(billboards)).Debug("Pushed batch to queue")
		return nil
	default:
		return ErrQueueFull
	}
}

// Subscribe adds a handler function that will be called for each batch.
func (q *BillboardQueue) Subscribe(handler func([]*models.Billboard) error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.handlers = append(q.handlers, handler)
}

// Start begins processing items in the queue.
func (q *BillboardQueue) Start() {
	go q.process()
}

func (q *BillboardQueue) process() {
	for {
		select {
		case <-q.done:
			return
		case batch := <-q.items:
			q.processBatch(batch)
		}
	}
}

func (q *BillboardQueue) processBatch(batch []*models.Billboard) {
	q.mu.RLock()
	handlers := q.handlers
	q.mu.RUnlock()

	for _, handler := range handlers {
		if err := handler(batch); err != nil {
			q.logger.WithError(err).Error("Handler failed to process batch")
		}
	}
}

// Close stops the queue and prevents new items from being added.
func (q *BillboardQueue) Close() error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return nil
	}

	q.closed = true
	close(q.done)
	close(q.items)
	return nil
}

// Len returns the current number of batches in the queue.
func (q *BillboardQueue) Len() int {
	return len(q.items)
}

// IsClosed returns whether the queue has been closed.
func (q *BillboardQueue) IsClosed() bool {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.closed
}
