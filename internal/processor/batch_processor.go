package processor

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"boardscout/server/config"
	"boardscout/server/internal/database"
	"boardscout/server/internal/models"
	"boardscout/server/internal/queue"
)

// TxRunner is the slice of *gorm.DB the processor needs; it keeps the
// processor testable without a live database.
type TxRunner interface {
	Transaction(fc func(*gorm.DB) error, opts ...*sql.TxOptions) error
}

// BatchProcessor drains the import queue and writes billboard batches to the
// database with transaction and retry handling.
type BatchProcessor struct {
	db        TxRunner
	logger    *logrus.Logger
	config    *config.Config
	queue     *queue.BillboardQueue
	tasks     chan []*models.Billboard
	waitGroup sync.WaitGroup
	ctx       context.Context
	cancel    context.CancelFunc
}

func NewBatchProcessor(db TxRunner, queue *queue.BillboardQueue, config *config.Config, logger *logrus.Logger) *BatchProcessor {
	ctx, cancel := context.WithCancel(context.Background())
	return &BatchProcessor{
		db:     db,
		queue:  queue,
		config: config,
		logger: logger,
		tasks:  make(chan []*models.Billboard, config.BatchImport.ProcessorCount),
		ctx:    ctx,
		cancel: cancel,
	}
}

// Start registers the queue handler and spawns the worker pool. The queue
// delivers each batch to every subscribed handler, so the processor
// subscribes exactly once and fans batches out to workers itself; the
// subscription happens synchronously so nothing pushed after Start returns
// can be dropped.
func (p *BatchProcessor) Start() {
	p.queue.Subscribe(func(batch []*models.Billboard) error {
		select {
		case p.tasks <- batch:
			return nil
		case <-p.ctx.Done():
			return p.ctx.Err()
		}
	})

	for i := 0; i < p.config.BatchImport.ProcessorCount; i++ {
		p.waitGroup.Add(1)
		go p.processLoop()
	}
}

// Stop gracefully shuts down the processor.
func (p *BatchProcessor) Stop() {
	p.cancel()
	p.waitGroup.Wait()
}

func (p *BatchProcessor) processLoop() {
	defer p.waitGroup.Done()

	for {
		select {
		case <-p.ctx.Done():
			return
		case batch := <-p.tasks:
			if err := p.processBatch(batch); err != nil {
				p.logger.WithError(err).Error("Dropping batch after exhausting retries")
			}
		}
	}
}

// processBatch handles a single batch of billboards with transaction and retry logic.
func (p *BatchProcessor) processBatch(batch []*models.Billboard) error {
	var err error
	for attempt := 0; attempt <= p.config.BatchImport.MaxRetries; attempt++ {
		if attempt > 0 {
			p.logger.Infof("Retrying batch processing, attempt %d of %d", attempt, p.config.BatchImport.MaxRetries)
			time.Sleep(time.Duration(p.config.BatchImport.RetryDelay) * time.Second)
		}

		err = p.db.Transaction(func(tx *gorm.DB) error {
			if err := database.UpsertBillboards(tx, batch); err != nil {
				return fmt.Errorf("failed to upsert billboards batch: %w", err)
			}
			return nil
		})

		if err == nil {
			p.logger.Infof("Successfully processed batch of %d billboards", len(batch))
			return nil
		}

		p.logger.Errorf("Batch processing failed: %v", err)
	}

	return fmt.Errorf("failed to process batch after %d attempts: %w", p.config.BatchImport.MaxRetries, err)
}
