package scheduler

import (
	"os"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"boardscout/server/internal/database"
	"boardscout/server/internal/geocoding"
)

// JobType identifies the periodic maintenance jobs.
type JobType int

const (
	JobTypeTraffic JobType = iota
	JobTypeGeocode
)

func (j JobType) String() string {
	switch j {
	case JobTypeTraffic:
		return "traffic_backfill"
	case JobTypeGeocode:
		return "geocode_backfill"
	default:
		return "unknown"
	}
}

// Scheduler runs periodic database maintenance: the hourly traffic backfill
// that pins synthesized views/impressions, and the nightly geocoding pass
// over imported billboards missing coordinates.
type Scheduler struct {
	db           *database.Database
	geocoder     *geocoding.Geocoder
	synth        database.TrafficSynth
	logger       *logrus.Logger
	stopChan     chan struct{}
	wg           sync.WaitGroup
	jobMutex     sync.Mutex // Ensures sequential job execution
	isStartupRun bool
}

func NewScheduler(db *database.Database, geocoder *geocoding.Geocoder, synth database.TrafficSynth, logger *logrus.Logger) *Scheduler {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stdout)
		logger.SetLevel(logrus.InfoLevel)
	}

	return &Scheduler{
		db:           db,
		geocoder:     geocoder,
		synth:        synth,
		logger:       logger,
		stopChan:     make(chan struct{}),
		isStartupRun: true,
	}
}

// Start begins the scheduled tasks.
func (s *Scheduler) Start() {
	s.wg.Add(1)
	go s.runScheduler()
}

func (s *Scheduler) runScheduler() {
	defer s.wg.Done()

	// Run startup jobs in a separate goroutine so the server can come up
	go func() {
		s.jobMutex.Lock()
		defer s.jobMutex.Unlock()
		s.logger.Info("Running startup maintenance jobs")
		s.runTrafficBackfill()
		s.runGeocodeBackfill()
		s.isStartupRun = false
		s.logger.Info("Startup maintenance jobs completed")
	}()

	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopChan:
			return
		case t := <-ticker.C:
			s.executeScheduledJobs(t)
		}
	}
}

func (s *Scheduler) executeScheduledJobs(t time.Time) {
	// Skip if we're still running startup jobs
	if s.isStartupRun {
		s.logger.Debug("Skipping scheduled jobs while startup is in progress")
		return
	}

	s.jobMutex.Lock()
	defer s.jobMutex.Unlock()

	// Geocoding runs at midnight, traffic backfill every hour
	if t.Hour() == 0 && t.Minute() == 0 {
		s.runGeocodeBackfill()
	}
	if t.Minute() == 0 {
		s.runTrafficBackfill()
	}
}

func (s *Scheduler) runTrafficBackfill() {
	s.logger.WithField("job_type", JobTypeTraffic.String()).Info("Starting maintenance job")

	updated, err := s.db.UpdateMissingTraffic(s.synth)
	if err != nil {
		s.logger.WithError(err).WithField("job_type", JobTypeTraffic.String()).Error("Maintenance job failed")
		return
	}
	s.logger.WithFields(logrus.Fields{
		"job_type": JobTypeTraffic.String(),
		"updated":  updated,
	}).Info("Maintenance job completed successfully")
}

func (s *Scheduler) runGeocodeBackfill() {
	if s.geocoder == nil {
		return
	}
	s.logger.WithField("job_type", JobTypeGeocode.String()).Info("Starting maintenance job")

	if err := s.db.UpdateMissingCoordinates(s.geocoder); err != nil {
		s.logger.WithError(err).WithField("job_type", JobTypeGeocode.String()).Error("Maintenance job failed")
		return
	}
	s.logger.WithField("job_type", JobTypeGeocode.String()).Info("Maintenance job completed successfully")
}

// Stop gracefully stops the scheduler.
func (s *Scheduler) Stop() {
	close(s.stopChan)
	s.wg.Wait()
}
