package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/Sepsepi/blakeaddr/internal/lookup"
	"github.com/Sepsepi/blakeaddr/internal/metrics"
	"github.com/Sepsepi/blakeaddr/internal/models"
	"github.com/Sepsepi/blakeaddr/internal/parser"
	"github.com/Sepsepi/blakeaddr/internal/phone"
	"github.com/Sepsepi/blakeaddr/internal/repository"
)

// PipelineService pulls owner records from the repository, parses their raw
// addresses into components, optionally runs a people-search lookup for
// phone numbers, and writes everything back.
type PipelineService struct {
	log           *slog.Logger         // Logger for logging service activities
	repo          repository.Interface // Interface for data repository access
	provider      lookup.Provider      // People-search provider for phone lookups
	providerName  string               // Name of the provider for metrics labeling
	metrics       *metrics.Metrics     // Metrics for tracking service performance
	numWorkers    int                  // Number of concurrent workers for processing
	pollInterval  time.Duration        // Interval for polling unparsed records
	lookupEnabled bool                 // Whether the lookup step runs after parsing
}

// NewPipelineService creates a new instance of PipelineService. It takes a
// logger, a repository interface, a people-search provider, the provider name
// for metrics, metrics for monitoring, the number of workers to use, a
// polling interval, and whether lookups are enabled. It returns a pointer to
// the newly created PipelineService.
func NewPipelineService(
	log *slog.Logger,
	repo repository.Interface,
	provider lookup.Provider,
	providerName string,
	metrics *metrics.Metrics,
	numWorkers int,
	pollInterval time.Duration,
	lookupEnabled bool,
) *PipelineService {
	return &PipelineService{
		log:           log,
		repo:          repo,
		provider:      provider,
		providerName:  providerName,
		metrics:       metrics,
		numWorkers:    numWorkers,
		pollInterval:  pollInterval,
		lookupEnabled: lookupEnabled,
	}
}

// Run starts the pipeline service, which periodically polls for new records
// to process. It listens for a cancellation signal from the context to
// gracefully stop the service.
func (ps *PipelineService) Run(ctx context.Context) {
	ticker := time.NewTicker(ps.pollInterval)
	defer ticker.Stop()

	ps.log.InfoContext(ctx, "Address pipeline service started...")

	for {
		select {
		case <-ctx.Done():
			ps.log.InfoContext(ctx, "Address pipeline service stopped.")
			return
		case <-ticker.C:
			ps.log.InfoContext(ctx, "Polling for new records to parse...")
			ps.processBatch(ctx)
		}
	}
}

// processBatch fetches unparsed records from the repository, starts a worker
// pool to process them, and waits for all workers to finish. It logs errors
// if record fetching fails and logs the status of batch processing.
func (ps *PipelineService) processBatch(ctx context.Context) {
	recordLimit := 100
	records, err := ps.repo.FetchRecordsForParsing(ctx, recordLimit)
	if err != nil {
		ps.log.ErrorContext(ctx, "Failed to fetch records", "error", err)
		return
	}
	if len(records) == 0 {
		ps.log.InfoContext(ctx, "No records to process.")
		return
	}

	ps.log.InfoContext(
		ctx,
		"Found records to process. Starting worker pool.",
		"jobs",
		len(records),
		"num_workers",
		ps.numWorkers,
	)

	jobs := make(chan models.Record, len(records))
	var wgr sync.WaitGroup

	for i := 1; i <= ps.numWorkers; i++ {
		wgr.Add(1)
		go ps.worker(ctx, i, &wgr, jobs)
	}

	for _, record := range records {
		jobs <- record
	}
	close(jobs)

	wgr.Wait()
	ps.log.InfoContext(ctx, "Processing batch finished")
}

// worker processes records from the jobs channel. Each record gets its name
// cleaned and its raw address parsed; a record that yields no search format
// counts as a failure. Parsed components are stored, and when lookups are
// enabled, the provider is queried and any phone numbers found are
// normalized and saved. Lookup failures increment the record's failure count
// but do not undo the stored parse.
func (ps *PipelineService) worker(ctx context.Context, idx int, wg *sync.WaitGroup, jobs <-chan models.Record) {
	defer wg.Done()
	for record := range jobs {
		ps.metrics.ActiveWorkers.Inc()
		ps.log.DebugContext(ctx, "Processing record", "worker", idx, "record", record.ID)

		parsed := parser.ParseCombined(record.RawAddress)
		if parsed.SearchFormat == "" {
			ps.log.ErrorContext(ctx, "Failed to parse address", "worker", idx, "record", record.ID,
				"address", record.RawAddress)
			ps.metrics.RecordsProcessed.WithLabelValues("failure").Inc()

			if err := ps.repo.IncrementFailureCount(ctx, record.ID, "address yields no search format"); err != nil {
				ps.log.ErrorContext(
					ctx,
					"Could not update failure count for record",
					"worker", idx,
					"record", record.ID,
					"error", err,
				)
			}
			ps.metrics.ActiveWorkers.Dec()
			continue
		}

		if err := ps.repo.UpdateParsedAddress(ctx, record.ID, parsed); err != nil {
			ps.log.ErrorContext(
				ctx,
				"Failed to update parsed address for record",
				"worker", idx,
				"record", record.ID,
				"error", err,
			)
			ps.metrics.RecordsProcessed.WithLabelValues("failure").Inc()
			ps.metrics.ActiveWorkers.Dec()
			continue
		}

		ps.metrics.RecordsProcessed.WithLabelValues("success").Inc()

		if ps.lookupEnabled {
			ps.lookupPhones(ctx, idx, record, parsed)
		}

		ps.metrics.ActiveWorkers.Dec()
	}
}

// lookupPhones runs the people-search step for a parsed record and saves the
// normalized phone numbers it yields.
func (ps *PipelineService) lookupPhones(ctx context.Context, idx int, record models.Record, parsed models.ParsedAddress) {
	name := parser.CleanName(record.OwnerName)
	if name == "" {
		ps.log.DebugContext(ctx, "Skipping lookup for business or empty owner",
			"worker", idx, "record", record.ID)
		return
	}

	startTime := time.Now()
	person, err := ps.provider.Search(ctx, name, parsed)
	duration := time.Since(startTime).Seconds()
	ps.metrics.LookupSeconds.WithLabelValues(ps.providerName).Observe(duration)

	if err != nil {
		ps.log.ErrorContext(ctx, "Failed to look up person", "worker", idx, "record", record.ID, "error", err)
		ps.metrics.LookupErrors.Inc()

		if err = ps.repo.IncrementFailureCount(ctx, record.ID, err.Error()); err != nil {
			ps.log.ErrorContext(
				ctx,
				"Could not update failure count for record",
				"worker", idx,
				"record", record.ID,
				"error", err,
			)
		}
		return
	}

	primary := normalizeOrEmpty(person.PrimaryPhone)
	secondary := normalizeOrEmpty(person.SecondaryPhone)
	if primary == "" && secondary == "" {
		ps.log.DebugContext(ctx, "Lookup returned no valid phone numbers",
			"worker", idx, "record", record.ID)
		return
	}

	if err = ps.repo.SavePhoneNumbers(ctx, record.ID, primary, secondary); err != nil {
		ps.log.ErrorContext(
			ctx,
			"Failed to save phone numbers for record",
			"worker", idx,
			"record", record.ID,
			"error", err,
		)
	} else {
		ps.log.DebugContext(ctx, "Worker successfully processed the record", "worker", idx, "record", record.ID)
	}
}

// normalizeOrEmpty formats a scraped phone number, dropping invalid ones.
func normalizeOrEmpty(raw string) string {
	if raw == "" {
		return ""
	}
	formatted, err := phone.Normalize(raw)
	if err != nil {
		return ""
	}
	return formatted
}
