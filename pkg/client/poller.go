package client

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// DefaultPollInterval is the fixed wall-clock interval between status fetches.
const DefaultPollInterval = 5 * time.Second

const (
	genericErrorMessage   = "An unknown error occurred during AI evaluation."
	transportErrorMessage = "Failed to connect to the server."
)

// Poller drives evaluations from Processing to a terminal state by fetching
// the facade on a fixed interval. Each tracked evaluation gets its own timer;
// a timer stops as soon as its evaluation turns terminal. A transport failure
// or malformed body marks the evaluation as Error with a transport message
// and stops polling; there is no retry.
type Poller struct {
	client   *Client
	store    *Store
	logger   zerolog.Logger
	interval time.Duration

	mu      sync.Mutex
	cancels map[string]context.CancelFunc
	wg      sync.WaitGroup
}

// NewPoller builds a poller over the given client and store. A non-positive
// interval falls back to DefaultPollInterval.
func NewPoller(apiClient *Client, store *Store, logger zerolog.Logger, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	return &Poller{
		client:   apiClient,
		store:    store,
		logger:   logger.With().Str("component", "poller").Logger(),
		interval: interval,
		cancels:  make(map[string]context.CancelFunc),
	}
}

// Track starts polling the evaluation with the given id. Terminal or unknown
// evaluations are never polled; tracking an already tracked id is a no-op.
func (p *Poller) Track(id string) {
	evaluation, ok := p.store.Get(id)
	if !ok || evaluation.Status.Terminal() {
		return
	}

	p.mu.Lock()
	if _, tracked := p.cancels[id]; tracked {
		p.mu.Unlock()
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	p.cancels[id] = cancel
	p.wg.Add(1)
	p.mu.Unlock()

	go p.poll(ctx, id)
}

// Resync tears down every timer and re-tracks whatever the store still
// reports as Processing. Call it when the tracked set changes wholesale.
func (p *Poller) Resync() {
	p.cancelAll()
	for _, id := range p.store.Processing() {
		p.Track(id)
	}
}

// Stop cancels all timers and waits for the poll loops to exit.
func (p *Poller) Stop() {
	p.cancelAll()
	p.wg.Wait()
}

func (p *Poller) cancelAll() {
	p.mu.Lock()
	defer p.mu.Unlock()

	for id, cancel := range p.cancels {
		cancel()
		delete(p.cancels, id)
	}
}

func (p *Poller) untrack(id string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if cancel, ok := p.cancels[id]; ok {
		cancel()
		delete(p.cancels, id)
	}
}

func (p *Poller) poll(ctx context.Context, id string) {
	defer p.wg.Done()

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if p.tick(ctx, id) {
				p.untrack(id)
				return
			}
		}
	}
}

// tick performs one status fetch and reports whether polling should stop.
func (p *Poller) tick(ctx context.Context, id string) bool {
	state, err := p.client.FetchState(ctx, id)
	if err != nil {
		if ctx.Err() != nil {
			return true
		}

		p.logger.Error().Err(err).Str("evaluation_id", id).Msg("polling failed")
		p.store.Update(id, func(e *Evaluation) {
			e.Status = StatusError
			e.Error = transportErrorMessage
		})
		return true
	}

	switch state.Status {
	case "completed":
		p.store.Update(id, func(e *Evaluation) {
			e.Status = StatusCompleted
			if state.Result != nil {
				score := state.Result.Score
				e.Score = &score
				e.FeedbackSummary = state.Result.FeedbackSummary
				e.ImprovementTips = state.Result.ImprovementTips
				e.Questions = state.Result.Questions
			}
			e.Error = ""
		})
		p.logger.Info().Str("evaluation_id", id).Msg("evaluation completed")
		return true
	case "error":
		message := state.Error
		if message == "" {
			message = genericErrorMessage
		}
		p.store.Update(id, func(e *Evaluation) {
			e.Status = StatusError
			e.Error = message
		})
		p.logger.Warn().Str("evaluation_id", id).Str("error", message).Msg("evaluation failed")
		return true
	default:
		return false
	}
}
