package services

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"

	"luxemarket/internal/catalog"
	"luxemarket/internal/domain"
	"luxemarket/internal/search"
)

// pageOwner keys marketplace searches in the runner apart from API searches
// of the same session.
const pageOwner = "page:"

const (
	msgSearchFailed = "Failed to fetch luxury products."
	msgSearchFound  = "Found %d luxury items with price comparison!"
)

// MarketState is the marketplace page of one session. Results are only shown
// after the first search completes.
type MarketState struct {
	Criteria catalog.Criteria
	Sort     catalog.SortKey
	Loading  bool
	JobID    string
	Results  []domain.Product
	Shown    bool
	Summary  *catalog.PriceSummary
}

// Dealers is the number of offers across the shown results.
func (s MarketState) Dealers() int {
	if s.Summary == nil {
		return 0
	}
	return s.Summary.Offers
}

func NewMarketState() MarketState {
	return MarketState{Sort: catalog.DefaultSort}
}

// MarketplaceService owns every session's MarketState. State changes only
// through SetFilter, SetSort, TriggerSearch and ReceiveResults.
type MarketplaceService struct {
	Catalog *CatalogService
	Runner  *search.Runner
	Notices *Notices
	log     *slog.Logger

	mu     sync.Mutex
	states *cache.Cache
}

func NewMarketplaceService(cat *CatalogService, runner *search.Runner, notices *Notices, ttl time.Duration, logger *slog.Logger) *MarketplaceService {
	if logger == nil {
		logger = slog.Default()
	}
	return &MarketplaceService{
		Catalog: cat,
		Runner:  runner,
		Notices: notices,
		log:     logger,
		states:  cache.New(ttl, time.Minute),
	}
}

func (s *MarketplaceService) State(sid string) MarketState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(sid)
}

// SetFilter stores normalized criteria. While a search is loading the state is
// left as is, so the selections on screen always match the shown results.
func (s *MarketplaceService) SetFilter(sid string, c catalog.Criteria) MarketState {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.load(sid)
	if st.Loading {
		return st
	}
	st.Criteria = s.Catalog.Normalize(c)
	s.save(sid, st)
	return st
}

// SetSort stores key as given. Unrecognized keys leave results in filter order.
// Like SetFilter it is ignored while a search is loading.
func (s *MarketplaceService) SetSort(sid string, key catalog.SortKey) MarketState {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.load(sid)
	if st.Loading {
		return st
	}
	st.Sort = key
	s.save(sid, st)
	return st
}

// TriggerSearch starts a delayed search over the session's current criteria.
// While a search is loading, further triggers are ignored and started is false.
func (s *MarketplaceService) TriggerSearch(sid string) (st MarketState, started bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st = s.load(sid)
	if st.Loading {
		return st, false
	}

	job, started := s.Runner.Trigger(pageOwner+sid, s.Catalog.SearchTask(st.Criteria, st.Sort), func(j *search.Job) {
		s.ReceiveResults(sid, j.ID, j.Outcome())
	})
	st.Loading = true
	st.JobID = job.ID
	switch {
	case started:
	case job.Outcome().State.Terminal():
		st = s.apply(sid, st, job.Outcome())
	default:
		// The pending job may have been started without a callback.
		go s.follow(sid, job)
	}
	s.save(sid, st)
	return st, started
}

func (s *MarketplaceService) follow(sid string, j *search.Job) {
	<-j.Done()
	s.ReceiveResults(sid, j.ID, j.Outcome())
}

// ReceiveResults applies a finished job to the session. Outcomes of jobs other
// than the one currently loading are ignored and applied is false.
func (s *MarketplaceService) ReceiveResults(sid, jobID string, out search.Outcome) (applied bool) {
	if !out.State.Terminal() {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.load(sid)
	if !st.Loading || st.JobID != jobID {
		s.log.Debug("marketplace.results.stale", slog.String("job", jobID), slog.String("current", st.JobID))
		return false
	}
	s.save(sid, s.apply(sid, st, out))
	return true
}

func (s *MarketplaceService) apply(sid string, st MarketState, out search.Outcome) MarketState {
	st.Loading = false

	switch out.State {
	case search.StateSucceeded:
		st.Results = out.Results
		st.Shown = true
		st.Summary = nil
		sum, err := catalog.AggregateProducts(out.Results)
		switch {
		case err == nil:
			st.Summary = &sum
		case !errors.Is(err, domain.ErrNoPriceData):
			s.log.Warn("marketplace.summary.fail", slog.String("err", err.Error()))
		}
		s.Notices.Push(sid, NoticeSuccess, fmt.Sprintf(msgSearchFound, len(out.Results)))
	case search.StateFailed:
		s.log.Error("marketplace.search.fail", slog.String("job", st.JobID), slog.String("err", errString(out.Err)))
		s.Notices.Push(sid, NoticeError, msgSearchFailed)
	case search.StateCancelled:
		s.log.Info("marketplace.search.cancelled", slog.String("job", st.JobID))
	}
	return st
}

func (s *MarketplaceService) load(sid string) MarketState {
	if v, ok := s.states.Get(sid); ok {
		st := v.(MarketState)
		st.Results = slices.Clone(st.Results)
		return st
	}
	return NewMarketState()
}

func (s *MarketplaceService) save(sid string, st MarketState) {
	s.states.SetDefault(sid, st)
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
