package db

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"go-suraksha/types"
)

// MemoryStore is an in-process Store with the same semantics as the
// Firestore backend. Used by tests and for running without credentials.
type MemoryStore struct {
	mu      sync.RWMutex
	checks  []types.StatusCheck
	reports []types.CommunityReport
	clock   clockwork.Clock
}

func NewMemoryStore(clock clockwork.Clock) *MemoryStore {
	return &MemoryStore{clock: clock}
}

func (s *MemoryStore) CreateStatusCheck(_ context.Context, clientName string) (*types.StatusCheck, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	check := types.StatusCheck{
		ID:         uuid.NewString(),
		ClientName: clientName,
		Timestamp:  s.clock.Now().UTC(),
	}
	s.checks = append(s.checks, check)
	return &check, nil
}

func (s *MemoryStore) ListStatusChecks(_ context.Context) ([]types.StatusCheck, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]types.StatusCheck, len(s.checks))
	copy(out, s.checks)
	return out, nil
}

func (s *MemoryStore) CreateCommunityReport(_ context.Context, input types.CommunityReportCreate) (*types.CommunityReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	report := types.CommunityReport{
		ID:           uuid.NewString(),
		ReporterName: input.ReporterName,
		Location:     input.Location,
		ReportType:   input.ReportType,
		Description:  input.Description,
		Severity:     input.Severity,
		Coordinates:  input.Coordinates,
		Timestamp:    s.clock.Now().UTC(),
		Status:       "pending",
	}
	s.reports = append(s.reports, report)
	return &report, nil
}

func (s *MemoryStore) ListCommunityReports(_ context.Context, status, reportType string, limit int) ([]types.CommunityReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []types.CommunityReport{}
	for _, r := range s.reports {
		if status != "" && r.Status != status {
			continue
		}
		if reportType != "" && r.ReportType != reportType {
			continue
		}
		out = append(out, r)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})

	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *MemoryStore) GetCommunityReport(_ context.Context, id string) (*types.CommunityReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.reports {
		if r.ID == id {
			report := r
			return &report, nil
		}
	}
	return nil, ErrNotFound
}
