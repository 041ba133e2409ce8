package db

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"go-suraksha/types"
)

// FirestoreStore persists records in Firestore using each record's id as
// the document id. Single-document writes only; no transactions needed.
type FirestoreStore struct {
	client *firestore.Client
	clock  clockwork.Clock
}

func NewFirestoreStore(client *firestore.Client, clock clockwork.Clock) *FirestoreStore {
	return &FirestoreStore{client: client, clock: clock}
}

// statusCheckDoc is the stored shape; the timestamp is kept as a string in
// TimeFormat so it round-trips and orders lexicographically.
type statusCheckDoc struct {
	ID         string `firestore:"id"`
	ClientName string `firestore:"client_name"`
	Timestamp  string `firestore:"timestamp"`
}

type reportDoc struct {
	ID           string             `firestore:"id"`
	ReporterName string             `firestore:"reporter_name"`
	Location     string             `firestore:"location"`
	ReportType   string             `firestore:"report_type"`
	Description  string             `firestore:"description"`
	Severity     string             `firestore:"severity"`
	Coordinates  *types.Coordinates `firestore:"coordinates,omitempty"`
	Timestamp    string             `firestore:"timestamp"`
	Status       string             `firestore:"status"`
}

func (s *FirestoreStore) CreateStatusCheck(ctx context.Context, clientName string) (*types.StatusCheck, error) {
	check := types.StatusCheck{
		ID:         uuid.NewString(),
		ClientName: clientName,
		Timestamp:  s.clock.Now().UTC(),
	}
	doc := statusCheckDoc{
		ID:         check.ID,
		ClientName: check.ClientName,
		Timestamp:  check.Timestamp.Format(TimeFormat),
	}
	_, err := s.client.Collection(statusChecksCollection).Doc(check.ID).Set(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("saving status check: %w", err)
	}
	return &check, nil
}

func (s *FirestoreStore) ListStatusChecks(ctx context.Context) ([]types.StatusCheck, error) {
	iter := s.client.Collection(statusChecksCollection).Documents(ctx)
	defer iter.Stop()

	checks := []types.StatusCheck{}
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("iterating status checks: %w", err)
		}

		var doc statusCheckDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, fmt.Errorf("decoding status check %s: %w", snap.Ref.ID, err)
		}
		ts, err := parseTimestamp(doc.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("status check %s: %w", doc.ID, err)
		}
		checks = append(checks, types.StatusCheck{
			ID:         doc.ID,
			ClientName: doc.ClientName,
			Timestamp:  ts,
		})
	}
	return checks, nil
}

func (s *FirestoreStore) CreateCommunityReport(ctx context.Context, input types.CommunityReportCreate) (*types.CommunityReport, error) {
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
	doc := reportDoc{
		ID:           report.ID,
		ReporterName: report.ReporterName,
		Location:     report.Location,
		ReportType:   report.ReportType,
		Description:  report.Description,
		Severity:     report.Severity,
		Coordinates:  report.Coordinates,
		Timestamp:    report.Timestamp.Format(TimeFormat),
		Status:       report.Status,
	}
	_, err := s.client.Collection(communityReportsCollection).Doc(report.ID).Set(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("saving community report: %w", err)
	}
	return &report, nil
}

func (s *FirestoreStore) ListCommunityReports(ctx context.Context, reportStatus, reportType string, limit int) ([]types.CommunityReport, error) {
	q := s.client.Collection(communityReportsCollection).Query
	if reportStatus != "" {
		q = q.Where("status", "==", reportStatus)
	}
	if reportType != "" {
		q = q.Where("report_type", "==", reportType)
	}
	q = q.OrderBy("timestamp", firestore.Desc).Limit(limit)

	iter := q.Documents(ctx)
	defer iter.Stop()

	reports := []types.CommunityReport{}
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("iterating community reports: %w", err)
		}

		report, err := reportFromSnapshot(snap.Ref.ID, snap.DataTo)
		if err != nil {
			return nil, err
		}
		reports = append(reports, *report)
	}
	return reports, nil
}

func (s *FirestoreStore) GetCommunityReport(ctx context.Context, id string) (*types.CommunityReport, error) {
	snap, err := s.client.Collection(communityReportsCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("getting community report %s: %w", id, err)
	}
	return reportFromSnapshot(id, snap.DataTo)
}

func reportFromSnapshot(id string, dataTo func(any) error) (*types.CommunityReport, error) {
	var doc reportDoc
	if err := dataTo(&doc); err != nil {
		return nil, fmt.Errorf("decoding community report %s: %w", id, err)
	}
	ts, err := parseTimestamp(doc.Timestamp)
	if err != nil {
		return nil, fmt.Errorf("community report %s: %w", doc.ID, err)
	}
	return &types.CommunityReport{
		ID:           doc.ID,
		ReporterName: doc.ReporterName,
		Location:     doc.Location,
		ReportType:   doc.ReportType,
		Description:  doc.Description,
		Severity:     doc.Severity,
		Coordinates:  doc.Coordinates,
		Timestamp:    ts,
		Status:       doc.Status,
	}, nil
}

func parseTimestamp(s string) (time.Time, error) {
	ts, err := time.Parse(TimeFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing timestamp %q: %w", s, err)
	}
	return ts.UTC(), nil
}
