// Package db persists the two mutable collections: status checks and
// community reports. The Store interface keeps handlers testable; the
// Firestore implementation is the production backend and the memory
// implementation backs tests and credential-less local runs.
package db

import (
	"context"
	"encoding/base64"
	"errors"
	"log"
	"os"
	"sync"
	"time"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go"
	"google.golang.org/api/option"

	"go-suraksha/types"
)

// ErrNotFound reports an id lookup miss. Handlers translate it to 404.
var ErrNotFound = errors.New("record not found")

// TimeFormat is the single serialization format for stored instants.
// Always UTC; lexicographic order matches chronological order, which the
// document store relies on for timestamp sorting.
const TimeFormat = time.RFC3339Nano

const (
	statusChecksCollection     = "status_checks"
	communityReportsCollection = "community_reports"
)

// Store is the durable record store for the mutable collections.
type Store interface {
	CreateStatusCheck(ctx context.Context, clientName string) (*types.StatusCheck, error)
	ListStatusChecks(ctx context.Context) ([]types.StatusCheck, error)

	CreateCommunityReport(ctx context.Context, input types.CommunityReportCreate) (*types.CommunityReport, error)
	ListCommunityReports(ctx context.Context, status, reportType string, limit int) ([]types.CommunityReport, error)
	GetCommunityReport(ctx context.Context, id string) (*types.CommunityReport, error)
}

// client is a singleton Firestore client instance.
var (
	client     *firestore.Client
	clientOnce sync.Once
)

// InitFirestore initializes and returns a Firestore client from the
// base64-encoded service account in FIREBASE_CREDENTIALS.
func InitFirestore() (*firestore.Client, error) {
	var err error

	clientOnce.Do(func() {
		encodedCreds := os.Getenv("FIREBASE_CREDENTIALS")
		creds, err := base64.StdEncoding.DecodeString(encodedCreds)
		if err != nil {
			log.Fatalf("Failed to decode Firestore credentials: %v", err)
		}

		opt := option.WithCredentialsJSON(creds)
		app, err := firebase.NewApp(context.Background(), nil, opt)
		if err != nil {
			log.Fatalf("Error initializing Firestore: %v", err)
		}

		client, err = app.Firestore(context.Background())
		if err != nil {
			log.Fatalf("Error getting Firestore client: %v", err)
		}
	})

	return client, err
}

// CloseFirestore closes the Firestore client.
func CloseFirestore() {
	if client != nil {
		client.Close()
	}
}
