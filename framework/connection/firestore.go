package connection

import (
	"context"
	"errors"

	"cloud.google.com/go/firestore"

	"github.com/doitintl/hello/nova-checkout/common"
	"github.com/doitintl/hello/nova-checkout/logger"
)

var (
	ErrFirestoreInitialization = errors.New("firestore initialization error")
	ErrMissingProjectID        = errors.New("GOOGLE_CLOUD_PROJECT is not set")
)

type FirestoreClient struct {
	fs *firestore.Client
}

func NewFirestore(ctx context.Context, log *logger.Logging) (*FirestoreClient, error) {
	l := log.Logger(ctx)

	if common.ProjectID == "" {
		return nil, ErrMissingProjectID
	}

	fs, err := firestore.NewClient(ctx, common.ProjectID)
	if err != nil {
		l.Errorf("%s: %s", ErrFirestoreInitialization, err)
		return nil, ErrFirestoreInitialization
	}

	return &FirestoreClient{
		fs,
	}, nil
}
