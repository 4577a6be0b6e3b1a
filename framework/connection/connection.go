package connection

import (
	"context"

	"cloud.google.com/go/firestore"

	"github.com/doitintl/hello/nova-checkout/logger"
)

type Connection struct {
	*FirestoreClient
}

// NewConnection initializes the backing store connections used by the api.
func NewConnection(ctx context.Context, log *logger.Logging) (*Connection, error) {
	fs, err := NewFirestore(ctx, log)
	if err != nil {
		return nil, err
	}

	return &Connection{
		fs,
	}, nil
}

// Firestore returns the firestore client. It is safe to call on a nil connection
// and returns nil when firestore was not initialized.
func (c *Connection) Firestore(ctx context.Context) *firestore.Client {
	if c == nil || c.FirestoreClient == nil {
		return nil
	}

	return c.fs
}

// Close releases the underlying clients.
func (c *Connection) Close() error {
	if c == nil || c.FirestoreClient == nil || c.fs == nil {
		return nil
	}

	return c.fs.Close()
}

type FirestoreFromContextFun = func(ctx context.Context) *firestore.Client
