package dal

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/doitintl/hello/nova-checkout/framework/connection"
	"github.com/doitintl/hello/nova-checkout/settings/domain"
)

const (
	appCollection = "app"
	settingsDocID = "nova-checkout"
)

// SettingsFirestore stores the checkout settings in a single Firestore document.
type SettingsFirestore struct {
	firestoreClientFun connection.FirestoreFromContextFun
}

func NewSettingsFirestoreWithClient(fun connection.FirestoreFromContextFun) *SettingsFirestore {
	return &SettingsFirestore{
		firestoreClientFun: fun,
	}
}

func (d *SettingsFirestore) settingsRef(ctx context.Context) *firestore.DocumentRef {
	return d.firestoreClientFun(ctx).Collection(appCollection).Doc(settingsDocID)
}

// Get returns the stored settings. A missing document yields empty settings.
func (d *SettingsFirestore) Get(ctx context.Context) (*domain.Settings, error) {
	docSnap, err := d.settingsRef(ctx).Get(ctx)
	return settingsFromDocument(docSnap, err)
}

// documentData is the part of a firestore.DocumentSnapshot used to decode settings.
type documentData interface {
	DataTo(p interface{}) error
}

func settingsFromDocument(doc documentData, err error) (*domain.Settings, error) {
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return &domain.Settings{}, nil
		}

		return nil, err
	}

	var s domain.Settings

	if err := doc.DataTo(&s); err != nil {
		return nil, err
	}

	return &s, nil
}

// Save overwrites the settings document.
func (d *SettingsFirestore) Save(ctx context.Context, s *domain.Settings) error {
	_, err := d.settingsRef(ctx).Set(ctx, s)
	return err
}
