package repositories

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"voyago/internal/models/db_models"
)

const usersCollection = "users"

// firestoreAccountRepository stores accounts as documents in the "users"
// collection, looked up by username equality queries.
type firestoreAccountRepository struct {
	client *firestore.Client
}

func NewFirestoreAccountRepository(client *firestore.Client) AccountRepository {
	return &firestoreAccountRepository{
		client: client,
	}
}

func (f *firestoreAccountRepository) Insert(ctx context.Context, account *db_models.Account) error {
	_, _, err := f.client.Collection(usersCollection).Add(ctx, account)
	return err
}

func (f *firestoreAccountRepository) FindByUsername(ctx context.Context, username string) (*db_models.Account, error) {
	query := f.client.Collection(usersCollection).
		Where("username", "==", username).
		Limit(1)
	return f.firstMatch(ctx, query)
}

func (f *firestoreAccountRepository) FindByCredentials(ctx context.Context, username, password string) (*db_models.Account, error) {
	query := f.client.Collection(usersCollection).
		Where("username", "==", username).
		Where("password", "==", password).
		Limit(1)
	return f.firstMatch(ctx, query)
}

func (f *firestoreAccountRepository) Exists(ctx context.Context, username string) (bool, error) {
	account, err := f.FindByUsername(ctx, username)
	if err != nil {
		return false, err
	}
	return account != nil, nil
}

func (f *firestoreAccountRepository) firstMatch(ctx context.Context, query firestore.Query) (*db_models.Account, error) {
	iter := query.Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var account db_models.Account
	if err := doc.DataTo(&account); err != nil {
		return nil, err
	}
	return &account, nil
}
