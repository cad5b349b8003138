package infra

import (
	"context"

	"cloud.google.com/go/firestore"

	"voyago/internal/config"
	"voyago/pkg/logger"
)

// InitFirestore connects to the project's Firestore database. Credentials
// come from the standard GOOGLE_APPLICATION_CREDENTIALS lookup.
func InitFirestore(cfg *config.Config) (*firestore.Client, error) {
	client, err := firestore.NewClient(context.Background(), cfg.FirestoreProjectID)
	if err != nil {
		logger.Errorf("Error connecting to Firestore: %v", err)
		return nil, err
	}
	return client, nil
}

func CloseFirestore(client *firestore.Client) {
	if err := client.Close(); err != nil {
		logger.Errorf("Error closing Firestore client: %v", err)
	}
}
