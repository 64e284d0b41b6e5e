package gcp

import (
	"context"
	"log"

	"cloud.google.com/go/firestore"
)

// CreateFirestore builds the Firestore client for the given project.
// Credentials come from the ambient application-default credentials.
func CreateFirestore(ctx context.Context, projectID string) *firestore.Client {
	client, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		log.Fatalf("Failed to create client: %v", err)
	}
	return client
}
