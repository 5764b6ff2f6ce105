package firebase

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"

	"github.com/suri-ai/suri-backend/config"
)

// NewApp initializes the Firebase Admin SDK from the service account key,
// preferring the inline JSON env var (Railway-style deploys) over a local file.
func NewApp(cfg *config.Config) (*firebase.App, error) {
	ctx := context.Background()

	var opts []option.ClientOption
	if cfg.Firebase.ServiceAccountJSON != "" {
		log.Info().Msg("Initializing Firebase Admin SDK from environment variable")
		opts = append(opts, option.WithCredentialsJSON([]byte(cfg.Firebase.ServiceAccountJSON)))
	} else {
		log.Info().Str("file", cfg.Firebase.CredentialsFile).Msg("Initializing Firebase Admin SDK from local file")
		opts = append(opts, option.WithCredentialsFile(cfg.Firebase.CredentialsFile))
	}

	app, err := firebase.NewApp(ctx, nil, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}
	return app, nil
}

// NewAuthClient provides the Firebase Auth admin client (the identity provider).
func NewAuthClient(app *firebase.App) (*auth.Client, error) {
	client, err := app.Auth(context.Background())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase Auth client: %w", err)
	}
	return client, nil
}

// NewFirestoreClient provides the Firestore client (the document store).
func NewFirestoreClient(app *firebase.App) (*firestore.Client, error) {
	client, err := app.Firestore(context.Background())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firestore client: %w", err)
	}
	return client, nil
}
