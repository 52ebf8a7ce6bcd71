// Package backend opens the store.Store named by a connection string.
package backend

import (
	"context"
	"fmt"
	"net/url"

	"bizsite-api/internal/store"
	"bizsite-api/internal/store/mongodb"
	"bizsite-api/internal/store/postgres"
)

// Open connects to the backend selected by the scheme of dbURL. database
// only applies to MongoDB.
func Open(ctx context.Context, dbURL, database string) (store.Store, string, error) {
	u, err := url.Parse(dbURL)
	if err != nil {
		return nil, "", fmt.Errorf("database url: %w", err)
	}
	switch u.Scheme {
	case "mongodb", "mongodb+srv":
		st, err := mongodb.New(ctx, dbURL, database)
		if err != nil {
			return nil, "", err
		}
		return st, "mongodb", nil
	case "postgres", "postgresql":
		st, err := postgres.New(ctx, dbURL)
		if err != nil {
			return nil, "", err
		}
		return st, "postgres", nil
	}
	return nil, "", fmt.Errorf("database url: unsupported scheme %q", u.Scheme)
}
