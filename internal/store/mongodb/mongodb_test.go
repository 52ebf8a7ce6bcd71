package mongodb_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bizsite-api/internal/store/mongodb"
	"bizsite-api/internal/store/storetest"
)

// startMongo returns a connection string for a throwaway MongoDB. It uses
// MONGO_TEST_URL when set and otherwise starts a container.
func startMongo(t *testing.T) string {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping mongo integration test in short mode")
	}
	if url := os.Getenv("MONGO_TEST_URL"); url != "" {
		return url
	}

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Skipf("docker not available: %v", err)
	}
	if err := pool.Client.Ping(); err != nil {
		t.Skipf("docker not available: %v", err)
	}
	res, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "mongo",
		Tag:        "7",
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = pool.Purge(res) })

	url := fmt.Sprintf("mongodb://localhost:%s", res.GetPort("27017/tcp"))
	pool.MaxWait = time.Minute
	require.NoError(t, pool.Retry(func() error {
		st, err := mongodb.New(context.Background(), url, "bizsite_ready")
		if err != nil {
			return err
		}
		return st.Close(context.Background())
	}))
	return url
}

func TestMongoConformance(t *testing.T) {
	url := startMongo(t)
	ctx := context.Background()

	st, err := mongodb.New(ctx, url, fmt.Sprintf("bizsite_test_%d", time.Now().UnixNano()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close(ctx) })

	storetest.Run(t, st)
}

func TestNewBadURI(t *testing.T) {
	_, err := mongodb.New(context.Background(), "<invalid url>", "")
	assert.Error(t, err)
}
