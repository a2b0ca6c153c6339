package postgres

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iudanet/walklog/internal/server/storage"
	"github.com/iudanet/walklog/internal/server/storage/storagetest"
)

// testDatabaseEnv адрес тестовой базы; без него тесты пропускаются
const testDatabaseEnv = "WALKLOG_TEST_POSTGRES_URL"

func setupTestStorage(t *testing.T) storage.Storage {
	t.Helper()

	url := os.Getenv(testDatabaseEnv)
	if url == "" {
		t.Skipf("%s is not set", testDatabaseEnv)
	}

	ctx := context.Background()
	s, err := New(ctx, url)
	require.NoError(t, err)

	_, err = s.Pool().Exec(ctx, `TRUNCATE revoked_tokens, walks, users`)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = s.Close()
	})

	return s
}

func TestStorage(t *testing.T) {
	storagetest.Run(t, setupTestStorage)
}
