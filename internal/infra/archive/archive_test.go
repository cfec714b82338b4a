package archive

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"backoffice/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvoiceArchiveStoresToBucket(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg := &config.Config{
		Archive: &config.ArchiveConfig{BucketURL: "file://" + dir},
	}

	arc, err := NewInvoiceArchive(context.Background(), cfg)
	require.NoError(t, err)
	defer arc.Close()

	require.NoError(t, arc.Store(context.Background(), "invoice-o1.pdf", []byte("%PDF")))

	data, err := os.ReadFile(filepath.Join(dir, "invoice-o1.pdf"))
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF"), data)
}

func TestInvoiceArchiveNoopWithoutConfig(t *testing.T) {
	t.Parallel()

	arc, err := NewInvoiceArchive(context.Background(), &config.Config{})
	require.NoError(t, err)
	defer arc.Close()

	assert.NoError(t, arc.Store(context.Background(), "anything.pdf", nil))
}
