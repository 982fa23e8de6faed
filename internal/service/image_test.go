package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBarcodeImageService_Store(t *testing.T) {
	t.Run("rejects an empty upload before touching storage", func(t *testing.T) {
		svc := NewBarcodeImageService(nil)

		uploadID, err := svc.Store(context.Background(), nil, "image/png")

		assert.Empty(t, uploadID)
		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "please upload a barcode image first", validationErr.Reason)
	})
}
