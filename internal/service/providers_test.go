package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProviders(t *testing.T) {
	listings := Providers()

	require.Len(t, listings, 3)
	assert.Equal(t, "Dr. Sarah Chen", listings[0].Name)
	assert.Equal(t, "Allergist & Immunologist", listings[0].Specialty)

	// Mutating the returned slice must not touch the directory.
	listings[0].Name = "changed"
	assert.Equal(t, "Dr. Sarah Chen", Providers()[0].Name)
}
