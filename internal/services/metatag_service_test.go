// internal/services/metatag_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectMetatagAddresses(t *testing.T) {
	addresses, err := collectMetatagAddresses([]MetatagRequest{
		{Address: "/", Title: "Home"},
		{Address: "/catalog", Title: "Catalog"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"/", "/catalog"}, addresses)
}

func TestCollectMetatagAddressesRejectsDuplicates(t *testing.T) {
	_, err := collectMetatagAddresses([]MetatagRequest{
		{Address: "/catalog"},
		{Address: "/catalog"},
	})
	assert.ErrorIs(t, err, ErrConflict)
}
