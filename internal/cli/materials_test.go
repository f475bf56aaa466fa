package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourname/ingest_lite/internal/models"
)

func TestParseSorts(t *testing.T) {
	got, err := parseSorts([]string{"name:DESC", "id"})
	require.NoError(t, err)
	assert.Equal(t, map[models.SortField]models.SortDirection{
		models.SortByName: models.SortDesc,
		models.SortByID:   models.SortAsc,
	}, got)

	_, err = parseSorts([]string{"size:asc"})
	assert.Error(t, err)

	_, err = parseSorts([]string{"name:sideways"})
	assert.Error(t, err)

	got, err = parseSorts(nil)
	require.NoError(t, err)
	assert.Nil(t, got)
}
