package psqlbuilder

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelect_UsesDollarPlaceholders(t *testing.T) {
	query, args, err := Select("id", "state").
		From("reservations").
		Where(squirrel.Eq{"salon_id": "SAL-1"}).
		Where(squirrel.Eq{"reservation_date": "2025-03-10"}).
		ToSql()

	require.NoError(t, err)
	assert.Equal(t, "SELECT id, state FROM reservations WHERE salon_id = $1 AND reservation_date = $2", query)
	assert.Equal(t, []interface{}{"SAL-1", "2025-03-10"}, args)
}

func TestUpdate_UsesDollarPlaceholders(t *testing.T) {
	query, args, err := Update("salons").
		Set("enabled", false).
		Where(squirrel.Eq{"id": "SAL-1"}).
		ToSql()

	require.NoError(t, err)
	assert.Equal(t, "UPDATE salons SET enabled = $1 WHERE id = $2", query)
	assert.Equal(t, []interface{}{false, "SAL-1"}, args)
}
