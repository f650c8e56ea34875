package sqlstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRebind(t *testing.T) {
	numbered := &Store{dialect: Dialect{NumberedPlaceholders: true}}
	plain := &Store{dialect: Dialect{}}

	query := "UPDATE boards SET name = ?, workspace_id = ? WHERE id = ?"
	assert.Equal(t, "UPDATE boards SET name = $1, workspace_id = $2 WHERE id = $3", numbered.rebind(query))
	assert.Equal(t, query, plain.rebind(query))
	assert.Equal(t, "SELECT 1", numbered.rebind("SELECT 1"))
}

func TestTimeHelpers(t *testing.T) {
	assert.False(t, nullTime(nil).Valid)
	assert.Nil(t, timePtr(nullTime(nil)))

	ts := now()
	got := timePtr(nullTime(&ts))
	if assert.NotNil(t, got) {
		assert.True(t, ts.Equal(*got))
	}
	assert.Equal(t, 0, ts.Nanosecond()%1000)
}
