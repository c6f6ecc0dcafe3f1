package audit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEntry(t *testing.T) {
	e, err := NewEntry("u1", "alice", "languages.reorder", "language", "", OutcomeRolledBack,
		map[string]any{"ids": []string{"go", "cpp"}})

	require.NoError(t, err)
	assert.Equal(t, OutcomeRolledBack, e.Outcome)
	assert.JSONEq(t, `{"ids":["go","cpp"]}`, string(e.Payload))
	assert.False(t, e.CreatedAt.IsZero())
}

func TestNewEntry_Invalid(t *testing.T) {
	_, err := NewEntry("u1", "alice", "", "language", "", OutcomeSucceeded, nil)
	assert.Error(t, err)

	_, err = NewEntry("u1", "alice", "languages.delete", "language", "go", Outcome("maybe"), nil)
	assert.Error(t, err)

	_, err = NewEntry("u1", "alice", "languages.delete", "language", "go", OutcomeSucceeded, make(chan int))
	assert.Error(t, err)
}
