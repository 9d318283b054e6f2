package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStipendLifecycle(t *testing.T) {
	stipend := NewStipendTransaction("f4e7f4e7")
	assert.Equal(t, StipendPending, stipend.Status)
	assert.False(t, stipend.IsTerminal())

	require.NoError(t, stipend.Confirm())
	assert.Equal(t, StipendMined, stipend.Status)
	assert.True(t, stipend.IsTerminal())

	// A terminal stipend cannot transition again.
	require.EqualError(t, stipend.Fail(), ErrStipendNotPending.Error())
	require.EqualError(t, stipend.Confirm(), ErrStipendNotPending.Error())
}

func TestStipendFailure(t *testing.T) {
	stipend := NewStipendTransaction("f4e7f4e7")
	require.NoError(t, stipend.Fail())
	assert.Equal(t, StipendFailed, stipend.Status)
	assert.True(t, stipend.IsTerminal())
}
