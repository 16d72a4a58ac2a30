package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "localdir/pkg/domain-errors"
)

func TestParseEntityType(t *testing.T) {
	for _, raw := range []string{"business", " Professional ", "JOB"} {
		_, err := ParseEntityType(raw)
		assert.NoError(t, err, raw)
	}

	_, err := ParseEntityType("review")
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
}

func TestParseTarget(t *testing.T) {
	s, err := ParseTarget("approved")
	require.NoError(t, err)
	assert.Equal(t, StatusApproved, s)

	_, err = ParseTarget("PENDING")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation), "pending is never a target")
}

func TestDescriptorActions(t *testing.T) {
	d := Registry[EntityProfessional]
	assert.Equal(t, "APPROVE_PROFESSIONAL", d.ApproveAction())
	assert.Equal(t, "REJECT_PROFESSIONAL", d.RejectAction())
	assert.Equal(t, "title", Registry[EntityJob].NameColumn)

	keys := map[string]bool{}
	for _, d := range Registry {
		assert.NotEmpty(t, d.ResponseKey, d.Type)
		keys[d.ResponseKey] = true
	}
	assert.Len(t, keys, len(Registry), "response keys are unique")
	assert.Equal(t, []EntityType{EntityBusiness, EntityJob, EntityProfessional}, EntityTypes())
}

func TestNextStatus(t *testing.T) {
	cases := []struct {
		from, to Status
	}{
		{StatusPending, StatusApproved},
		{StatusPending, StatusRejected},
		{StatusApproved, StatusRejected},
		{StatusRejected, StatusApproved},
	}
	for _, tc := range cases {
		t.Run(string(tc.from)+"->"+string(tc.to), func(t *testing.T) {
			next, err := NextStatus("b1", tc.from, tc.to)
			require.NoError(t, err)
			assert.Equal(t, tc.to, next)
		})
	}

	t.Run("nothing returns to pending", func(t *testing.T) {
		_, err := NextStatus("b1", StatusApproved, StatusPending)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvariantViolation))
	})
}
