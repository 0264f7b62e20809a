package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devflow_workspace/dto"
	"devflow_workspace/internal/apperr"
)

// Profile lookups arrive with no paging params, so the defaults must apply
// before validation or the zero values fail the gte checks.
func TestGetUserByIDDefaultsPaging(t *testing.T) {
	_, err := GetUserByID(context.Background(), nil, dto.GetUserDTO{UserID: "not-a-hex-id"})

	var ae *apperr.Error
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, apperr.KindValidation, ae.Kind)
	assert.Contains(t, ae.Fields, "userId")
	assert.NotContains(t, ae.Fields, "page")
	assert.NotContains(t, ae.Fields, "pageSize")
}
