package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_ErrorFormatting(t *testing.T) {
	cause := errors.New("unknown column 'medicine_code'")

	withCause := NewDataError("failed to insert medicines_catalog row", cause)
	assert.Equal(t, "DATA: failed to insert medicines_catalog row: unknown column 'medicine_code'", withCause.Error())

	withoutCause := NewUsageError("SCHEMA_NAME is required")
	assert.Equal(t, "USAGE: SCHEMA_NAME is required", withoutCause.Error())
}

func TestIsType_FollowsWrapChain(t *testing.T) {
	base := NewSchemaError("failed to list columns", errors.New("access denied"))
	wrapped := fmt.Errorf("seed medicines: %w", base)

	assert.True(t, IsType(wrapped, ErrorTypeSchema))
	assert.False(t, IsType(wrapped, ErrorTypeData))
	assert.False(t, IsType(errors.New("plain"), ErrorTypeSchema))
	assert.ErrorIs(t, wrapped, base.Err)
}
