package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name        string
		appError    *AppError
		wantMessage string
	}{
		{
			name: "error with cause",
			appError: &AppError{
				Type:    ErrTypeParsing,
				Message: "failed to parse sensor log",
				Cause:   fmt.Errorf("invalid float"),
			},
			wantMessage: "[PARSING] failed to parse sensor log: invalid float",
		},
		{
			name: "error without cause",
			appError: &AppError{
				Type:    ErrTypeDataset,
				Message: "data directory missing",
			},
			wantMessage: "[DATASET] data directory missing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantMessage, tt.appError.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("underlying failure")
	appErr := NewAppError(ErrTypeStorage, "write failed", cause)

	assert.ErrorIs(t, appErr, cause)
	assert.Equal(t, cause, appErr.Unwrap())

	// No cause unwraps to nil
	noCause := NewAppError(ErrTypeValidation, "bad input", nil)
	assert.Nil(t, noCause.Unwrap())
}

func TestAppError_WithContext(t *testing.T) {
	appErr := NewAppError(ErrTypeDataset, "parse failed", nil).
		WithContext("file", "하늘고_환경데이터.csv").
		WithContext("row", 12)

	require.NotNil(t, appErr.Context)
	assert.Equal(t, "하늘고_환경데이터.csv", appErr.Context["file"])
	assert.Equal(t, 12, appErr.Context["row"])
}

func TestAppErrorConstructors(t *testing.T) {
	cause := errors.New("cause")

	tests := []struct {
		name     string
		err      *AppError
		wantType ErrorType
	}{
		{name: "dataset", err: NewDatasetError("dataset failed", cause), wantType: ErrTypeDataset},
		{name: "parsing", err: NewParsingError("parsing failed", cause), wantType: ErrTypeParsing},
		{name: "storage", err: NewStorageError("storage failed", cause), wantType: ErrTypeStorage},
		{name: "validation", err: NewAppValidationError("validation failed"), wantType: ErrTypeValidation},
		{name: "not found", err: NewNotFoundError("dataset"), wantType: ErrTypeNotFound},
		{name: "permission", err: NewPermissionError("denied"), wantType: ErrTypePermission},
		{name: "config", err: NewConfigError("bad config", cause), wantType: ErrTypeConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantType, tt.err.Type)
			assert.NotEmpty(t, tt.err.Message)
		})
	}
}

func TestNewNotFoundErrorMessage(t *testing.T) {
	err := NewNotFoundError("growth spreadsheet")
	assert.Equal(t, "[NOT_FOUND] growth spreadsheet not found", err.Error())
}
