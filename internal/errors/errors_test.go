package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocqueryError_Unwrap_PreservesOriginalError(t *testing.T) {
	originalErr := errors.New("original error")

	wrapped := New(ErrCodeFileNotFound, "documents file not found", originalErr)

	require.NotNil(t, wrapped)
	assert.Equal(t, originalErr, errors.Unwrap(wrapped))
	assert.True(t, errors.Is(wrapped, originalErr))
}

func TestDocqueryError_Error_ReturnsFormattedMessage(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		message  string
		expected string
	}{
		{
			name:     "config error",
			code:     ErrCodeConfigNotFound,
			message:  "config file not found",
			expected: "[ERR_101_CONFIG_NOT_FOUND] config file not found",
		},
		{
			name:     "file error",
			code:     ErrCodeFileNotFound,
			message:  "documents.json not found",
			expected: "[ERR_201_FILE_NOT_FOUND] documents.json not found",
		},
		{
			name:     "validation error",
			code:     ErrCodeInvalidLanguage,
			message:  "unsupported language",
			expected: "[ERR_402_INVALID_LANGUAGE] unsupported language",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code, tt.message, nil)
			assert.Equal(t, tt.expected, err.Error())
		})
	}
}

func TestDocqueryError_Is_MatchesByCode(t *testing.T) {
	err1 := New(ErrCodeConfigInvalid, "bad yaml", nil)
	err2 := New(ErrCodeConfigInvalid, "different message", nil)
	err3 := New(ErrCodeFileNotFound, "bad yaml", nil)

	assert.True(t, errors.Is(err1, err2))
	assert.False(t, errors.Is(err1, err3))
}

func TestCategoryDerivedFromCode(t *testing.T) {
	tests := []struct {
		code     string
		category Category
	}{
		{ErrCodeConfigNotFound, CategoryConfig},
		{ErrCodeDictionaryFile, CategoryConfig},
		{ErrCodeFileNotFound, CategoryIO},
		{ErrCodeDocumentParse, CategoryIO},
		{ErrCodeInvalidInput, CategoryValidation},
		{ErrCodeInternal, CategoryInternal},
		{"bogus", CategoryInternal},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.category, categoryFromCode(tt.code), tt.code)
	}
}

func TestSeverityDerivedFromCode(t *testing.T) {
	assert.Equal(t, SeverityWarning, New(ErrCodeDictionaryFile, "", nil).Severity)
	assert.Equal(t, SeverityFatal, New(ErrCodeInternal, "", nil).Severity)
	assert.Equal(t, SeverityError, New(ErrCodeFileNotFound, "", nil).Severity)
}

func TestWrap_NilReturnsNil(t *testing.T) {
	assert.Nil(t, Wrap(ErrCodeInternal, nil))
}

func TestWrap_UsesCauseMessage(t *testing.T) {
	cause := errors.New("permission denied")
	err := Wrap(ErrCodeFileUnreadable, cause)

	require.NotNil(t, err)
	assert.Equal(t, "permission denied", err.Message)
	assert.Equal(t, cause, err.Cause)
}

func TestWithDetailAndSuggestion(t *testing.T) {
	err := ConfigError("max_expansions out of range", nil).
		WithDetail("field", "max_expansions").
		WithSuggestion("use a value between 1 and 100")

	assert.Equal(t, "max_expansions", err.Details["field"])
	assert.Equal(t, "use a value between 1 and 100", err.Suggestion)
}

func TestConstructorCodes(t *testing.T) {
	assert.Equal(t, ErrCodeConfigInvalid, ConfigError("x", nil).Code)
	assert.Equal(t, ErrCodeFileNotFound, IOError("x", nil).Code)
	assert.Equal(t, ErrCodeInvalidInput, ValidationError("x", nil).Code)
	assert.Equal(t, ErrCodeInternal, InternalError("x", nil).Code)
}

func TestIsFatal(t *testing.T) {
	assert.True(t, IsFatal(InternalError("boom", nil)))
	assert.False(t, IsFatal(ConfigError("bad", nil)))
	assert.False(t, IsFatal(errors.New("plain")))
	assert.False(t, IsFatal(nil))
}

func TestGetCodeAndCategory(t *testing.T) {
	err := ValidationError("empty expansions", nil)
	assert.Equal(t, ErrCodeInvalidInput, GetCode(err))
	assert.Equal(t, CategoryValidation, GetCategory(err))

	plain := errors.New("plain")
	assert.Empty(t, GetCode(plain))
	assert.Empty(t, GetCategory(plain))
}
