package errors_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/gosimfoundation/rostermap/pkg/errors"
)

func TestNew(t *testing.T) {
	err := pkgerrors.New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestValidationError(t *testing.T) {
	t.Run("with field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{
			Field:   "id",
			Message: "cannot be empty",
		}
		assert.Equal(t, "validation failed for field id: cannot be empty", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrInvalidInput))
	})

	t.Run("without field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{
			Message: "invalid roster entry",
		}
		assert.Equal(t, "validation failed: invalid roster entry", err.Error())
		assert.True(t, pkgerrors.IsValidationError(err))
	})

	t.Run("constructor", func(t *testing.T) {
		err := pkgerrors.NewValidationError("tags", []string{}, "must be sorted")
		assert.Contains(t, err.Error(), "tags")
		assert.Contains(t, err.Error(), "must be sorted")
	})
}

func TestParseError(t *testing.T) {
	t.Run("with file", func(t *testing.T) {
		base := errors.New("unexpected end of JSON input")
		err := pkgerrors.NewParseError("json", "Speakers.json", base.Error(), base)
		assert.Contains(t, err.Error(), "Speakers.json")
		assert.Contains(t, err.Error(), "unexpected end of JSON input")
		assert.Equal(t, base, errors.Unwrap(err))
	})

	t.Run("without file", func(t *testing.T) {
		err := &pkgerrors.ParseError{Format: "json", Message: "bad token"}
		assert.Equal(t, "json parse error: bad token", err.Error())
	})
}

func TestIOError(t *testing.T) {
	base := errors.New("permission denied")
	err := pkgerrors.NewIOError("write", "/tmp/Speakers.json", base)
	assert.Contains(t, err.Error(), "write")
	assert.Contains(t, err.Error(), "/tmp/Speakers.json")
	assert.Equal(t, base, errors.Unwrap(err))
}

func TestResourceError(t *testing.T) {
	t.Run("with id", func(t *testing.T) {
		base := errors.New("boom")
		err := pkgerrors.NewResourceError("load", "roster", "SpeakersZh.json", base)
		assert.Equal(t, "failed to load roster SpeakersZh.json: boom", err.Error())
		assert.Equal(t, base, errors.Unwrap(err))
	})

	t.Run("without id", func(t *testing.T) {
		err := pkgerrors.NewResourceError("apply", "mapping", "", errors.New("boom"))
		assert.Equal(t, "failed to apply mapping: boom", err.Error())
	})
}

func TestWrapHelpers(t *testing.T) {
	t.Run("nil passthrough", func(t *testing.T) {
		assert.Nil(t, pkgerrors.WrapIO("read", "f", nil))
		assert.Nil(t, pkgerrors.WrapParse("json", "f", nil))
		assert.Nil(t, pkgerrors.WrapResource("load", "roster", "", nil))
		assert.Nil(t, pkgerrors.WrapValidation("id", nil))
	})

	t.Run("wrap io", func(t *testing.T) {
		base := errors.New("disk full")
		err := pkgerrors.WrapIO("write", "Speakers.json", base)
		require.Error(t, err)
		var ioErr *pkgerrors.IOError
		require.True(t, errors.As(err, &ioErr))
		assert.Equal(t, "write", ioErr.Operation)
	})

	t.Run("wrap validation", func(t *testing.T) {
		err := pkgerrors.WrapValidation("name", errors.New("empty"))
		require.Error(t, err)
		assert.True(t, pkgerrors.IsValidationError(err))
	})
}
