package errs_test

import (
	"errors"
	"testing"

	"warehouse/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("without_cause", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("productCode", "A3")

		assert.Equal(t, "productCode", err.ParamName)
		assert.Equal(t, "A3", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: A3", err.Error())
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("with_cause", func(t *testing.T) {
		cause := errors.New("archive is empty")
		err := errs.NewObjectNotFoundErrorWithCause("parcelNumber", "7", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: parcelNumber, ID is: 7 (cause: archive is empty)",
			err.Error())
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("without_cause", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("productCode")

		assert.Equal(t, "productCode", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: productCode", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("with_cause", func(t *testing.T) {
		cause := errors.New("first character must be a letter")
		err := errs.NewValueIsInvalidErrorWithCause("productCode", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"value is invalid: productCode (cause: first character must be a letter)",
			err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("without_cause", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("alertCapacity", -1, 1, 100)

		assert.Equal(t, "alertCapacity", err.ParamName)
		assert.Equal(t, -1, err.Value)
		assert.Equal(t, 1, err.Min)
		assert.Equal(t, 100, err.Max)
		assert.Equal(t, "value is invalid: -1 is alertCapacity, min value is 1, max value is 100", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("with_cause", func(t *testing.T) {
		cause := errors.New("parsed from environment")
		err := errs.NewValueIsOutOfRangeErrorWithCause("threshold", 0, 1, 10, cause)

		assert.Equal(t,
			"value is invalid: 0 is threshold, min value is 1, max value is 10 (cause: parsed from environment)",
			err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("newlines_in_value_are_flattened", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("batch", "A1\nB2", 0, 10)

		assert.Contains(t, err.Error(), "A1 B2")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("without_cause", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("batch")

		assert.Equal(t, "batch", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: batch", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("with_cause", func(t *testing.T) {
		cause := errors.New("empty input line")
		err := errs.NewValueIsRequiredErrorWithCause("order", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: order (cause: empty input line)", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestSentinelErrors(t *testing.T) {
	assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
	assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
	assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
	assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
}
