package errors_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dvaquero/mazmorra/internal/errors"
)

func TestValidationBuilder(t *testing.T) {
	t.Run("no errors builds nil", func(t *testing.T) {
		assert.NoError(t, errors.NewValidationBuilder().Build())
	})

	t.Run("required fields produce invalid argument", func(t *testing.T) {
		err := errors.NewValidationBuilder().
			RequiredField("PlayerRepo").
			RequiredField("WorldRepo").
			Build()

		require.Error(t, err)
		assert.True(t, errors.IsInvalidArgument(err))

		var structured *errors.Error
		require.True(t, errors.As(err, &structured))
		fields, ok := structured.Meta["validation_errors"].(map[string][]string)
		require.True(t, ok)
		assert.Contains(t, fields, "PlayerRepo")
		assert.Contains(t, fields, "WorldRepo")
	})

	t.Run("invalid field includes reason", func(t *testing.T) {
		err := errors.NewValidationBuilder().
			InvalidField("Width", "must be positive").
			Build()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "must be positive")
	})
}
