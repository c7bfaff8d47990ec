package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hostelhq/hostelhq/internal/validate"
)

type sample struct {
	Name  string `json:"user_name" validate:"required,notblank"`
	Email string `json:"email" validate:"omitempty,email"`
	Fee   int64  `json:"monthly_fee" validate:"required,gt=0"`
}

func TestStruct(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		err := validate.Struct(sample{Name: "Asha", Email: "asha@example.com", Fee: 5000})
		assert.NoError(t, err)
	})

	t.Run("ReportsJSONFieldNames", func(t *testing.T) {
		err := validate.Struct(sample{Name: "", Fee: 0})
		require.Error(t, err)

		var verr *validate.Error
		require.ErrorAs(t, err, &verr)
		require.Len(t, verr.Fields, 2)
		assert.Equal(t, "user_name", verr.Fields[0].Field)
		assert.Equal(t, "monthly_fee", verr.Fields[1].Field)
	})

	t.Run("NotBlankRejectsWhitespace", func(t *testing.T) {
		err := validate.Struct(sample{Name: "   ", Fee: 100})
		require.Error(t, err)

		var verr *validate.Error
		require.ErrorAs(t, err, &verr)
		require.Len(t, verr.Fields, 1)
		assert.Equal(t, "user_name", verr.Fields[0].Field)
		assert.Equal(t, "this field cannot be blank", verr.Fields[0].Message)
	})

	t.Run("BadEmail", func(t *testing.T) {
		err := validate.Struct(sample{Name: "Asha", Email: "not-an-email", Fee: 100})
		require.Error(t, err)

		var verr *validate.Error
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "email", verr.Fields[0].Field)
	})
}

func TestFailed(t *testing.T) {
	err := validate.Failed("paid_amount", "must be greater than zero")
	require.Len(t, err.Fields, 1)
	assert.Equal(t, "paid_amount", err.Fields[0].Field)
	assert.Contains(t, err.Error(), "paid_amount")
}
