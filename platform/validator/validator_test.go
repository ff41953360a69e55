package validator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type offerInput struct {
	Name       string   `json:"name" validate:"required,notblank,max=10"`
	ValueProps []string `json:"value_props" validate:"required,min=1,dive,required,notblank"`
}

func TestStructReportsJSONFieldNames(t *testing.T) {
	v := New()

	err := v.Struct(offerInput{Name: "   ", ValueProps: []string{"fast", " "}})
	require.Error(t, err)

	fields := Fields(err)
	assert.ElementsMatch(t, []FieldError{
		{Field: "name", Rule: "notblank"},
		{Field: "value_props[1]", Rule: "notblank"},
	}, fields)
}

func TestStructAcceptsValidInput(t *testing.T) {
	assert.NoError(t, New().Struct(offerInput{Name: "Outreach", ValueProps: []string{"24/7 outreach"}}))
}

func TestFieldsWithForeignError(t *testing.T) {
	assert.Equal(t, []FieldError{{Field: "", Rule: "boom"}}, Fields(errors.New("boom")))
}
