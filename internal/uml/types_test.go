package uml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassAppliedStereotypes(t *testing.T) {
	c := &Class{Qualified: "somda::Order", Stereotypes: []string{"Entity", "Audited"}}

	applied := c.AppliedStereotypes()
	require.Len(t, applied, 2)
	assert.Equal(t, "Entity", applied[0].Name())
	assert.Equal(t, "Audited", applied[1].Name())
	assert.Equal(t, "somda::Order", c.QualifiedName())

	assert.Empty(t, (&Class{}).AppliedStereotypes())
}

func TestDataType(t *testing.T) {
	assert.Equal(t, "somda::Duration", DataType("somda::Duration").QualifiedName())
}

func TestNilClass(t *testing.T) {
	var c *Class

	assert.Empty(t, c.QualifiedName())
	assert.Nil(t, c.AppliedStereotypes())
}
