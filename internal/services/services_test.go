package services

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uml2java-services/internal/diagnostic"
	"uml2java-services/internal/typemap"
	"uml2java-services/internal/uml"
)

const testMappings = `<mappings>
  <mapping><from>String</from><to>java.lang.String</to></mapping>
  <mapping><from>Duration</from><to>java.time.Duration</to></mapping>
</mappings>`

func newTestServices(t *testing.T) *Services {
	t.Helper()

	table, err := typemap.Load(strings.NewReader(testMappings), "test.xml",
		typemap.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	require.NoError(t, err)

	return New(table)
}

// stereotypes is a Stereotyped backed by arbitrary Stereotype values.
type stereotypes []uml.Stereotype

func (s stereotypes) AppliedStereotypes() []uml.Stereotype { return s }

func TestHasStereotype(t *testing.T) {
	svc := newTestServices(t)
	entity := &uml.Class{Qualified: "somda::Order", Stereotypes: []string{"Foo", "Bar"}}
	plain := &uml.Class{Qualified: "somda::Plain"}

	var missing *uml.Class

	tests := []struct {
		name     string
		elem     uml.Stereotyped
		target   string
		expected bool
	}{
		{name: "match last", elem: entity, target: "Bar", expected: true},
		{name: "match first", elem: entity, target: "Foo", expected: true},
		{name: "no match", elem: entity, target: "Baz", expected: false},
		{name: "case sensitive", elem: entity, target: "bar", expected: false},
		{name: "no stereotypes", elem: plain, target: "Foo", expected: false},
		{name: "nil element", elem: nil, target: "Foo", expected: false},
		{name: "nil class", elem: missing, target: "Foo", expected: false},
		{name: "nil entry skipped", elem: stereotypes{nil, uml.StereotypeRef("Foo")}, target: "Foo", expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, svc.HasStereotype(tt.elem, tt.target))
		})
	}
}

func TestQualifiedJavaName(t *testing.T) {
	svc := newTestServices(t)

	got, err := svc.QualifiedJavaName(uml.DataType("somda::Duration"))
	require.NoError(t, err)
	assert.Equal(t, "java.time.Duration", got)

	_, err = svc.QualifiedJavaName(&uml.Class{Qualified: "somda::Order"})

	var unmapped *typemap.UnmappedTypeError
	require.ErrorAs(t, err, &unmapped)
	assert.Equal(t, "somda::Order", unmapped.QualifiedName)

	_, err = svc.QualifiedJavaName(nil)
	require.ErrorIs(t, err, ErrNilType)

	var missing *uml.Class

	_, err = svc.QualifiedJavaName(missing)
	require.ErrorAs(t, err, &unmapped)
	assert.Empty(t, unmapped.QualifiedName)
}

func TestResolveAll(t *testing.T) {
	svc := newTestServices(t)

	var missing *uml.Class

	resolved, diags := svc.ResolveAll([]uml.Type{
		uml.DataType("somda::String"),
		uml.DataType("somda::Money"),
		uml.DataType("somda::Duration"),
		uml.DataType("somda::Money"),
		uml.DataType("somda::String"),
		uml.DataType(""),
		nil,
		missing,
	})

	assert.Equal(t, map[string]string{
		"somda::String":   "java.lang.String",
		"somda::Duration": "java.time.Duration",
	}, resolved)

	require.True(t, diags.HasErrors())
	require.Len(t, diags.Errors, 1)
	assert.Equal(t, diagnostic.CodeUnmappedType, diags.Errors[0].Code)
	assert.Equal(t, "somda::Money", diags.Errors[0].TypeName)
	assert.Contains(t, diags.Errors[0].Message, "somda::Money")

	require.Len(t, diags.Warnings, 3)
	assert.Equal(t, CodeEmptyTypeName, diags.Warnings[0].Code)
}

func TestNewDefault(t *testing.T) {
	svc, err := NewDefault(typemap.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	require.NoError(t, err)

	got, err := svc.QualifiedJavaName(uml.DataType("somda::String"))
	require.NoError(t, err)
	assert.Equal(t, "java.lang.String", got)

	for _, key := range svc.Types().Keys() {
		assert.True(t, strings.HasPrefix(key, typemap.Namespace), key)
	}
}
