// Package services exposes the lookups the Java code-generation templates
// call on the UML model: stereotype checks and UML-to-Java type resolution.
package services

import (
	"errors"
	"fmt"

	"uml2java-services/internal/diagnostic"
	"uml2java-services/internal/typemap"
	"uml2java-services/internal/uml"
	"uml2java-services/mappings"
)

// Diagnostic codes specific to type resolution.
const (
	CodeEmptyTypeName = "empty-type-name"
)

// ErrNilType is returned when a type lookup is given no type.
var ErrNilType = errors.New("nil model type")

// Services answers template queries against one loaded mapping table.
type Services struct {
	types *typemap.Table
}

// New returns Services backed by types.
func New(types *typemap.Table) *Services {
	return &Services{types: types}
}

// NewDefault loads the bundled Java mapping resource.
func NewDefault(opts ...typemap.Option) (*Services, error) {
	types, err := typemap.LoadFS(mappings.FS, mappings.JavaMappingsFile, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize type mappings: %w", err)
	}

	return New(types), nil
}

// Types returns the underlying mapping table.
func (s *Services) Types() *typemap.Table {
	return s.types
}

// HasStereotype reports whether elem has a stereotype named exactly name.
func (s *Services) HasStereotype(elem uml.Stereotyped, name string) bool {
	return HasStereotype(elem, name)
}

// HasStereotype reports whether elem has a stereotype named exactly name.
// A nil element has no stereotypes.
func HasStereotype(elem uml.Stereotyped, name string) bool {
	if elem == nil {
		return false
	}

	for _, st := range elem.AppliedStereotypes() {
		if st != nil && st.Name() == name {
			return true
		}
	}

	return false
}

// QualifiedJavaName returns the Java type for t. It fails with
// *typemap.UnmappedTypeError when the type has no mapping.
func (s *Services) QualifiedJavaName(t uml.Type) (string, error) {
	if t == nil {
		return "", ErrNilType
	}

	return s.types.Resolve(t.QualifiedName())
}

// ResolveAll resolves every type, keyed by qualified name. Unmapped types
// are reported as error diagnostics and left out of the result; the
// remaining types are still resolved.
func (s *Services) ResolveAll(types []uml.Type) (map[string]string, diagnostic.Diagnostics) {
	var diags diagnostic.Diagnostics

	resolved := make(map[string]string, len(types))
	reported := make(map[string]bool)

	for _, t := range types {
		var name string
		if t != nil {
			name = t.QualifiedName()
		}

		if name == "" {
			diags.AddWarning(CodeEmptyTypeName, "skipped type without qualified name", "")

			continue
		}

		if _, ok := resolved[name]; ok || reported[name] {
			continue
		}

		javaType, err := s.types.Resolve(name)
		if err != nil {
			diags.AddError(diagnostic.CodeUnmappedType, err.Error(), name)
			reported[name] = true

			continue
		}

		resolved[name] = javaType
	}

	return resolved, diags
}
