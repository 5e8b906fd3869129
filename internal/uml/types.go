// Package uml defines the parts of the UML metamodel the generation
// services read: applied stereotypes and qualified type names.
//
// The host toolchain owns the real model; it adapts its elements to these
// interfaces. The struct types here are plain implementations for hosts
// without a model of their own, and for tests.
package uml

// Stereotype is a named tag applied to a model element.
type Stereotype interface {
	Name() string
}

// Stereotyped is a model element with applied stereotypes, in application
// order.
type Stereotyped interface {
	AppliedStereotypes() []Stereotype
}

// Type is a model type with a fully-scoped name such as "somda::Duration".
type Type interface {
	QualifiedName() string
}

// StereotypeRef is a Stereotype identified only by its name.
type StereotypeRef string

// Name returns the stereotype name.
func (s StereotypeRef) Name() string { return string(s) }

// DataType is a Type identified only by its qualified name.
type DataType string

// QualifiedName returns the qualified type name.
func (d DataType) QualifiedName() string { return string(d) }

// Class is a classifier with applied stereotypes.
type Class struct {
	Qualified   string
	Stereotypes []string
}

// QualifiedName returns the qualified class name, or "" for a nil class.
func (c *Class) QualifiedName() string {
	if c == nil {
		return ""
	}

	return c.Qualified
}

// AppliedStereotypes returns the class stereotypes in application order.
func (c *Class) AppliedStereotypes() []Stereotype {
	if c == nil || len(c.Stereotypes) == 0 {
		return nil
	}

	out := make([]Stereotype, len(c.Stereotypes))
	for i, name := range c.Stereotypes {
		out[i] = StereotypeRef(name)
	}

	return out
}
