package typemap

import "fmt"

// ResourceNotFoundError is returned when the mapping resource cannot be
// opened or read.
type ResourceNotFoundError struct {
	Resource string
	Err      error
}

func (e *ResourceNotFoundError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("mapping resource file '%s' not found", e.Resource)
	}

	return fmt.Sprintf("mapping resource file '%s' not found: %v", e.Resource, e.Err)
}

func (e *ResourceNotFoundError) Unwrap() error { return e.Err }

// MalformedMappingError is returned when the mapping resource is not a
// well-formed mapping document.
type MalformedMappingError struct {
	Resource string
	Err      error
}

func (e *MalformedMappingError) Error() string {
	return fmt.Sprintf("failed to load mapping resource '%s': %v", e.Resource, e.Err)
}

func (e *MalformedMappingError) Unwrap() error { return e.Err }

// UnmappedTypeError is returned by Resolve for a name with no Java mapping.
type UnmappedTypeError struct {
	QualifiedName string
}

func (e *UnmappedTypeError) Error() string {
	return fmt.Sprintf("unsupported type '%s' in model", e.QualifiedName)
}
