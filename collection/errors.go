package collection

import "errors"

// Sentinel errors returned (or panicked with) by collection operations.
var (
	// ErrNotCollection is panicked with when an operation receives a nil
	// Collection or a nil target mapping.
	ErrNotCollection = errors.New("collection: argument is neither a sequence nor a mapping")

	// ErrEmptyReduce is returned by Reduce1 on an empty collection.
	ErrEmptyReduce = errors.New("collection: reduce of empty collection with no initial value")

	// ErrNoMethod is returned by Invoke when given neither a method name nor a function.
	ErrNoMethod = errors.New("collection: invoke needs a method name or a function")

	// ErrMethodNotFound is returned by Invoke when an element lacks the named method.
	ErrMethodNotFound = errors.New("collection: method not found")

	// ErrBadArguments is returned by Invoke when the arguments do not fit the
	// method's signature.
	ErrBadArguments = errors.New("collection: arguments do not match method signature")

	// ErrNoCriterion is returned by SortBy when given neither a field name nor a key function.
	ErrNoCriterion = errors.New("collection: sortBy needs a field name or a key function")

	// ErrFieldNotFound is returned when an element has no field (or map entry)
	// with the requested name.
	ErrFieldNotFound = errors.New("collection: field not found")

	// ErrFieldType is returned by SortBy when a field cannot serve as the sort key type.
	ErrFieldType = errors.New("collection: field has the wrong type")
)
