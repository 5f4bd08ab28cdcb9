package models

import (
	"net/url"
	"reflect"

	"github.com/danielgtaylor/huma/v2"
)

// OptionalParam wraps a request parameter and records whether the client
// actually sent it, so that an empty value can be told apart from a missing one.
type OptionalParam[T any] struct {
	Value T
	IsSet bool
}

// Schema returns the schema of the wrapped type for the OpenAPI document.
func (o OptionalParam[T]) Schema(r huma.Registry) *huma.Schema {
	return huma.SchemaFromType(r, reflect.TypeOf(o.Value))
}

// Receiver lets huma parse the raw parameter into the wrapped value.
func (o *OptionalParam[T]) Receiver() reflect.Value {
	return reflect.ValueOf(o).Elem().Field(0)
}

// OnParamSet is called by huma after the parameter has been processed.
func (o *OptionalParam[T]) OnParamSet(isSet bool, parsed any) {
	o.IsSet = isSet
}

// MarkPresent sets IsSet if name appears in the query string. huma treats
// an empty value like a missing one, so `?text=` would otherwise be unset.
func (o *OptionalParam[T]) MarkPresent(query url.Values, name string) {
	if query.Has(name) {
		o.IsSet = true
	}
}
