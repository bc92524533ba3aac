// Package imagemeta models the metadata files of a Docker image archive:
// the image configuration, the manifest and the repositories index.
// The image configuration is a composite of the OCI image specification
// and the Docker extension fields, both occupying the same JSON object.
package imagemeta // import "code.cloudfoundry.org/imagemeta"

import "fmt"

// SchemaLayer identifies which of the two schema layers of an image
// configuration an error refers to.
type SchemaLayer string

const (
	BaseSchemaLayer      SchemaLayer = "base"
	ExtensionSchemaLayer SchemaLayer = "extension"
)

// MalformedPayloadError reports input that is not syntactically valid JSON.
type MalformedPayloadError struct {
	Cause error
}

func (e *MalformedPayloadError) Error() string {
	return fmt.Sprintf("malformed payload: %s", e.Cause)
}

func (e *MalformedPayloadError) Unwrap() error {
	return e.Cause
}

// SchemaError reports valid JSON that fails one of the two schema layers.
// Callers that want to retry with a relaxed schema can inspect Layer to
// tell a base failure from an extension failure.
type SchemaError struct {
	Layer SchemaLayer
	Cause error
}

func NewBaseSchemaError(cause error) *SchemaError {
	return &SchemaError{Layer: BaseSchemaLayer, Cause: cause}
}

func NewExtensionSchemaError(cause error) *SchemaError {
	return &SchemaError{Layer: ExtensionSchemaLayer, Cause: cause}
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s schema invalid: %s", e.Layer, e.Cause)
}

func (e *SchemaError) Unwrap() error {
	return e.Cause
}

// UnencodableFieldError reports a field whose value has no representation
// in the output encoding, such as a required duration holding no value at
// encode time.
type UnencodableFieldError struct {
	Field string
}

func (e *UnencodableFieldError) Error() string {
	return fmt.Sprintf("field %q holds no encodable value", e.Field)
}
