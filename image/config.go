// Package image models the per-image metadata files of a Docker image
// archive: the image configuration and the manifest.
package image // import "code.cloudfoundry.org/imagemeta/image"

import (
	"encoding/json"

	"code.cloudfoundry.org/imagemeta"
	"code.cloudfoundry.org/imagemeta/jsonutil"
	"code.cloudfoundry.org/lager/v3"
	specsv1 "github.com/opencontainers/image-spec/specs-go/v1"
	errorspkg "github.com/pkg/errors"
)

// Config is a Docker image configuration. It is composed of a base part
// that complies with the OCI image specification and an optional Docker
// specific extension. Both parts are read from, and written into, the same
// JSON object: their fields are disjoint at the top level except for the
// nested "config" object, to which both contribute sibling keys.
type Config struct {
	// OCI is the standard OCI image configuration.
	OCI specsv1.Image

	// Extension holds the Docker extension fields. It is nil when the
	// payload carries no extension keys, and an absent extension
	// serializes to nothing.
	Extension *Extension
}

// NewConfigFromFile loads an image configuration from a file.
func NewConfigFromFile(logger lager.Logger, path string) (Config, error) {
	logger = logger.Session("loading-image-config", lager.Data{"path": path})
	logger.Debug("starting")
	defer logger.Debug("ending")

	var config Config
	if err := jsonutil.FromFile(path, &config); err != nil {
		logger.Error("loading-image-config-failed", err)
		return Config{}, err
	}

	return config, nil
}

// NewConfigFromString loads an image configuration from a JSON string.
func NewConfigFromString(s string) (Config, error) {
	var config Config
	if err := jsonutil.FromString(s, &config); err != nil {
		return Config{}, err
	}

	return config, nil
}

// NewConfigFromSlice loads an image configuration from bytes of JSON text.
func NewConfigFromSlice(payload []byte) (Config, error) {
	var config Config
	if err := jsonutil.FromSlice(payload, &config); err != nil {
		return Config{}, err
	}

	return config, nil
}

// UnmarshalJSON interprets the same JSON object twice, once per schema
// layer. The payload is parsed once to rule out malformed input, then the
// base and the extension layers are independently decoded from it. Both
// layers are evaluated before any error is reported, so a base schema
// failure is only ever returned once the extension outcome is known.
func (c *Config) UnmarshalJSON(payload []byte) error {
	var tree interface{}
	if err := json.Unmarshal(payload, &tree); err != nil {
		return &imagemeta.MalformedPayloadError{Cause: err}
	}

	var oci specsv1.Image
	baseErr := json.Unmarshal(payload, &oci)
	if baseErr == nil {
		baseErr = validateBase(oci)
	}

	var extension Extension
	extensionErr := json.Unmarshal(payload, &extension)

	if baseErr != nil {
		if schemaErr, ok := baseErr.(*imagemeta.SchemaError); ok {
			return schemaErr
		}
		return imagemeta.NewBaseSchemaError(baseErr)
	}

	if extensionErr != nil {
		return imagemeta.NewExtensionSchemaError(extensionErr)
	}

	c.OCI = oci
	c.Extension = nil
	if !extension.empty() {
		c.Extension = &extension
	}

	return nil
}

// MarshalJSON serializes both schema layers into one JSON object. The base
// part becomes the output tree and the extension part, when present, is
// overlaid onto it: extension fields win on conflict and extension nulls
// never erase base fields. Key order is deterministic.
func (c Config) MarshalJSON() ([]byte, error) {
	tree, err := toTree(c.OCI)
	if err != nil {
		return nil, errorspkg.Wrap(err, "encoding base schema")
	}

	overlay := map[string]interface{}{}
	if c.Extension != nil {
		if overlay, err = toTree(c.Extension); err != nil {
			return nil, errorspkg.Wrap(err, "encoding extension schema")
		}
	}

	return json.Marshal(jsonutil.Merge(tree, overlay))
}

func toTree(v interface{}) (map[string]interface{}, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	tree := map[string]interface{}{}
	if err := json.Unmarshal(payload, &tree); err != nil {
		return nil, err
	}

	return tree, nil
}

func validateBase(oci specsv1.Image) error {
	requiredFields := []struct {
		name  string
		value string
	}{
		{"architecture", oci.Architecture},
		{"os", oci.OS},
		{"rootfs.type", oci.RootFS.Type},
	}

	for _, field := range requiredFields {
		if field.value == "" {
			return imagemeta.NewBaseSchemaError(
				errorspkg.Errorf("missing required field %q", field.name),
			)
		}
	}

	return nil
}
