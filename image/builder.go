package image // import "code.cloudfoundry.org/imagemeta/image"

import specsv1 "github.com/opencontainers/image-spec/specs-go/v1"

// ConfigBuilder assembles an image configuration part by part. Build
// validates the result, so a built Config is always encodable.
type ConfigBuilder struct {
	config *Config
}

func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		config: &Config{},
	}
}

func (b *ConfigBuilder) WithOCI(oci specsv1.Image) *ConfigBuilder {
	b.config.OCI = oci
	return b
}

func (b *ConfigBuilder) WithExtension(extension Extension) *ConfigBuilder {
	b.config.Extension = &extension
	return b
}

// Build returns the assembled configuration. It fails, naming the missing
// field, when a field the base schema requires has not been supplied. An
// extension with no fields set is normalized to an absent extension, the
// same form decoding produces.
func (b *ConfigBuilder) Build() (Config, error) {
	if err := validateBase(b.config.OCI); err != nil {
		return Config{}, err
	}

	config := *b.config
	if config.Extension != nil && config.Extension.empty() {
		config.Extension = nil
	}

	return config, nil
}
