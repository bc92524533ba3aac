package image // import "code.cloudfoundry.org/imagemeta/image"

import (
	"encoding/json"
	"time"

	"code.cloudfoundry.org/imagemeta/jsonutil"
)

// Extension carries the fields Docker layers on top of the OCI image
// specification, keyed exactly like the base schema's JSON object.
//
// ArgsEscaped is deliberately not part of the extension: the OCI
// specification claims it inside the base "config" object, and a key must
// belong to exactly one layer.
type Extension struct {
	// Config holds the extra fields Docker adds inside the "config" object.
	Config *ConfigExtension `json:"config,omitempty"`
}

func (e Extension) empty() bool {
	return e.Config == nil || e.Config.empty()
}

// ConfigExtension covers the extra fields Docker adds in the "config"
// object of the image configuration. Every field is independently
// optional, and a present-but-empty list is distinct from an absent one.
type ConfigExtension struct {
	// Memory is the memory limit in bytes.
	Memory *uint64 `json:"Memory,omitempty"`

	// MemorySwap is the total memory usage (memory + swap).
	MemorySwap *uint64 `json:"MemorySwap,omitempty"`

	// CPUShares is the relative CPU weight vs. other containers.
	CPUShares *uint16 `json:"CpuShares,omitempty"`

	// Healthcheck describes how to probe the container for health.
	Healthcheck *Healthcheck `json:"Healthcheck,omitempty"`

	// OnBuild lists trigger instructions to run when the image is used as
	// the base for another build.
	OnBuild *[]string `json:"OnBuild,omitempty"`

	// Shell overrides the default shell used for the shell form of
	// commands during build.
	Shell *[]string `json:"Shell,omitempty"`
}

func (c ConfigExtension) empty() bool {
	return c.Memory == nil &&
		c.MemorySwap == nil &&
		c.CPUShares == nil &&
		c.Healthcheck == nil &&
		c.OnBuild == nil &&
		c.Shell == nil
}

// Healthcheck holds the settings of the HEALTHCHECK instruction. Durations
// are encoded on the wire as integer nanosecond counts.
type Healthcheck struct {
	Test          *[]string
	Interval      *time.Duration
	Timeout       *time.Duration
	StartPeriod   *time.Duration
	StartInterval *time.Duration
	Retries       *uint32
}

type healthcheckJSON struct {
	Test          *[]string `json:"Test,omitempty"`
	Interval      *int64    `json:"Interval,omitempty"`
	Timeout       *int64    `json:"Timeout,omitempty"`
	StartPeriod   *int64    `json:"StartPeriod,omitempty"`
	StartInterval *int64    `json:"StartInterval,omitempty"`
	Retries       *uint32   `json:"Retries,omitempty"`
}

func (h Healthcheck) MarshalJSON() ([]byte, error) {
	encoded := healthcheckJSON{
		Test:    h.Test,
		Retries: h.Retries,
	}

	durations := []struct {
		field  string
		value  *time.Duration
		target **int64
	}{
		{"Interval", h.Interval, &encoded.Interval},
		{"Timeout", h.Timeout, &encoded.Timeout},
		{"StartPeriod", h.StartPeriod, &encoded.StartPeriod},
		{"StartInterval", h.StartInterval, &encoded.StartInterval},
	}

	for _, duration := range durations {
		if duration.value == nil {
			continue
		}

		nanos, err := jsonutil.EncodeDuration(duration.field, duration.value)
		if err != nil {
			return nil, err
		}
		*duration.target = &nanos
	}

	return json.Marshal(encoded)
}

func (h *Healthcheck) UnmarshalJSON(payload []byte) error {
	var decoded healthcheckJSON
	if err := json.Unmarshal(payload, &decoded); err != nil {
		return err
	}

	h.Test = decoded.Test
	h.Retries = decoded.Retries
	h.Interval = decodeOptionalDuration(decoded.Interval)
	h.Timeout = decodeOptionalDuration(decoded.Timeout)
	h.StartPeriod = decodeOptionalDuration(decoded.StartPeriod)
	h.StartInterval = decodeOptionalDuration(decoded.StartInterval)

	return nil
}

func decodeOptionalDuration(nanos *int64) *time.Duration {
	if nanos == nil {
		return nil
	}

	duration := jsonutil.DecodeDuration(*nanos)
	return &duration
}
