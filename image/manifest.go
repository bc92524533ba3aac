package image // import "code.cloudfoundry.org/imagemeta/image"

import (
	"code.cloudfoundry.org/imagemeta/jsonutil"
	"code.cloudfoundry.org/lager/v3"
	"github.com/docker/distribution/reference"
	digestpkg "github.com/opencontainers/go-digest"
	specsv1 "github.com/opencontainers/image-spec/specs-go/v1"
	errorspkg "github.com/pkg/errors"
)

// ManifestItem is one entry of the archive's manifest.json. It points at
// the configuration file of an image and lists the layer tarballs that
// make up its filesystem.
type ManifestItem struct {
	Config       string                                  `json:"Config"`
	RepoTags     []string                                `json:"RepoTags"`
	Layers       []string                                `json:"Layers"`
	Parent       string                                  `json:"Parent,omitempty"`
	LayerSources map[digestpkg.Digest]specsv1.Descriptor `json:"LayerSources,omitempty"`
}

// References parses the item's repo tags into normalized references.
func (m ManifestItem) References() ([]reference.Named, error) {
	refs := make([]reference.Named, 0, len(m.RepoTags))
	for _, tag := range m.RepoTags {
		ref, err := reference.ParseNormalizedNamed(tag)
		if err != nil {
			return nil, errorspkg.Wrapf(err, "parsing repo tag %q", tag)
		}
		refs = append(refs, ref)
	}

	return refs, nil
}

// Manifest is the content of manifest.json: one entry for the top-level
// image and, optionally, entries for the parent images it derives from.
type Manifest []ManifestItem

// NewManifestFromFile loads a manifest from a file.
func NewManifestFromFile(logger lager.Logger, path string) (Manifest, error) {
	logger = logger.Session("loading-image-manifest", lager.Data{"path": path})
	logger.Debug("starting")
	defer logger.Debug("ending")

	var manifest Manifest
	if err := jsonutil.FromFile(path, &manifest); err != nil {
		logger.Error("loading-image-manifest-failed", err)
		return nil, err
	}

	return manifest, nil
}

// NewManifestFromString loads a manifest from a JSON string.
func NewManifestFromString(s string) (Manifest, error) {
	var manifest Manifest
	if err := jsonutil.FromString(s, &manifest); err != nil {
		return nil, err
	}

	return manifest, nil
}

// NewManifestFromSlice loads a manifest from bytes of JSON text.
func NewManifestFromSlice(payload []byte) (Manifest, error) {
	var manifest Manifest
	if err := jsonutil.FromSlice(payload, &manifest); err != nil {
		return nil, err
	}

	return manifest, nil
}
