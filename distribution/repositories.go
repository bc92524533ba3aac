// Package distribution models the repositories index of a Docker image
// archive.
package distribution // import "code.cloudfoundry.org/imagemeta/distribution"

import (
	"code.cloudfoundry.org/imagemeta/jsonutil"
	"code.cloudfoundry.org/lager/v3"
)

// Repository maps an image tag to the ID of its top layer. The IDs are the
// legacy bare hex form, not algorithm-prefixed digests.
type Repository map[string]string

// Repositories maps an image name to its tagged repository.
type Repositories map[string]Repository

// NewRepositoriesFromFile loads a repositories index from a file.
func NewRepositoriesFromFile(logger lager.Logger, path string) (Repositories, error) {
	logger = logger.Session("loading-repositories", lager.Data{"path": path})
	logger.Debug("starting")
	defer logger.Debug("ending")

	var repositories Repositories
	if err := jsonutil.FromFile(path, &repositories); err != nil {
		logger.Error("loading-repositories-failed", err)
		return nil, err
	}

	return repositories, nil
}

// NewRepositoriesFromString loads a repositories index from a JSON string.
func NewRepositoriesFromString(s string) (Repositories, error) {
	var repositories Repositories
	if err := jsonutil.FromString(s, &repositories); err != nil {
		return nil, err
	}

	return repositories, nil
}

// NewRepositoriesFromSlice loads a repositories index from bytes of JSON
// text.
func NewRepositoriesFromSlice(payload []byte) (Repositories, error) {
	var repositories Repositories
	if err := jsonutil.FromSlice(payload, &repositories); err != nil {
		return nil, err
	}

	return repositories, nil
}
