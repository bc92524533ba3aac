package testhelpers

import (
	"io/ioutil"
	"path/filepath"

	. "github.com/onsi/gomega"
)

// ConfigPayload is an image configuration carrying both OCI fields and
// Docker extension fields in the same object.
const ConfigPayload = `{
  "created": "2023-08-16T06:40:57.929475525Z",
  "author": "author",
  "architecture": "arm64",
  "variant": "v8",
  "os": "linux",
  "config": {
    "User": "1001",
    "ExposedPorts": {"5432/tcp": {}},
    "Env": [
      "PATH=/usr/local/sbin:/usr/local/bin:/usr/sbin:/usr/bin:/sbin:/bin",
      "PGDATA=/var/lib/postgresql/data"
    ],
    "Entrypoint": ["docker-entrypoint.sh"],
    "Cmd": ["postgres"],
    "Volumes": {"/var/lib/postgresql/data": {}},
    "WorkingDir": "/postgres",
    "Labels": {"maintainer": "someone"},
    "StopSignal": "SIGINT",
    "Memory": 2048,
    "MemorySwap": 4096,
    "CpuShares": 8,
    "Healthcheck": {
      "Test": ["CMD-SHELL", "/usr/bin/check-health localhost"],
      "Interval": 30000000000,
      "Timeout": 10000000000,
      "StartInterval": 3000000000,
      "Retries": 3
    },
    "OnBuild": ["a", "b"],
    "Shell": ["/bin/bash", "-o", "pipefail", "-c"]
  },
  "rootfs": {
    "type": "layers",
    "diff_ids": [
      "sha256:1c3daa06574284614db07a23682ab6d1c344f09f8093ee10e5de4152a51677a1",
      "sha256:310729fcb068da6941441d9627a3d8979e7dbd015c220324331e34af28b7e20c"
    ]
  },
  "history": [
    {
      "created": "2023-08-15T23:39:57.178505081Z",
      "created_by": "/bin/sh -c #(nop) ADD file:bc58956fa3d1 in / "
    },
    {
      "created": "2023-08-15T23:39:57.574431303Z",
      "created_by": "/bin/sh -c #(nop)  CMD [\"bash\"]",
      "empty_layer": true
    }
  ]
}`

// PlainConfigPayload is an image configuration with no Docker extension
// keys at all.
const PlainConfigPayload = `{
  "architecture": "amd64",
  "os": "linux",
  "config": {
    "User": "1001",
    "Env": ["LANG=en_US.utf8"]
  },
  "rootfs": {
    "type": "layers",
    "diff_ids": [
      "sha256:3355e23c079e9b35e4b48075147a7e7e1850b99e089af9a63eed3de235af98ca"
    ]
  }
}`

// ManifestPayload is a single-image manifest.json.
const ManifestPayload = `[
  {
    "Config": "ee56d70bcdf1aeca472a9899de653eb4d72f4a3ac31d9b0b95e677488ce766f3.json",
    "RepoTags": ["postgres:15.4"],
    "Layers": [
      "3b05311756d94678c1ea8e45bf7665a4e29f850c31c6f58d6c28403c6fdc0cdc/layer.tar",
      "454d82adf13f02e53baeae05d06b595b34bbab2836977c6b679488ec038449c3/layer.tar"
    ]
  }
]`

// RepositoriesPayload is a repositories index with one image and one tag.
const RepositoriesPayload = `{
  "postgres": {
    "15.4": "3b05311756d94678c1ea8e45bf7665a4e29f850c31c6f58d6c28403c6fdc0cdc"
  }
}`

// WriteFixture writes contents under dir and returns the file's path.
func WriteFixture(dir, name, contents string) string {
	path := filepath.Join(dir, name)
	Expect(ioutil.WriteFile(path, []byte(contents), 0600)).To(Succeed())
	return path
}
