package compose

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arifer/undock-compose/models"
)

func sampleFile() *models.ComposeFile {
	return &models.ComposeFile{
		Version: "3.7",
		Services: map[string]models.ComposeService{
			"gitea": {
				ContainerName: "gitea",
				Image:         "gitea/gitea:latest",
				NetworkMode:   "bridge",
				Ports:         []string{"3000:3000/tcp"},
				Volumes:       []string{"/mnt/user/appdata/gitea:/data"},
				Environment:   models.Mapping{{Key: "USER_UID", Value: "1000"}},
			},
		},
	}
}

func TestMarshal(t *testing.T) {
	data, err := Marshal(sampleFile())
	require.NoError(t, err)
	out := string(data)

	assert.Contains(t, out, `version: "3.7"`)
	assert.Contains(t, out, "gitea/gitea:latest")
	assert.Contains(t, out, "3000:3000/tcp")
	assert.Contains(t, out, "/mnt/user/appdata/gitea:/data")
	assert.Contains(t, out, `USER_UID: "1000"`)
}

func TestMarshal_FieldOrder(t *testing.T) {
	file := sampleFile()
	svc := file.Services["gitea"]
	svc.Labels = models.Mapping{{Key: "net.unraid.docker.managed", Value: "compose"}}
	file.Services["gitea"] = svc

	data, err := Marshal(file)
	require.NoError(t, err)
	out := string(data)

	keys := []string{
		"version:",
		"services:",
		"container_name:",
		"image:",
		"network_mode:",
		"ports:",
		"volumes:",
		"environment:",
		"labels:",
	}

	last := -1
	for _, key := range keys {
		idx := strings.Index(out, key)
		require.GreaterOrEqual(t, idx, 0, "missing key %s", key)
		assert.Greater(t, idx, last, "%s is out of order", key)
		last = idx
	}
}

func TestMarshal_EnvironmentOrderPreserved(t *testing.T) {
	file := sampleFile()
	svc := file.Services["gitea"]
	svc.Environment = models.Mapping{
		{Key: "ZULU", Value: "1"},
		{Key: "ALPHA", Value: "2"},
		{Key: "MIKE", Value: "3"},
	}
	file.Services["gitea"] = svc

	data, err := Marshal(file)
	require.NoError(t, err)
	out := string(data)

	assert.Less(t, strings.Index(out, "ZULU"), strings.Index(out, "ALPHA"))
	assert.Less(t, strings.Index(out, "ALPHA"), strings.Index(out, "MIKE"))
}

func TestMarshal_Idempotent(t *testing.T) {
	first, err := Marshal(sampleFile())
	require.NoError(t, err)

	second, err := Marshal(sampleFile())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestMarshal_OmitsEmptySections(t *testing.T) {
	file := &models.ComposeFile{
		Version: "3.7",
		Services: map[string]models.ComposeService{
			"app": {Image: "app:latest"},
		},
	}

	data, err := Marshal(file)
	require.NoError(t, err)
	out := string(data)

	assert.NotContains(t, out, "ports:")
	assert.NotContains(t, out, "volumes:")
	assert.NotContains(t, out, "environment:")
	assert.NotContains(t, out, "labels:")
	assert.NotContains(t, out, "networks:")
	assert.NotContains(t, out, "privileged:")
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docker-compose.yaml")

	require.NoError(t, WriteFile(path, sampleFile(), false))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "gitea/gitea:latest")
}

func TestWriteFile_RefusesToClobber(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docker-compose.yaml")
	require.NoError(t, os.WriteFile(path, []byte("original"), 0o644))

	err := WriteFile(path, sampleFile(), false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrExist))

	var pathErr *os.PathError
	assert.True(t, errors.As(err, &pathErr))

	// The original file is untouched.
	data, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Equal(t, "original", string(data))
}

func TestWriteFile_ForceOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docker-compose.yaml")
	require.NoError(t, os.WriteFile(path, []byte("original"), 0o644))

	require.NoError(t, WriteFile(path, sampleFile(), true))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "gitea/gitea:latest")
}

func TestDefaultOutputPath(t *testing.T) {
	assert.Equal(t, "/a/b/docker-compose.yaml", DefaultOutputPath("/a/b/my-gitea.xml", "docker-compose.yaml"))
	assert.Equal(t, "docker-compose.yaml", DefaultOutputPath("my-gitea.xml", "docker-compose.yaml"))
	assert.Equal(t, "/a/b/compose.yaml", DefaultOutputPath("/a/b/my-gitea.xml", "compose.yaml"))
}
