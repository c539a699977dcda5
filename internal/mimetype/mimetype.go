// Package mimetype resolves a content type for uploads whose multipart part
// carries none, from an embedded extension table.
package mimetype

import (
	_ "embed"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed types.yaml
var typesFile []byte

const fallback = "application/octet-stream"

var (
	once    sync.Once
	byExt   map[string]string
	loadErr error
)

func load() {
	var table struct {
		Types map[string]string `yaml:"types"`
	}
	if loadErr = yaml.Unmarshal(typesFile, &table); loadErr != nil {
		return
	}
	byExt = table.Types
}

// Detect returns the declared content type when present, otherwise looks the
// file extension up in the embedded table, otherwise application/octet-stream.
func Detect(declared, filename string) string {
	if declared != "" {
		return declared
	}

	once.Do(load)
	if loadErr != nil {
		return fallback
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if mt, ok := byExt[ext]; ok {
		return mt
	}
	return fallback
}
