// Package media resolves image identifiers to inline data URIs.
package media

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"
)

// Resolver maps an image identifier (a file stem) to an encoded image.
// A missing image is reported with ok == false and is never an error.
type Resolver interface {
	Resolve(id string) (uri string, ok bool)
}

// Extensions are tried in order when looking an image up in a directory.
var Extensions = []string{".jpg", ".jpeg", ".png"}

// DirResolver looks images up next to the record file as <id><ext>.
type DirResolver struct {
	dir   string
	log   *zap.Logger
	cache map[string]string
}

func NewDirResolver(dir string, log *zap.Logger) *DirResolver {
	if log == nil {
		log = zap.NewNop()
	}
	return &DirResolver{dir: dir, log: log, cache: make(map[string]string)}
}

func (d *DirResolver) Resolve(id string) (string, bool) {
	if uri, ok := d.cache[id]; ok {
		return uri, uri != ""
	}
	uri := ""
	if p := d.Find(id); p != "" {
		uri = EncodeFile(p, d.log)
	}
	d.cache[id] = uri
	return uri, uri != ""
}

// Find returns the first existing <dir>/<id><ext>, or "" when none exists.
// Identifiers containing path elements never match.
func (d *DirResolver) Find(id string) string {
	if id == "" || filepath.Base(id) != id || id == "." || id == ".." {
		return ""
	}
	for _, ext := range Extensions {
		p := filepath.Join(d.dir, id+ext)
		if fi, err := os.Stat(p); err == nil && !fi.IsDir() {
			return p
		}
	}
	return ""
}

// MapResolver serves images supplied by the caller, keyed by identifier, with
// payloads already encoded as data URIs.
type MapResolver map[string]string

func (m MapResolver) Resolve(id string) (string, bool) {
	uri := m[id]
	return uri, uri != ""
}

// EncodeFile reads path and returns it as a data URI. A file that cannot be
// read is logged as a warning and yields "".
func EncodeFile(path string, log *zap.Logger) string {
	if log == nil {
		log = zap.NewNop()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		log.Warn("could not load image", zap.String("path", path), zap.Error(err))
		return ""
	}
	log.Debug("image loaded", zap.String("path", path), zap.String("size", humanize.Bytes(uint64(len(data)))))
	return Encode(data, path)
}

// Encode returns data as a data URI. The MIME type follows the extension of
// name: .jpg and .jpeg are JPEG, everything else PNG.
func Encode(data []byte, name string) string {
	return "data:" + MIMEType(name) + ";base64," + base64.StdEncoding.EncodeToString(data)
}

func MIMEType(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	}
	return "image/png"
}

// Stem returns a file name without directory and extension; it is the
// identifier images are referenced by.
func Stem(name string) string {
	base := filepath.Base(name)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// LoadLogo encodes the logo at path. An empty path or a missing file gives
// "" without a warning; an unreadable file is warned about.
func LoadLogo(path string, log *zap.Logger) string {
	if path == "" {
		return ""
	}
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return EncodeFile(path, log)
}
