package media

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func write(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestDirResolverExtensionPriority(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "a.png", "png")
	write(t, dir, "a.jpeg", "jpeg")
	write(t, dir, "b.png", "png-only")

	r := NewDirResolver(dir, nil)

	uri, ok := r.Resolve("a")
	require.True(t, ok)
	assert.Equal(t, "data:image/jpeg;base64,"+base64.StdEncoding.EncodeToString([]byte("jpeg")), uri)

	write(t, dir, "a.jpg", "jpg")
	r = NewDirResolver(dir, nil)
	uri, ok = r.Resolve("a")
	require.True(t, ok)
	assert.Equal(t, "data:image/jpeg;base64,"+base64.StdEncoding.EncodeToString([]byte("jpg")), uri)

	uri, ok = r.Resolve("b")
	require.True(t, ok)
	assert.Equal(t, "data:image/png;base64,"+base64.StdEncoding.EncodeToString([]byte("png-only")), uri)
}

func TestDirResolverMissing(t *testing.T) {
	r := NewDirResolver(t.TempDir(), nil)
	_, ok := r.Resolve("nope")
	assert.False(t, ok)
	_, ok = r.Resolve("../etc/passwd")
	assert.False(t, ok)
	_, ok = r.Resolve("")
	assert.False(t, ok)
}

func TestEncodeFileUnreadableWarns(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	dir := t.TempDir()
	// a directory cannot be read as a file
	uri := EncodeFile(dir, zap.New(core))
	assert.Equal(t, "", uri)
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "could not load image", logs.All()[0].Message)
}

func TestMapResolver(t *testing.T) {
	m := MapResolver{"img1": "data:image/png;base64,AAAA", "empty": ""}
	uri, ok := m.Resolve("img1")
	assert.True(t, ok)
	assert.Equal(t, "data:image/png;base64,AAAA", uri)
	_, ok = m.Resolve("empty")
	assert.False(t, ok)
	_, ok = m.Resolve("missing")
	assert.False(t, ok)
}

func TestStemAndMIME(t *testing.T) {
	assert.Equal(t, "img_001", Stem("/x/y/img_001.JPG"))
	assert.Equal(t, "noext", Stem("noext"))
	assert.Equal(t, "image/jpeg", MIMEType("a.JPEG"))
	assert.Equal(t, "image/png", MIMEType("a.gif"))
}

func TestLoadLogo(t *testing.T) {
	assert.Equal(t, "", LoadLogo("", nil))
	assert.Equal(t, "", LoadLogo(filepath.Join(t.TempDir(), "missing.png"), nil))
	p := write(t, t.TempDir(), "logo.png", "L")
	assert.Equal(t, "data:image/png;base64,"+base64.StdEncoding.EncodeToString([]byte("L")), LoadLogo(p, nil))
}
