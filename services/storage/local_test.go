package storage

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uploadedFile(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()

	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	fw, err := w.CreateFormFile("image", name)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	_, fh, err := req.FormFile("image")
	require.NoError(t, err)
	return fh
}

func TestSaveKeepsExtensionAndContent(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalImageStore(dir)
	require.NoError(t, err)

	url, err := store.Save(uploadedFile(t, "photo.png", []byte("png bytes")))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, URLPrefix+"/image-"), "unexpected url %q", url)
	assert.True(t, strings.HasSuffix(url, ".png"), "unexpected url %q", url)

	data, err := os.ReadFile(filepath.Join(dir, filepath.Base(url)))
	require.NoError(t, err)
	assert.Equal(t, []byte("png bytes"), data)
}

func TestResolveStoredFile(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalImageStore(dir)
	require.NoError(t, err)

	url, err := store.Save(uploadedFile(t, "photo.jpg", []byte("jpg bytes")))
	require.NoError(t, err)

	path, err := store.Resolve(filepath.Base(url))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, filepath.Base(url)), path)
}

func TestResolveMissingFile(t *testing.T) {
	store, err := NewLocalImageStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Resolve("nope.png")
	assert.ErrorIs(t, err, ErrImageNotFound)
}

func TestResolveStripsDirectoryComponents(t *testing.T) {
	store, err := NewLocalImageStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Resolve("../../etc/passwd")
	assert.ErrorIs(t, err, ErrImageNotFound)
}

func TestNewLocalImageStoreCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	_, err := NewLocalImageStore(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
