package document

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
}

func TestCollectDir(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "b.pdf"))
	touch(t, filepath.Join(dir, "a.pdf"))
	touch(t, filepath.Join(dir, "notes.txt"))
	touch(t, filepath.Join(dir, "sub", "c.PDF"))

	paths, err := CollectDir(dir, []string{".pdf"})
	require.NoError(t, err)

	// 辞書順・再帰・拡張子は大文字小文字を区別しない
	assert.Equal(t, []string{
		filepath.Join(dir, "a.pdf"),
		filepath.Join(dir, "b.pdf"),
		filepath.Join(dir, "sub", "c.PDF"),
	}, paths)
}

func TestCollectDirAllSupported(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "a.pdf"))
	touch(t, filepath.Join(dir, "b.jpg"))
	touch(t, filepath.Join(dir, "c.txt"))

	// 拡張子指定なしの場合はサポート対象すべて
	paths, err := CollectDir(dir, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(dir, "a.pdf"),
		filepath.Join(dir, "b.jpg"),
	}, paths)
}

func TestCollectDirMissingRoot(t *testing.T) {
	_, err := CollectDir(filepath.Join(t.TempDir(), "no_such_dir"), nil)
	assert.Error(t, err)
}
