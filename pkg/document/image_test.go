package document

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadNormalizedPortrait(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "portrait.png")
	writePNG(t, path, 10, 20)

	img, err := LoadNormalized(path)
	require.NoError(t, err)

	// 縦長はそのまま
	assert.Equal(t, 10, img.Bounds().Dx())
	assert.Equal(t, 20, img.Bounds().Dy())
}

func TestLoadNormalizedLandscape(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "landscape.png")
	writePNG(t, path, 30, 10)

	img, err := LoadNormalized(path)
	require.NoError(t, err)

	// 横長は90度回転して縦向きに揃える
	assert.Equal(t, 10, img.Bounds().Dx())
	assert.Equal(t, 30, img.Bounds().Dy())
}

func TestFitRectScalesToWidth(t *testing.T) {
	// 幅いっぱいに拡大し、上下は中央寄せ
	x1, y1, x2, y2 := FitRect(100, 400, 10, 20)

	assert.Equal(t, 0, x1)
	assert.Equal(t, 100, x2-x1)
	assert.Equal(t, 200, y2-y1)
	assert.Equal(t, 100, y1)
	assert.Equal(t, 300, y2)
}

func TestFitRectScalesToHeight(t *testing.T) {
	// 高さ側が先に上限に当たるケース
	x1, y1, x2, y2 := FitRect(1000, 100, 50, 50)

	assert.Equal(t, 100, x2-x1)
	assert.Equal(t, 100, y2-y1)
	assert.Equal(t, 0, y1)
	assert.Equal(t, 450, x1)
}

func TestFitRectZeroImage(t *testing.T) {
	x1, y1, x2, y2 := FitRect(100, 100, 0, 0)
	assert.Equal(t, 0, x1+y1+x2+y2)
}
