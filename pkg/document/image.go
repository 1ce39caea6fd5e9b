package document

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// LoadNormalized は画像ファイルを読み込み、印刷向けに正規化します
// 横長の画像は縦向きの用紙に合わせて90度回転させます
func LoadNormalized(path string) (image.Image, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("画像の読み込みに失敗 (%s): %w", path, err)
	}

	bounds := img.Bounds()
	if bounds.Dx() > bounds.Dy() {
		img = imaging.Rotate90(img)
	}

	return img, nil
}

// FitRect は用紙サイズに収まる最大の描画矩形を返します
// アスペクト比を保ったまま拡大縮小し、用紙中央に配置します
func FitRect(paperWidth, paperHeight, imgWidth, imgHeight int) (x1, y1, x2, y2 int) {
	if imgWidth <= 0 || imgHeight <= 0 {
		return 0, 0, 0, 0
	}

	scale := float64(paperWidth) / float64(imgWidth)
	if s := float64(paperHeight) / float64(imgHeight); s < scale {
		scale = s
	}

	width := int(float64(imgWidth) * scale)
	height := int(float64(imgHeight) * scale)
	x1 = (paperWidth - width) / 2
	y1 = (paperHeight - height) / 2
	return x1, y1, x1 + width, y1 + height
}
