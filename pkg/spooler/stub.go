//go:build !windows

package spooler

import "github.com/jinford/printq/pkg/models"

// New はWindows以外では常に ErrUnsupportedPlatform を返します
// スプーラより上の層（バッチ・CLI）はどの環境でもビルド・テストできます
func New(name string, mode Mode) (Spooler, error) {
	return nil, ErrUnsupportedPlatform
}

// List はWindows以外では常に ErrUnsupportedPlatform を返します
func List() ([]models.PrinterInfo, error) {
	return nil, ErrUnsupportedPlatform
}

// DefaultName はWindows以外では常に ErrUnsupportedPlatform を返します
func DefaultName() (string, error) {
	return "", ErrUnsupportedPlatform
}
