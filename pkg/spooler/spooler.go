// Package spooler はOSの印刷サブシステムへの唯一の窓口です
// プラットフォーム依存のコードはすべてこのパッケージの背後に隔離され、
// 上位層は Submit ひとつだけを頼りにバッチを進めます
package spooler

import (
	"context"
	"errors"
	"fmt"

	"github.com/jinford/printq/pkg/document"
	"github.com/jinford/printq/pkg/models"
)

var (
	// ErrUnsupportedPlatform はWindows以外の環境で投入を試みたことを表します
	ErrUnsupportedPlatform = errors.New("印刷ジョブの投入はWindowsでのみサポートされています")

	// ErrNoPrinter はプリンタが見つからない（デフォルトプリンタ未設定を含む）
	// ことを表します
	ErrNoPrinter = errors.New("利用できるプリンタが見つかりません")
)

// Mode は印刷ジョブの投入方式を表します
type Mode string

const (
	// ModeShell はOSのprint動詞（ShellExecute）で投入します
	// 登録アプリケーションが起動するためサイレントではありません
	ModeShell Mode = "shell"

	// ModeDevice はGDIデバイスコンテキストで直接描画して投入します
	// サイレントですが、対応するのはラスタ画像のみです
	// （PDFはprint動詞側に委譲されます）
	ModeDevice Mode = "device"
)

// ParseMode は文字列を投入方式として解釈します
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeShell, ModeDevice:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("不正な投入方式です: %q (shell または device)", s)
	}
}

// Spooler は1台のプリンタへのジョブ投入を担います
// Submit の成功はOSがジョブを受け付けたことだけを意味し、
// 物理的な印刷完了は保証しません
type Spooler interface {
	// Name は接続先プリンタ名を返します
	Name() string

	// Submit はドキュメントを印刷キューへ投入します
	Submit(ctx context.Context, doc *document.Document) (models.JobID, error)

	// Close はプリンタへの接続を解放します
	Close() error
}
