package document

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

var (
	// ErrNotFound はパスが存在しないか、通常ファイルでないことを表します
	ErrNotFound = errors.New("ファイルが見つかりません")

	// ErrUnsupportedType は印刷対象として扱えないファイル種別を表します
	ErrUnsupportedType = errors.New("サポートされていないファイル種別です")
)

// Kind はドキュメントの種別を表します
type Kind string

const (
	KindPDF   Kind = "pdf"
	KindImage Kind = "image"
)

// supportedExts は拡張子からドキュメント種別への対応表
// Windowsのprint動詞が登録されている代表的な種別のみ扱います
var supportedExts = map[string]Kind{
	".pdf":  KindPDF,
	".png":  KindImage,
	".jpg":  KindImage,
	".jpeg": KindImage,
	".bmp":  KindImage,
	".gif":  KindImage,
	".tif":  KindImage,
	".tiff": KindImage,
}

// Document は印刷対象として解決済みの1ファイルを表します
// 投入時に1回だけ消費され、実行をまたいで保持されません
type Document struct {
	// Path は解決時に指定されたファイルパス
	Path string
	// Name は拡張子込みのファイル名
	Name string
	// Stem は拡張子を除いたファイル名
	Stem string
	// Kind はドキュメント種別
	Kind Kind
	// Pages はPDFのページ数（取得できた場合のみ、それ以外は0）
	Pages int
}

// Resolve はパスを印刷対象ドキュメントとして解決します
// 存在しないパスとディレクトリは ErrNotFound、未対応の拡張子は
// ErrUnsupportedType を返します
// PDFのページ数はpdfcpuで取得しますが、解析できないファイルでも
// 解決自体は成功させます（扱えるかどうかの最終判断はprint動詞の
// 登録先アプリケーションが行うため）
func Resolve(path string) (*Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("ファイルの確認に失敗 (%s): %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s はディレクトリです", ErrNotFound, path)
	}

	doc := Describe(path)
	kind, ok := supportedExts[strings.ToLower(filepath.Ext(doc.Name))]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, path)
	}
	doc.Kind = kind

	if kind == KindPDF {
		// ページ数はレポート表示用のベストエフォート取得
		if pages, err := api.PageCountFile(path); err == nil {
			doc.Pages = pages
		}
	}

	return doc, nil
}

// Describe は存在確認なしでパスから名前情報だけを取り出します
// メッセージテンプレートの展開など、解決に失敗したパスにも
// 名前が必要な場面で使います
func Describe(path string) *Document {
	name := filepath.Base(path)
	return &Document{
		Path: path,
		Name: name,
		Stem: strings.TrimSuffix(name, filepath.Ext(name)),
	}
}

// IsSupported は拡張子が印刷対象として扱えるかどうかを返します
func IsSupported(path string) bool {
	_, ok := supportedExts[strings.ToLower(filepath.Ext(path))]
	return ok
}
