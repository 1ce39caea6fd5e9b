package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/jinford/printq/pkg/document"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v3"
)

// ScanAction はフォルダを再帰的に走査し、見つかったドキュメントを
// まとめて印刷するコマンドのアクション
func ScanAction(ctx context.Context, cmd *cli.Command) error {
	appCtx, err := NewAppContext(cmd.String("env"), cmd.Bool("verbose"))
	if err != nil {
		return err
	}

	dir := cmd.String("dir")
	exts := appCtx.extsFor(cmd)

	paths, err := document.CollectDir(dir, exts)
	if err != nil {
		return err
	}

	if len(paths) == 0 {
		fmt.Println("印刷対象のファイルが見つかりませんでした")
		return nil
	}

	if cmd.Bool("dry-run") {
		displayScanResult(paths)
		return nil
	}

	return runBatch(ctx, cmd, appCtx, paths)
}

// displayScanResult は走査結果をテーブル形式で表示する
func displayScanResult(paths []string) {
	fmt.Printf("=== 印刷対象 (%d件) ===\n", len(paths))

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ドキュメント", "種別", "ページ数")

	for _, path := range paths {
		doc, err := document.Resolve(path)
		if err != nil {
			table.Append(path, "-", "")
			continue
		}
		table.Append(doc.Path, string(doc.Kind), formatPages(doc.Pages))
	}

	table.Render()
}
