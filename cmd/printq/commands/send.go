package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/jinford/printq/pkg/batch"
	"github.com/jinford/printq/pkg/models"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v3"
)

// SendAction は指定されたパスのドキュメントをバッチ印刷するコマンドのアクション
func SendAction(ctx context.Context, cmd *cli.Command) error {
	paths := cmd.Args().Slice()
	if len(paths) == 0 {
		return cli.Exit("印刷対象のパスが指定されていません", 1)
	}

	appCtx, err := NewAppContext(cmd.String("env"), cmd.Bool("verbose"))
	if err != nil {
		return err
	}

	return runBatch(ctx, cmd, appCtx, paths)
}

// runBatch はスプーラを開いてバッチを実行し、結果を表示する
// send と scan で共用する
func runBatch(ctx context.Context, cmd *cli.Command, appCtx *AppContext, paths []string) error {
	sp, err := appCtx.OpenSpooler(cmd)
	if err != nil {
		return err
	}
	defer sp.Close()

	runner := batch.NewRunner(sp, batch.Options{
		Delay:   appCtx.delayFor(cmd),
		Message: appCtx.messageFor(cmd),
		Logger:  appCtx.Logger,
	})

	report := runner.Run(ctx, paths)

	displayBatchReport(report)

	if exportFile := cmd.String("report"); exportFile != "" {
		if err := exportBatchReportToJSON(report, exportFile); err != nil {
			return err
		}
		fmt.Printf("レポートを %s に出力しました\n", exportFile)
	}

	if !report.AllOK() {
		return cli.Exit(
			fmt.Sprintf("%d/%d 件の投入に失敗しました", report.Failed(), len(report.Outcomes)),
			1,
		)
	}
	return nil
}

// displayBatchReport はバッチ結果をテーブル形式で表示する
func displayBatchReport(report *models.BatchReport) {
	fmt.Printf("\n=== 印刷結果 (%s) ===\n", report.Printer)

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ドキュメント", "結果", "ジョブID", "詳細")

	for i := range report.Outcomes {
		o := &report.Outcomes[i]
		table.Append(o.Path, string(o.Status), string(o.JobID), o.Error)
	}

	table.Render()

	fmt.Printf("成功: %d / 失敗: %d\n", report.Succeeded(), report.Failed())
}

// exportBatchReportToJSON はバッチ結果をJSON形式でエクスポートする
func exportBatchReportToJSON(report *models.BatchReport, filename string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("JSONエンコードに失敗: %w", err)
	}

	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("レポートの書き出しに失敗: %w", err)
	}

	return nil
}

// formatPages はページ数の表示用文字列を返す（不明なら空）
func formatPages(pages int) string {
	if pages <= 0 {
		return ""
	}
	return strconv.Itoa(pages)
}
