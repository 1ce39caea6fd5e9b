// Package batch は複数ドキュメントの順次投入を担います
// 1件の失敗でバッチ全体は止めず、結果を1件ずつ記録して最後に報告します
package batch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/jinford/printq/pkg/document"
	"github.com/jinford/printq/pkg/models"
	"github.com/jinford/printq/pkg/spooler"
)

// Options はバッチ実行の調整項目を保持します
type Options struct {
	// Delay はジョブ間の待機時間（スプールキュー保護用、0で待機なし）
	Delay time.Duration

	// Message は1件投入ごとに表示するテンプレート
	// $printer, $path, $document, $stem が展開されます
	Message string

	// Out はメッセージの出力先（省略時は標準出力）
	Out io.Writer

	// Logger は進捗ログの出力先（省略時はデフォルトロガー）
	Logger *slog.Logger
}

// Runner は複数ドキュメントを順番にスプーラへ投入します
// ロールバックはなく、バッチの部分完了は正常な結果として扱います
type Runner struct {
	spooler spooler.Spooler
	opts    Options
}

// NewRunner は新しいRunnerを作成します
func NewRunner(sp spooler.Spooler, opts Options) *Runner {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Runner{spooler: sp, opts: opts}
}

// Run はパスを順番に投入し、入力と同じ順序の結果レポートを返します
// 個々の失敗ではバッチを止めません。コンテキストがキャンセルされた
// 場合は以降のパスを skipped として記録します
func (r *Runner) Run(ctx context.Context, paths []string) *models.BatchReport {
	report := models.NewBatchReport(r.spooler.Name())

	for i, path := range paths {
		if ctx.Err() != nil {
			report.Add(models.Outcome{
				Path:   path,
				Status: models.OutcomeSkipped,
				Error:  ctx.Err().Error(),
			})
			continue
		}

		// スプールキューを詰まらせないよう、投入の合間にだけ待機する
		if i > 0 && r.opts.Delay > 0 {
			if err := wait(ctx, r.opts.Delay); err != nil {
				report.Add(models.Outcome{
					Path:   path,
					Status: models.OutcomeSkipped,
					Error:  err.Error(),
				})
				continue
			}
		}

		outcome := r.submit(ctx, path)
		report.Add(outcome)

		if outcome.IsSuccess() && r.opts.Message != "" {
			fmt.Fprintln(r.opts.Out, r.expandMessage(outcome.Path))
		}
	}

	r.opts.Logger.Info("バッチ投入が完了しました",
		"printer", report.Printer,
		"total", len(report.Outcomes),
		"succeeded", report.Succeeded(),
		"failed", report.Failed())

	return report
}

// submit は1ドキュメントを解決して投入し、結果を返します
func (r *Runner) submit(ctx context.Context, path string) models.Outcome {
	outcome := models.Outcome{Path: path, SubmittedAt: time.Now()}

	doc, err := document.Resolve(path)
	switch {
	case errors.Is(err, document.ErrNotFound):
		outcome.Status = models.OutcomeNotFound
		outcome.Error = err.Error()
		return outcome
	case errors.Is(err, document.ErrUnsupportedType):
		outcome.Status = models.OutcomeUnsupported
		outcome.Error = err.Error()
		return outcome
	case err != nil:
		outcome.Status = models.OutcomeFailed
		outcome.Error = err.Error()
		return outcome
	}

	jobID, err := r.spooler.Submit(ctx, doc)
	if err != nil {
		r.opts.Logger.Warn("印刷ジョブの投入に失敗しました", "path", path, "error", err)
		outcome.Status = models.OutcomeFailed
		outcome.Error = err.Error()
		return outcome
	}

	r.opts.Logger.Debug("印刷ジョブを投入しました", "path", path, "jobID", string(jobID))
	outcome.Status = models.OutcomeSuccess
	outcome.JobID = jobID
	return outcome
}

// expandMessage はテンプレートのプレースホルダを展開します
func (r *Runner) expandMessage(path string) string {
	doc := document.Describe(path)
	return ExpandMessage(r.opts.Message, map[string]string{
		"printer":  r.spooler.Name(),
		"path":     path,
		"document": doc.Name,
		"stem":     doc.Stem,
	})
}

// wait はキャンセルに応答しながら指定時間待機します
func wait(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
