package batch

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/jinford/printq/pkg/document"
	"github.com/robfig/cron/v3"
)

// WatchConfig はホットフォルダ監視の設定です
type WatchConfig struct {
	// Dir は監視対象のフォルダ
	Dir string
	// Exts は印刷対象とする拡張子リスト
	Exts []string
	// CronSchedule はスキャン間隔（cron形式、例: "@every 1m"）
	CronSchedule string
}

// WatchJob はフォルダを定期的にスキャンし、新着ファイルを印刷するジョブです
// 一度投入したファイルはプロセスが生きている間は再投入しません
// （プロセスを再起動すると再投入されます）
type WatchJob struct {
	config *WatchConfig
	runner *Runner
	cron   *cron.Cron
	logger *slog.Logger

	mu   sync.Mutex
	seen map[string]struct{}
}

// NewWatchJob は新しいWatchJobを作成します
func NewWatchJob(config *WatchConfig, runner *Runner, logger *slog.Logger) *WatchJob {
	if logger == nil {
		logger = slog.Default()
	}

	return &WatchJob{
		config: config,
		runner: runner,
		cron:   cron.New(),
		logger: logger,
		seen:   make(map[string]struct{}),
	}
}

// Start はスケジューラーを起動します
func (j *WatchJob) Start() error {
	_, err := j.cron.AddFunc(j.config.CronSchedule, func() {
		if err := j.RunOnce(context.Background()); err != nil {
			j.logger.Error("フォルダ監視の実行に失敗しました", "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("cron ジョブの登録に失敗: %w", err)
	}

	j.cron.Start()
	j.logger.Info("フォルダ監視を開始しました",
		"dir", j.config.Dir,
		"schedule", j.config.CronSchedule)

	return nil
}

// Stop はスケジューラーを停止します
func (j *WatchJob) Stop() {
	j.cron.Stop()
	j.logger.Info("フォルダ監視を停止しました")
}

// RunOnce は1回分のスキャンと投入を実行します（手動実行可能）
func (j *WatchJob) RunOnce(ctx context.Context) error {
	paths, err := document.CollectDir(j.config.Dir, j.config.Exts)
	if err != nil {
		return fmt.Errorf("フォルダのスキャンに失敗: %w", err)
	}

	fresh := j.markSeen(paths)
	if len(fresh) == 0 {
		return nil
	}

	j.logger.Info("新着ファイルを投入します", "count", len(fresh))
	report := j.runner.Run(ctx, fresh)

	if report.Failed() > 0 {
		j.logger.Warn("一部のファイルを投入できませんでした",
			"succeeded", report.Succeeded(),
			"failed", report.Failed())
	}

	return nil
}

// markSeen は未投入のパスだけを返し、既知として記録します
// 失敗したファイルも記録します（壊れたファイルを周回ごとに
// 再投入し続けないため）
func (j *WatchJob) markSeen(paths []string) []string {
	j.mu.Lock()
	defer j.mu.Unlock()

	var fresh []string
	for _, path := range paths {
		if _, ok := j.seen[path]; ok {
			continue
		}
		j.seen[path] = struct{}{}
		fresh = append(fresh, path)
	}
	return fresh
}
