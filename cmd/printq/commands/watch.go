package commands

import (
	"context"

	"github.com/jinford/printq/pkg/batch"
	"github.com/urfave/cli/v3"
)

// WatchAction はホットフォルダ監視を開始するコマンドのアクション
// 終了シグナルを受けるまでフォルダを定期スキャンし、新着ファイルを印刷する
func WatchAction(ctx context.Context, cmd *cli.Command) error {
	appCtx, err := NewAppContext(cmd.String("env"), cmd.Bool("verbose"))
	if err != nil {
		return err
	}

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

	job := batch.NewWatchJob(&batch.WatchConfig{
		Dir:          cmd.String("dir"),
		Exts:         appCtx.extsFor(cmd),
		CronSchedule: cmd.String("cron"),
	}, runner, appCtx.Logger)

	// 起動直後に1回スキャンしてから定期実行に入る
	if err := job.RunOnce(ctx); err != nil {
		return err
	}

	if err := job.Start(); err != nil {
		return err
	}
	defer job.Stop()

	<-ctx.Done()
	return nil
}
