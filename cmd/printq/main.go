package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jinford/printq/cmd/printq/commands"
	"github.com/urfave/cli/v3"
)

// batchFlags は send / scan / watch で共通のフラグ
func batchFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "env",
			Usage: "環境変数ファイルパス",
			Value: ".env",
		},
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "デバッグログを出力",
		},
		&cli.StringFlag{
			Name:  "printer",
			Usage: "プリンタ名（省略時は設定値またはデフォルトプリンタ）",
		},
		&cli.StringFlag{
			Name:  "mode",
			Usage: "投入方式 (shell/device)",
		},
		&cli.DurationFlag{
			Name:  "delay",
			Usage: "ジョブ間の待機時間（例: 1500ms, 2s）",
			Value: 0 * time.Second,
		},
		&cli.StringFlag{
			Name:  "msg",
			Usage: "投入ごとに表示するメッセージ（$printer, $path, $document, $stem が使用可能）",
		},
		&cli.StringFlag{
			Name:  "report",
			Usage: "結果レポートをJSON形式で出力するファイルパス",
		},
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := &cli.Command{
		Name:  "printq",
		Usage: "Windows向けバッチ印刷ツール",
		Commands: []*cli.Command{
			{
				Name:  "printer",
				Usage: "プリンタ管理コマンド",
				Commands: []*cli.Command{
					{
						Name:   "list",
						Usage:  "登録済みプリンタ一覧を表示",
						Action: commands.PrinterListAction,
					},
					{
						Name:   "default",
						Usage:  "デフォルトプリンタ名を表示",
						Action: commands.PrinterDefaultAction,
					},
				},
			},
			{
				Name:      "send",
				Usage:     "指定したドキュメントをまとめて印刷",
				ArgsUsage: "PATH [PATH...]",
				Flags:     batchFlags(),
				Action:    commands.SendAction,
			},
			{
				Name:  "scan",
				Usage: "フォルダを再帰走査して見つかったドキュメントを印刷",
				Flags: append(batchFlags(),
					&cli.StringFlag{
						Name:  "dir",
						Usage: "走査対象のフォルダ",
						Value: ".",
					},
					&cli.StringSliceFlag{
						Name:  "ext",
						Usage: "対象とする拡張子（省略時は設定値、既定は .pdf のみ）",
					},
					&cli.BoolFlag{
						Name:  "dry-run",
						Usage: "印刷せずに対象ファイルの一覧だけ表示",
					},
				),
				Action: commands.ScanAction,
			},
			{
				Name:  "watch",
				Usage: "フォルダを定期スキャンして新着ドキュメントを印刷",
				Flags: append(batchFlags(),
					&cli.StringFlag{
						Name:     "dir",
						Usage:    "監視対象のフォルダ",
						Required: true,
					},
					&cli.StringSliceFlag{
						Name:  "ext",
						Usage: "対象とする拡張子（省略時は設定値、既定は .pdf のみ）",
					},
					&cli.StringFlag{
						Name:  "cron",
						Usage: "スキャン間隔（cron形式、例: @every 1m）",
						Value: "@every 1m",
					},
				),
				Action: commands.WatchAction,
			},
		},
	}

	if err := app.Run(ctx, os.Args); err != nil {
		log.Fatal(err)
	}
}
