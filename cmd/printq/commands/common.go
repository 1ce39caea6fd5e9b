package commands

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jinford/printq/internal/platform/logger"
	"github.com/jinford/printq/pkg/config"
	"github.com/jinford/printq/pkg/spooler"
	"github.com/urfave/cli/v3"
)

// AppContext はコマンド実行に必要な共通コンテキストを保持する
type AppContext struct {
	Config *config.Config
	Logger *slog.Logger
}

// NewAppContext は設定ファイルを読み込み、ロガーを初期化して AppContext を作成する
func NewAppContext(envFile string, verbose bool) (*AppContext, error) {
	// 設定の読み込み
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, fmt.Errorf("設定の読み込みに失敗: %w", err)
	}

	// ロガーの初期化（platform層を使用）
	logCfg := logger.DefaultConfig()
	if verbose {
		logCfg.Level = slog.LevelDebug
	}
	appLogger := logger.New(logCfg)

	return &AppContext{
		Config: cfg,
		Logger: appLogger,
	}, nil
}

// OpenSpooler はフラグと設定からプリンタへの接続を開く
// フラグが指定されていればフラグ、なければ設定値を使う
func (ac *AppContext) OpenSpooler(cmd *cli.Command) (spooler.Spooler, error) {
	name := cmd.String("printer")
	if name == "" {
		name = ac.Config.Printer
	}

	modeStr := cmd.String("mode")
	if modeStr == "" {
		modeStr = ac.Config.Mode
	}
	mode, err := spooler.ParseMode(modeStr)
	if err != nil {
		return nil, err
	}

	sp, err := spooler.New(name, mode)
	if err != nil {
		return nil, fmt.Errorf("スプーラのオープンに失敗: %w", err)
	}
	return sp, nil
}

// delayFor はジョブ間の待機時間を決める（フラグ優先）
func (ac *AppContext) delayFor(cmd *cli.Command) time.Duration {
	if cmd.IsSet("delay") {
		return cmd.Duration("delay")
	}
	return ac.Config.Delay
}

// messageFor はメッセージテンプレートを決める（フラグ優先）
func (ac *AppContext) messageFor(cmd *cli.Command) string {
	if cmd.IsSet("msg") {
		return cmd.String("msg")
	}
	return ac.Config.Message
}

// extsFor はscan/watchの対象拡張子を決める（フラグ優先）
func (ac *AppContext) extsFor(cmd *cli.Command) []string {
	if exts := cmd.StringSlice("ext"); len(exts) > 0 {
		return normalizeExts(exts)
	}
	return ac.Config.Exts
}

// normalizeExts は拡張子指定を小文字・先頭ドット付きに揃える
func normalizeExts(exts []string) []string {
	normalized := make([]string, 0, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if ext[0] != '.' {
			ext = "." + ext
		}
		normalized = append(normalized, ext)
	}
	return normalized
}
