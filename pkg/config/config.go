package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config はアプリケーション全体の設定を保持します
// プリンタ名や投入方式はプロセス全体の可変状態ではなく、
// ここで確定した値をバッチランナー構築時に明示的に渡します
type Config struct {
	// Printer は使用するプリンタ名（空の場合はデフォルトプリンタ）
	Printer string

	// Mode は投入方式（"shell" or "device"）
	Mode string

	// Delay はジョブ間の待機時間（スプールキュー保護用）
	Delay time.Duration

	// Exts はscan/watchが対象とする拡張子リスト
	Exts []string

	// Message は1件投入ごとに表示するメッセージテンプレート
	// $printer, $path, $document, $stem が展開されます
	Message string
}

// Load は環境変数または.envファイルから設定を読み込みます
func Load(envFilePath string) (*Config, error) {
	// .envファイルが存在する場合は読み込む
	if envFilePath != "" {
		if err := godotenv.Load(envFilePath); err != nil {
			// ファイルが存在しない場合はエラーとしない（環境変数のみで動作可能）
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to load .env file: %w", err)
			}
		}
	}

	cfg := &Config{
		Printer: getEnv("PRINTQ_PRINTER", ""),
		Mode:    getEnv("PRINTQ_MODE", "shell"),
		Delay:   time.Duration(getEnvAsInt("PRINTQ_DELAY_MS", 0)) * time.Millisecond,
		Exts:    parseExts(getEnv("PRINTQ_EXTS", ".pdf")),
		Message: getEnv("PRINTQ_MESSAGE", ""),
	}

	return cfg, nil
}

// parseExts はカンマ区切りの拡張子リストを正規化します（小文字化・先頭ドット補完）
func parseExts(raw string) []string {
	var exts []string
	for _, ext := range strings.Split(raw, ",") {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		exts = append(exts, ext)
	}
	return exts
}

// getEnv は環境変数を取得し、存在しない場合はデフォルト値を返します
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt は環境変数を整数として取得します
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
