package document

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

// CollectDir はルート以下を再帰的に走査し、拡張子が一致する
// ファイルパスを辞書順で返します
// exts が空の場合はサポートされている全種別を対象とします
func CollectDir(root string, exts []string) ([]string, error) {
	allowed := make(map[string]struct{}, len(exts))
	for _, ext := range exts {
		allowed[strings.ToLower(ext)] = struct{}{}
	}

	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if len(allowed) == 0 {
			if !IsSupported(path) {
				return nil
			}
		} else if _, ok := allowed[ext]; !ok {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("ディレクトリの走査に失敗 (%s): %w", root, err)
	}

	return paths, nil
}
