package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/jinford/printq/pkg/spooler"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v3"
)

// PrinterListAction はOSに登録されたプリンタを一覧表示するコマンドのアクション
func PrinterListAction(ctx context.Context, cmd *cli.Command) error {
	printers, err := spooler.List()
	if err != nil {
		return fmt.Errorf("プリンタの列挙に失敗: %w", err)
	}

	if len(printers) == 0 {
		fmt.Println("プリンタが登録されていません")
		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("プリンタ", "デフォルト")

	for _, p := range printers {
		mark := ""
		if p.IsDefault {
			mark = "*"
		}
		table.Append(p.Name, mark)
	}

	table.Render()
	return nil
}

// PrinterDefaultAction はデフォルトプリンタ名を表示するコマンドのアクション
func PrinterDefaultAction(ctx context.Context, cmd *cli.Command) error {
	name, err := spooler.DefaultName()
	if err != nil {
		return fmt.Errorf("デフォルトプリンタの取得に失敗: %w", err)
	}

	fmt.Println(name)
	return nil
}
