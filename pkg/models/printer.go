package models

// PrinterInfo はOSに登録されたプリンタの基本情報を表します
type PrinterInfo struct {
	Name      string `json:"name"`
	IsDefault bool   `json:"isDefault"`
}
