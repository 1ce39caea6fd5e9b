package models

import "time"

// BatchReport は1回のバッチ実行の結果を表します
// Outcomes は入力パスと同じ順序で1件ずつ記録されます
type BatchReport struct {
	Printer   string    `json:"printer"`
	StartedAt time.Time `json:"startedAt"`
	Outcomes  []Outcome `json:"outcomes"`
}

// NewBatchReport は指定プリンタ向けの空のレポートを作成します
func NewBatchReport(printer string) *BatchReport {
	return &BatchReport{
		Printer:   printer,
		StartedAt: time.Now(),
	}
}

// Add は結果を1件追記します
func (r *BatchReport) Add(o Outcome) {
	r.Outcomes = append(r.Outcomes, o)
}

// Succeeded は受け付けられたジョブ数を返します
func (r *BatchReport) Succeeded() int {
	count := 0
	for i := range r.Outcomes {
		if r.Outcomes[i].IsSuccess() {
			count++
		}
	}
	return count
}

// Failed は失敗（スキップ含む）件数を返します
func (r *BatchReport) Failed() int {
	return len(r.Outcomes) - r.Succeeded()
}

// AllOK は全件受け付けられたかどうかを返します
func (r *BatchReport) AllOK() bool {
	return r.Failed() == 0
}
