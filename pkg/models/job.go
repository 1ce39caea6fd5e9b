package models

import (
	"time"

	"github.com/google/uuid"
)

// JobID は投入済み印刷ジョブの相関IDを表します
// シェル動詞経由の投入ではOS側のジョブIDが取得できないため、
// クライアント側で生成したUUIDを相関IDとして使います
type JobID string

// NewJobID は新しい相関IDを生成します
func NewJobID() JobID {
	return JobID(uuid.NewString())
}

// OutcomeStatus は1ドキュメントの投入結果の種別を表します
type OutcomeStatus string

const (
	OutcomeSuccess     OutcomeStatus = "success"
	OutcomeNotFound    OutcomeStatus = "not_found"
	OutcomeUnsupported OutcomeStatus = "unsupported_type"
	OutcomeFailed      OutcomeStatus = "submission_failed"
	OutcomeSkipped     OutcomeStatus = "skipped"
)

// Outcome は1ドキュメントの投入結果を表します
// Status が success の場合、OSがジョブを受け付けたことを意味します
// （物理的な印刷完了までは追跡しません）
type Outcome struct {
	Path        string        `json:"path"`
	Status      OutcomeStatus `json:"status"`
	JobID       JobID         `json:"jobID,omitempty"`
	Error       string        `json:"error,omitempty"`
	SubmittedAt time.Time     `json:"submittedAt"`
}

// IsSuccess は投入が受け付けられたかどうかを返します
func (o *Outcome) IsSuccess() bool {
	return o.Status == OutcomeSuccess
}

// IsSkipped はキャンセルにより未投入のまま終わったかどうかを返します
func (o *Outcome) IsSkipped() bool {
	return o.Status == OutcomeSkipped
}
