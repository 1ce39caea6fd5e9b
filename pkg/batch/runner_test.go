package batch

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jinford/printq/pkg/document"
	"github.com/jinford/printq/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSpooler はテスト用のスプーラです
// 投入されたパスを記録し、failPaths に含まれるパスだけ失敗させます
type fakeSpooler struct {
	name      string
	submitted []string
	failPaths map[string]error
	closed    bool
}

func newFakeSpooler() *fakeSpooler {
	return &fakeSpooler{name: "FakePrinter", failPaths: map[string]error{}}
}

func (f *fakeSpooler) Name() string { return f.name }

func (f *fakeSpooler) Submit(ctx context.Context, doc *document.Document) (models.JobID, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	f.submitted = append(f.submitted, doc.Path)
	if err, ok := f.failPaths[doc.Path]; ok {
		return "", err
	}
	return models.JobID(fmt.Sprintf("job-%d", len(f.submitted))), nil
}

func (f *fakeSpooler) Close() error {
	f.closed = true
	return nil
}

// writeDoc はテスト用のダミーファイルを作成します
func writeDoc(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	return path
}

func TestRunMixedBatch(t *testing.T) {
	dir := t.TempDir()
	aPDF := writeDoc(t, dir, "a.pdf")
	missing := filepath.Join(dir, "missing.pdf")
	bJPG := writeDoc(t, dir, "b.jpg")

	sp := newFakeSpooler()
	runner := NewRunner(sp, Options{})

	report := runner.Run(context.Background(), []string{aPDF, missing, bJPG})

	// 入力と同じ順序で1件ずつ結果が残る
	require.Len(t, report.Outcomes, 3)
	assert.Equal(t, models.OutcomeSuccess, report.Outcomes[0].Status)
	assert.Equal(t, models.OutcomeNotFound, report.Outcomes[1].Status)
	assert.Equal(t, models.OutcomeSuccess, report.Outcomes[2].Status)

	assert.Equal(t, 2, report.Succeeded())
	assert.Equal(t, 1, report.Failed())
	assert.False(t, report.AllOK())

	// 失敗したパスはスプーラまで到達しない
	assert.Equal(t, []string{aPDF, bJPG}, sp.submitted)
}

func TestRunUnsupportedType(t *testing.T) {
	dir := t.TempDir()
	memo := writeDoc(t, dir, "memo.txt")

	sp := newFakeSpooler()
	runner := NewRunner(sp, Options{})

	report := runner.Run(context.Background(), []string{memo})

	require.Len(t, report.Outcomes, 1)
	assert.Equal(t, models.OutcomeUnsupported, report.Outcomes[0].Status)
	assert.Empty(t, sp.submitted)
}

func TestRunSubmissionFailure(t *testing.T) {
	dir := t.TempDir()
	aPDF := writeDoc(t, dir, "a.pdf")
	bPDF := writeDoc(t, dir, "b.pdf")

	sp := newFakeSpooler()
	sp.failPaths[aPDF] = errors.New("spooler rejected")
	runner := NewRunner(sp, Options{})

	report := runner.Run(context.Background(), []string{aPDF, bPDF})

	// 1件目が失敗しても2件目は投入される
	require.Len(t, report.Outcomes, 2)
	assert.Equal(t, models.OutcomeFailed, report.Outcomes[0].Status)
	assert.Contains(t, report.Outcomes[0].Error, "spooler rejected")
	assert.Equal(t, models.OutcomeSuccess, report.Outcomes[1].Status)
	assert.NotEmpty(t, report.Outcomes[1].JobID)
}

func TestRunEmptyBatch(t *testing.T) {
	sp := newFakeSpooler()
	runner := NewRunner(sp, Options{})

	report := runner.Run(context.Background(), nil)

	assert.Empty(t, report.Outcomes)
	assert.True(t, report.AllOK())
}

func TestRunCancelled(t *testing.T) {
	dir := t.TempDir()
	aPDF := writeDoc(t, dir, "a.pdf")
	bPDF := writeDoc(t, dir, "b.pdf")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sp := newFakeSpooler()
	runner := NewRunner(sp, Options{})

	report := runner.Run(ctx, []string{aPDF, bPDF})

	// キャンセル済みなら全件 skipped
	require.Len(t, report.Outcomes, 2)
	assert.Equal(t, models.OutcomeSkipped, report.Outcomes[0].Status)
	assert.Equal(t, models.OutcomeSkipped, report.Outcomes[1].Status)
	assert.Empty(t, sp.submitted)
}

func TestRunDelayBetweenJobs(t *testing.T) {
	dir := t.TempDir()
	aPDF := writeDoc(t, dir, "a.pdf")
	bPDF := writeDoc(t, dir, "b.pdf")

	sp := newFakeSpooler()
	runner := NewRunner(sp, Options{Delay: 10 * time.Millisecond})

	start := time.Now()
	report := runner.Run(context.Background(), []string{aPDF, bPDF})

	// 2件なので待機は1回だけ
	assert.True(t, report.AllOK())
	assert.GreaterOrEqual(t, time.Since(start), 10*time.Millisecond)
}

func TestRunMessageTemplate(t *testing.T) {
	dir := t.TempDir()
	aPDF := writeDoc(t, dir, "a.pdf")
	missing := filepath.Join(dir, "missing.pdf")

	var out bytes.Buffer
	sp := newFakeSpooler()
	runner := NewRunner(sp, Options{
		Message: "SENT $document TO $printer",
		Out:     &out,
	})

	runner.Run(context.Background(), []string{aPDF, missing})

	// メッセージは成功した分だけ
	assert.Equal(t, "SENT a.pdf TO FakePrinter\n", out.String())
}

func TestRunIdempotentResubmission(t *testing.T) {
	dir := t.TempDir()
	aPDF := writeDoc(t, dir, "a.pdf")

	sp := newFakeSpooler()
	runner := NewRunner(sp, Options{})

	runner.Run(context.Background(), []string{aPDF})
	runner.Run(context.Background(), []string{aPDF})

	// 重複排除はしない: 実行ごとに1パス1ジョブ
	assert.Equal(t, []string{aPDF, aPDF}, sp.submitted)
}
