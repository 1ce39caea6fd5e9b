package batch

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchJobRunOnce(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "a.pdf")
	writeDoc(t, dir, "b.pdf")
	writeDoc(t, dir, "skip.txt")

	sp := newFakeSpooler()
	runner := NewRunner(sp, Options{})
	job := NewWatchJob(&WatchConfig{Dir: dir, Exts: []string{".pdf"}}, runner, nil)

	require.NoError(t, job.RunOnce(context.Background()))

	assert.Equal(t, []string{
		filepath.Join(dir, "a.pdf"),
		filepath.Join(dir, "b.pdf"),
	}, sp.submitted)
}

func TestWatchJobSkipsSeenFiles(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "a.pdf")

	sp := newFakeSpooler()
	runner := NewRunner(sp, Options{})
	job := NewWatchJob(&WatchConfig{Dir: dir, Exts: []string{".pdf"}}, runner, nil)

	require.NoError(t, job.RunOnce(context.Background()))
	require.NoError(t, job.RunOnce(context.Background()))

	// 2周目は新着なし
	assert.Len(t, sp.submitted, 1)

	// 新着だけが追加で投入される
	writeDoc(t, dir, "b.pdf")
	require.NoError(t, job.RunOnce(context.Background()))
	assert.Len(t, sp.submitted, 2)
}

func TestWatchJobMissingDir(t *testing.T) {
	sp := newFakeSpooler()
	runner := NewRunner(sp, Options{})
	job := NewWatchJob(&WatchConfig{Dir: filepath.Join(t.TempDir(), "nope")}, runner, nil)

	assert.Error(t, job.RunOnce(context.Background()))
}

func TestWatchJobStartStop(t *testing.T) {
	dir := t.TempDir()
	sp := newFakeSpooler()
	runner := NewRunner(sp, Options{})
	job := NewWatchJob(&WatchConfig{Dir: dir, CronSchedule: "@every 1h"}, runner, nil)

	require.NoError(t, job.Start())
	job.Stop()
}

func TestWatchJobBadCronSchedule(t *testing.T) {
	sp := newFakeSpooler()
	runner := NewRunner(sp, Options{})
	job := NewWatchJob(&WatchConfig{Dir: t.TempDir(), CronSchedule: "not a cron"}, runner, nil)

	assert.Error(t, job.Start())
}
