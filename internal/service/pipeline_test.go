package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/vidsum/internal/domain"
	"github.com/bnema/vidsum/internal/port/mocks"
)

const mib = 1024 * 1024

type pipelineFixture struct {
	*stageFixture
	segmenter   *mocks.AudioSegmenterMock
	transcriber *mocks.TranscriberMock
	summarizer  *mocks.SummarizerMock
	pipeline    *Pipeline
}

func newPipelineFixture(t *testing.T) *pipelineFixture {
	t.Helper()
	sf := newStageFixture(t)
	f := &pipelineFixture{
		stageFixture: sf,
		segmenter:    mocks.NewAudioSegmenterMock(t),
		transcriber:  mocks.NewTranscriberMock(t),
		summarizer:   mocks.NewSummarizerMock(t),
	}
	f.pipeline = NewPipeline(sf.stage, f.segmenter, f.transcriber, f.summarizer, sf.store, sf.registry,
		PipelineConfig{ProjectRoot: sf.root})
	return f
}

// expectDownload makes the fetch engine produce <audioDir>/<jobID>/<id>.m4a
// of size.
func (f *pipelineFixture) expectDownload(t *testing.T, jobID int64, id string, size int64) string {
	t.Helper()
	dir := f.jobAudioDir(jobID)
	out := filepath.Join(dir, id+".m4a")
	f.probe.EXPECT().Available().Return(nil).Once()
	f.fetcher.EXPECT().
		FetchAudio(mock.Anything, "https://www.youtube.com/watch?v="+id, dir, mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, _ string, progress domain.ProgressFunc) (string, error) {
			progress(domain.DownloadProgress{Status: domain.DownloadEventDownloading, DownloadedBytes: size / 2, TotalBytes: size})
			progress(domain.DownloadProgress{Status: domain.DownloadEventFinished, DownloadedBytes: size, TotalBytes: size})
			writeFile(t, out, size)
			return out, nil
		}).Once()
	return out
}

func listDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}

func TestPipeline_Run_EndToEnd(t *testing.T) {
	f := newPipelineFixture(t)
	v := f.createVideo(t, "https://example.com/watch?v=ABCDEFGHIJK")
	job := domain.NewJob(v.ID, v.URL, domain.JobKindPipeline)
	require.True(t, f.registry.Admit(v.ID))

	original := f.expectDownload(t, v.ID, "ABCDEFGHIJK", 30*mib)
	small := filepath.Join(f.jobAudioDir(v.ID), "ABCDEFGHIJK.small.m4a")

	f.segmenter.EXPECT().Prepare(mock.Anything, original).
		RunAndReturn(func(_ context.Context, in string) []string {
			stored := mustGet(t, f.store, v.ID)
			assert.Equal(t, domain.AssetStatusReady, stored.AudioStatus)
			assert.Equal(t, fmt.Sprintf("/audio/%d/ABCDEFGHIJK.m4a", v.ID), stored.AudioPath)
			assert.Equal(t, domain.AssetStatusPending, stored.TranscribeStatus)
			assert.Equal(t, domain.JobStatusTranscribing, f.registry.Get(v.ID).Status)

			writeFile(t, small, 10*mib)
			return []string{small}
		}).Once()
	f.transcriber.EXPECT().Transcribe(mock.Anything, small).Return("hello world", nil).Once()
	f.summarizer.EXPECT().Summarize(mock.Anything, "hello world", "").
		RunAndReturn(func(_ context.Context, _ string, _ string) (string, error) {
			assert.Equal(t, domain.JobStatusSummarizing, f.registry.Get(v.ID).Status)
			return "# Summary\n- greeting", nil
		}).Once()

	err := f.pipeline.Run(context.Background(), job)

	require.NoError(t, err)
	got := mustGet(t, f.store, v.ID)
	assert.Equal(t, domain.AssetStatusReady, got.TranscribeStatus)
	assert.Equal(t, "hello world", got.Transcript)
	assert.Equal(t, "# Summary\n- greeting", got.Summary)
	assert.Equal(t, domain.AssetStatusNone, got.AudioStatus)
	assert.Empty(t, got.AudioPath)
	assert.Equal(t, v.Title, got.Title)

	assert.Empty(t, listDir(t, f.audioDir))
	assert.Equal(t, domain.JobState{Status: domain.JobStatusFinished, Progress: 100}, f.registry.Get(v.ID))
}

func TestPipeline_Run_PartialTranscription(t *testing.T) {
	f := newPipelineFixture(t)
	v := f.createVideo(t, "https://youtu.be/ABCDEFGHIJK")
	original := f.expectDownload(t, v.ID, "ABCDEFGHIJK", 60*mib)

	dir := f.jobAudioDir(v.ID)
	parts := []string{
		filepath.Join(dir, "ABCDEFGHIJK.small.part-000.m4a"),
		filepath.Join(dir, "ABCDEFGHIJK.small.part-001.m4a"),
		filepath.Join(dir, "ABCDEFGHIJK.small.part-002.m4a"),
	}
	f.segmenter.EXPECT().Prepare(mock.Anything, original).
		RunAndReturn(func(context.Context, string) []string {
			writeFile(t, filepath.Join(dir, "ABCDEFGHIJK.small.m4a"), 40*mib)
			for _, p := range parts {
				writeFile(t, p, mib)
			}
			return parts
		}).Once()
	f.transcriber.EXPECT().Transcribe(mock.Anything, parts[0]).Return("", nil).Once()
	f.transcriber.EXPECT().Transcribe(mock.Anything, parts[1]).Return("middle part", nil).Once()
	f.transcriber.EXPECT().Transcribe(mock.Anything, parts[2]).Return("", errors.New("openai transcribe: http 500")).Once()
	f.summarizer.EXPECT().Summarize(mock.Anything, "middle part", "").Return("# Summary", nil).Once()

	err := f.pipeline.Run(context.Background(), domain.NewJob(v.ID, v.URL, ""))

	require.NoError(t, err)
	got := mustGet(t, f.store, v.ID)
	assert.Equal(t, "middle part", got.Transcript)
	assert.Equal(t, domain.AssetStatusReady, got.TranscribeStatus)
	assert.Empty(t, listDir(t, f.audioDir))
}

func TestPipeline_Run_JoinsChunksInOrder(t *testing.T) {
	f := newPipelineFixture(t)
	v := f.createVideo(t, "https://youtu.be/ABCDEFGHIJK")
	original := f.expectDownload(t, v.ID, "ABCDEFGHIJK", mib)

	f.segmenter.EXPECT().Prepare(mock.Anything, original).Return([]string{"a", "b"}).Once()
	f.transcriber.EXPECT().Transcribe(mock.Anything, "a").Return(" first ", nil).Once()
	f.transcriber.EXPECT().Transcribe(mock.Anything, "b").Return("second", nil).Once()
	f.summarizer.EXPECT().Summarize(mock.Anything, "first\n\nsecond", "").Return("", nil).Once()

	require.NoError(t, f.pipeline.Run(context.Background(), domain.NewJob(v.ID, v.URL, "")))

	got := mustGet(t, f.store, v.ID)
	assert.Equal(t, "first\n\nsecond", got.Transcript)
	assert.Empty(t, got.Summary)
}

func TestPipeline_Run_AllChunksEmptyHaltsAndKeepsAudio(t *testing.T) {
	f := newPipelineFixture(t)
	v := f.createVideo(t, "https://youtu.be/ABCDEFGHIJK")
	original := f.expectDownload(t, v.ID, "ABCDEFGHIJK", mib)

	f.segmenter.EXPECT().Prepare(mock.Anything, original).Return([]string{original}).Once()
	f.transcriber.EXPECT().Transcribe(mock.Anything, original).Return("", nil).Once()

	err := f.pipeline.Run(context.Background(), domain.NewJob(v.ID, v.URL, ""))

	assert.ErrorIs(t, err, domain.ErrTranscriptionEmpty)
	got := mustGet(t, f.store, v.ID)
	assert.Equal(t, domain.AssetStatusFailed, got.TranscribeStatus)
	assert.Equal(t, domain.AssetStatusReady, got.AudioStatus)
	assert.Equal(t, fmt.Sprintf("/audio/%d/ABCDEFGHIJK.m4a", v.ID), got.AudioPath)
	assert.Empty(t, got.Summary)
	assert.FileExists(t, original)

	st := f.registry.Get(v.ID)
	assert.Equal(t, domain.JobStatusError, st.Status)
	assert.Contains(t, st.Error, "transcription empty")
}

func TestPipeline_Run_SameUpstreamVideoKeepsOtherRecordsAudio(t *testing.T) {
	f := newPipelineFixture(t)
	a := f.createVideo(t, "https://youtu.be/ABCDEFGHIJK")
	b := f.createVideo(t, "https://www.youtube.com/watch?v=ABCDEFGHIJK&t=5")
	ctx := context.Background()

	// b's transcription comes back empty, so its audio is kept for a retry.
	kept := f.expectDownload(t, b.ID, "ABCDEFGHIJK", mib)
	f.segmenter.EXPECT().Prepare(mock.Anything, kept).Return([]string{kept}).Once()
	f.transcriber.EXPECT().Transcribe(mock.Anything, kept).Return("", nil).Once()
	require.ErrorIs(t, f.pipeline.Run(ctx, domain.NewJob(b.ID, b.URL, "")), domain.ErrTranscriptionEmpty)

	// a then completes and cleans up after itself.
	done := f.expectDownload(t, a.ID, "ABCDEFGHIJK", mib)
	require.NotEqual(t, kept, done)
	f.segmenter.EXPECT().Prepare(mock.Anything, done).Return([]string{done}).Once()
	f.transcriber.EXPECT().Transcribe(mock.Anything, done).Return("text", nil).Once()
	f.summarizer.EXPECT().Summarize(mock.Anything, "text", "").Return("# Summary", nil).Once()
	require.NoError(t, f.pipeline.Run(ctx, domain.NewJob(a.ID, a.URL, "")))

	assert.FileExists(t, kept)
	assert.NoFileExists(t, done)
	assert.Equal(t, []string{strconv.FormatInt(b.ID, 10)}, listDir(t, f.audioDir))

	gotB := mustGet(t, f.store, b.ID)
	assert.Equal(t, domain.AssetStatusReady, gotB.AudioStatus)
	assert.Equal(t, fmt.Sprintf("/audio/%d/ABCDEFGHIJK.m4a", b.ID), gotB.AudioPath)
	gotA := mustGet(t, f.store, a.ID)
	assert.Equal(t, domain.AssetStatusNone, gotA.AudioStatus)
	assert.Empty(t, gotA.AudioPath)
}

func TestPipeline_Run_AudioPersistFailureMarksAudioFailed(t *testing.T) {
	root := t.TempDir()
	audioDir := filepath.Join(root, "audio")
	store := mocks.NewVideoStoreMock(t)
	fetcher := mocks.NewAudioFetcherMock(t)
	decoder := mocks.NewDecoderProbeMock(t)
	registry := NewStatusRegistry(nil)
	stage := NewDownloadStage(fetcher, decoder, store, registry, audioDir, root)
	p := NewPipeline(stage, mocks.NewAudioSegmenterMock(t), mocks.NewTranscriberMock(t), mocks.NewSummarizerMock(t),
		store, registry, PipelineConfig{ProjectRoot: root})

	v := domain.NewVideo("https://youtu.be/ABCDEFGHIJK", "")
	v.ID = 5
	out := filepath.Join(audioDir, "5", "ABCDEFGHIJK.m4a")
	diskFull := errors.New("database or disk is full")

	store.EXPECT().Get(mock.Anything, int64(5)).Return(v, nil).Twice()
	store.EXPECT().UpdateAudioStatus(mock.Anything, int64(5), domain.AssetStatusPending).Return(nil).Once()
	decoder.EXPECT().Available().Return(nil).Once()
	fetcher.EXPECT().FetchAudio(mock.Anything, mock.Anything, filepath.Dir(out), mock.Anything).
		RunAndReturn(func(context.Context, string, string, domain.ProgressFunc) (string, error) {
			writeFile(t, out, 16)
			return out, nil
		}).Once()
	store.EXPECT().UpdateAudio(mock.Anything, int64(5), domain.AssetStatusReady, "/audio/5/ABCDEFGHIJK.m4a").Return(diskFull).Once()
	store.EXPECT().UpdateAudioStatus(mock.Anything, int64(5), domain.AssetStatusFailed).Return(nil).Once()

	err := p.Run(context.Background(), domain.NewJob(v.ID, v.URL, ""))

	assert.ErrorIs(t, err, diskFull)
	st := registry.Get(v.ID)
	assert.Equal(t, domain.JobStatusError, st.Status)
	assert.Contains(t, st.Error, "persist audio path")
}

func TestPipeline_Run_DownloadFailure(t *testing.T) {
	f := newPipelineFixture(t)
	v := f.createVideo(t, "https://youtu.be/ABCDEFGHIJK")

	f.probe.EXPECT().Available().Return(nil).Once()
	f.fetcher.EXPECT().FetchAudio(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("", errors.New("ERROR: Video unavailable")).Once()

	err := f.pipeline.Run(context.Background(), domain.NewJob(v.ID, v.URL, ""))

	var dlErr *domain.DownloadError
	require.True(t, errors.As(err, &dlErr))
	got := mustGet(t, f.store, v.ID)
	assert.Equal(t, domain.AssetStatusFailed, got.AudioStatus)
	assert.Equal(t, domain.AssetStatusNone, got.TranscribeStatus)

	st := f.registry.Get(v.ID)
	assert.Equal(t, domain.JobStatusError, st.Status)
	assert.Contains(t, st.Error, "Video unavailable")
}

func TestPipeline_Run_SummaryFailureIsNotFatal(t *testing.T) {
	f := newPipelineFixture(t)
	v := f.createVideo(t, "https://youtu.be/ABCDEFGHIJK")
	original := f.expectDownload(t, v.ID, "ABCDEFGHIJK", mib)

	f.segmenter.EXPECT().Prepare(mock.Anything, original).Return([]string{original}).Once()
	f.transcriber.EXPECT().Transcribe(mock.Anything, original).Return("text", nil).Once()
	f.summarizer.EXPECT().Summarize(mock.Anything, "text", "").Return("", errors.New("openai summarize: http 429")).Once()

	err := f.pipeline.Run(context.Background(), domain.NewJob(v.ID, v.URL, ""))

	require.NoError(t, err)
	got := mustGet(t, f.store, v.ID)
	assert.Empty(t, got.Summary)
	assert.Equal(t, domain.AssetStatusReady, got.TranscribeStatus)
	assert.Equal(t, domain.AssetStatusNone, got.AudioStatus)
	assert.Equal(t, domain.JobStatusFinished, f.registry.Get(v.ID).Status)
}

func TestPipeline_Run_DownloadOnly(t *testing.T) {
	f := newPipelineFixture(t)
	v := f.createVideo(t, "https://youtu.be/ABCDEFGHIJK")
	original := f.expectDownload(t, v.ID, "ABCDEFGHIJK", mib)

	err := f.pipeline.Run(context.Background(), domain.NewJob(v.ID, v.URL, domain.JobKindDownload))

	require.NoError(t, err)
	assert.Equal(t, domain.JobState{Status: domain.JobStatusFinished, Progress: 100, FilePath: original}, f.registry.Get(v.ID))
	got := mustGet(t, f.store, v.ID)
	assert.Equal(t, domain.AssetStatusReady, got.AudioStatus)
	assert.FileExists(t, original)
}

func TestPipeline_Run_MissingVideo(t *testing.T) {
	f := newPipelineFixture(t)

	err := f.pipeline.Run(context.Background(), domain.NewJob(99, "https://youtu.be/ABCDEFGHIJK", ""))

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, domain.JobStatusError, f.registry.Get(99).Status)
}

func TestPipeline_Cleanup(t *testing.T) {
	f := newPipelineFixture(t)
	v := f.createVideo(t, "https://youtu.be/ABCDEFGHIJK")
	ctx := context.Background()

	original := filepath.Join(f.audioDir, "ABCDEFGHIJK.m4a")
	for _, name := range []string{
		"ABCDEFGHIJK.m4a",
		"ABCDEFGHIJK.small.m4a",
		"ABCDEFGHIJK.small.part-000.m4a",
		"ABCDEFGHIJK.small.part-001.m4a",
		"ABCDEFGHIJK.webm.part",
		"ZZZZZZZZZZZ.m4a",
		"ABCDEFGHIJKL.m4a",
	} {
		writeFile(t, filepath.Join(f.audioDir, name), 1)
	}
	require.NoError(t, f.store.UpdateAudio(ctx, v.ID, domain.AssetStatusReady, "/audio/ABCDEFGHIJK.m4a"))
	require.NoError(t, f.store.UpdateSummary(ctx, v.ID, "keep me"))

	res := f.pipeline.Cleanup(ctx, v.ID, original)

	assert.True(t, res.OK())
	assert.Len(t, res.Removed, 5)
	assert.Equal(t, []string{"ABCDEFGHIJKL.m4a", "ZZZZZZZZZZZ.m4a"}, listDir(t, f.audioDir))

	got := mustGet(t, f.store, v.ID)
	assert.Empty(t, got.AudioPath)
	assert.Equal(t, domain.AssetStatusNone, got.AudioStatus)
	assert.Equal(t, "keep me", got.Summary)
}

func TestPipeline_Cleanup_RemovesEmptiedJobDirectory(t *testing.T) {
	f := newPipelineFixture(t)
	v := f.createVideo(t, "https://youtu.be/ABCDEFGHIJK")
	dir := f.jobAudioDir(v.ID)
	original := filepath.Join(dir, "ABCDEFGHIJK.m4a")
	writeFile(t, original, 1)
	writeFile(t, filepath.Join(dir, "ABCDEFGHIJK.small.m4a"), 1)

	res := f.pipeline.Cleanup(context.Background(), v.ID, original)

	assert.True(t, res.OK())
	assert.Len(t, res.Removed, 2)
	assert.NoDirExists(t, dir)
}

func TestPipeline_Cleanup_ResetsEvenWhenDirectoryIsGone(t *testing.T) {
	f := newPipelineFixture(t)
	v := f.createVideo(t, "https://youtu.be/ABCDEFGHIJK")
	ctx := context.Background()
	require.NoError(t, f.store.UpdateAudio(ctx, v.ID, domain.AssetStatusReady, "/gone/ABCDEFGHIJK.m4a"))

	res := f.pipeline.Cleanup(ctx, v.ID, filepath.Join(f.root, "gone", "ABCDEFGHIJK.m4a"))

	assert.False(t, res.OK())
	got := mustGet(t, f.store, v.ID)
	assert.Empty(t, got.AudioPath)
	assert.Equal(t, domain.AssetStatusNone, got.AudioStatus)
}
