package generator

import (
	"context"
	"errors"
	"image"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stickfight/animation"
	"stickfight/choreo"
	"stickfight/encoder"
	"stickfight/pose"
)

// fakeEncoder 记录调用参数并写一个占位文件
type fakeEncoder struct {
	frames int
	path   string
	fps    int
	err    error
}

func (f *fakeEncoder) Extension() string { return "mp4" }

func (f *fakeEncoder) Encode(_ context.Context, frames []*image.RGBA, path string, fps int) error {
	if len(frames) == 0 {
		return encoder.ErrEmptyAnimation
	}
	f.frames, f.path, f.fps = len(frames), path, fps
	if f.err != nil {
		return f.err
	}
	return os.WriteFile(path, []byte("video"), 0644)
}

func newTestGenerator(t *testing.T, enc encoder.Encoder, opts ...Option) (*Generator, string) {
	t.Helper()
	dir := t.TempDir()
	lib := pose.Default()
	opts = append([]Option{
		WithAssembler(animation.NewAssembler(lib, animation.WithCanvasSize(32, 32))),
		WithURLPrefix("/static/generated_videos"),
	}, opts...)
	return New(lib, enc, dir, opts...), dir
}

func TestGenerateSuccess(t *testing.T) {
	enc := &fakeEncoder{}
	g, dir := newTestGenerator(t, enc, WithFPS(15))

	res := g.Generate(context.Background(), "he threw a punch with his right hand")
	require.True(t, res.Success, res.Message)
	require.NoError(t, res.Err)

	assert.Equal(t, StateDone, res.State)
	assert.Equal(t, []string{pose.Neutral, pose.PunchRight, pose.Victory}, res.Sequence.PoseNames())
	assert.Equal(t, 30, res.Frames)
	assert.Equal(t, 30, enc.frames)
	assert.Equal(t, 15, enc.fps)

	assert.Regexp(t, regexp.MustCompile(`^animation_[0-9a-f]{8}\.mp4$`), res.Filename)
	assert.Equal(t, filepath.Join(dir, res.Filename), res.Path)
	assert.Equal(t, res.Path, enc.path)
	assert.Equal(t, "/static/generated_videos/"+res.Filename, res.VideoURL)
	assert.FileExists(t, res.Path)

	generated, failed := g.Stats()
	assert.Equal(t, int64(1), generated)
	assert.Equal(t, int64(0), failed)
}

func TestGenerateEmptyPrompt(t *testing.T) {
	g, _ := newTestGenerator(t, &fakeEncoder{})

	res := g.Generate(context.Background(), "")
	require.True(t, res.Success)
	assert.Equal(t, 20, res.Frames)
}

func TestGenerateUniqueFilenames(t *testing.T) {
	g, _ := newTestGenerator(t, &fakeEncoder{})

	seen := map[string]bool{}
	for i := 0; i < 5; i++ {
		res := g.Generate(context.Background(), "kick")
		require.True(t, res.Success)
		assert.False(t, seen[res.Filename])
		seen[res.Filename] = true
	}
}

func TestGenerateUnknownPose(t *testing.T) {
	enc := &fakeEncoder{}
	g, _ := newTestGenerator(t, enc)

	res := g.GenerateSequence(context.Background(), choreo.Sequence{
		{Pose: pose.Neutral, Frames: 15},
		{Pose: "spin_kick", Frames: 8},
	})
	assert.False(t, res.Success)
	assert.Equal(t, StateFailed, res.State)
	assert.True(t, errors.Is(res.Err, pose.ErrUnknownPose))
	assert.Contains(t, res.Message, "spin_kick")
	assert.Empty(t, enc.path)

	_, failed := g.Stats()
	assert.Equal(t, int64(1), failed)
}

func TestGenerateEmptyAnimation(t *testing.T) {
	g, dir := newTestGenerator(t, &fakeEncoder{})

	res := g.GenerateSequence(context.Background(), choreo.Sequence{{Pose: pose.Neutral, Frames: 15}})
	assert.False(t, res.Success)
	assert.True(t, errors.Is(res.Err, encoder.ErrEmptyAnimation))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestGenerateEncodingFailure(t *testing.T) {
	ioErr := &encoder.EncodingIOError{Path: "x", Op: "write", Err: errors.New("disk full")}
	g, _ := newTestGenerator(t, &fakeEncoder{err: ioErr})

	res := g.Generate(context.Background(), "kick")
	assert.False(t, res.Success)
	assert.Equal(t, StateFailed, res.State)

	var target *encoder.EncodingIOError
	assert.True(t, errors.As(res.Err, &target))
	assert.Contains(t, res.Message, "disk full")
	assert.Empty(t, res.VideoURL)
}

func TestGenerateTokenFailure(t *testing.T) {
	g, _ := newTestGenerator(t, &fakeEncoder{}, WithTokenSource(func() (string, error) {
		return "", errors.New("no entropy")
	}))

	res := g.Generate(context.Background(), "kick")
	assert.False(t, res.Success)
	assert.Contains(t, res.Message, "no entropy")
}

func TestGenerateWithGIFEncoder(t *testing.T) {
	enc, err := encoder.Create(encoder.FormatGIF, encoder.Options{})
	require.NoError(t, err)
	g, _ := newTestGenerator(t, enc)

	res := g.Generate(context.Background(), "punch left")
	require.True(t, res.Success, res.Message)
	assert.Regexp(t, `\.gif$`, res.Filename)
	assert.FileExists(t, res.Path)
}

func TestRandomToken(t *testing.T) {
	token, err := randomToken()
	require.NoError(t, err)
	assert.Regexp(t, `^[0-9a-f]{8}$`, token)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "RECEIVED", StateReceived.String())
	assert.Equal(t, "DONE", StateDone.String())
	assert.Equal(t, "FAILED", StateFailed.String())
	assert.Equal(t, "UNKNOWN", State(42).String())
}
