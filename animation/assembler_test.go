package animation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stickfight/choreo"
	"stickfight/pose"
	"stickfight/render"
)

func TestAssembleFrameCount(t *testing.T) {
	a := NewAssembler(pose.Default())

	frames, err := a.Assemble(choreo.Sequence{
		{Pose: pose.Neutral, Frames: 15},
		{Pose: pose.Victory, Frames: 20},
	})
	require.NoError(t, err)
	assert.Len(t, frames, 20)

	for _, f := range frames {
		assert.Equal(t, render.DefaultWidth, f.Bounds().Dx())
		assert.Equal(t, render.DefaultHeight, f.Bounds().Dy())
	}
}

func TestAssembleInterpretedSequence(t *testing.T) {
	a := NewAssembler(pose.Default(), WithCanvasSize(120, 120))
	seq := choreo.Interpret("a punch and a kick, right and left")

	frames, err := a.Assemble(seq)
	require.NoError(t, err)
	assert.Len(t, frames, seq.TotalFrames())
	assert.Len(t, frames, 10+10+12+20)
}

func TestAssembleAllocatesFreshCanvases(t *testing.T) {
	a := NewAssembler(pose.Default(), WithCanvasSize(64, 64))
	frames, err := a.Assemble(choreo.Interpret(""))
	require.NoError(t, err)
	require.Len(t, frames, 20)
	assert.NotSame(t, frames[0], frames[1])
}

func TestPosesTrackTransitions(t *testing.T) {
	lib := pose.Default()
	a := NewAssembler(lib)

	seq := choreo.Sequence{
		{Pose: pose.Neutral, Frames: 15},
		{Pose: pose.PunchRight, Frames: 10},
		{Pose: pose.Victory, Frames: 20},
	}
	track, err := a.Poses(seq)
	require.NoError(t, err)
	require.Len(t, track, 30)

	neutral, _ := lib.Get(pose.Neutral)
	punch, _ := lib.Get(pose.PunchRight)
	victory, _ := lib.Get(pose.Victory)

	assert.Equal(t, neutral, track[0])
	assert.Equal(t, punch, track[9])
	assert.Equal(t, punch, track[10])
	assert.Equal(t, victory, track[29])
}

func TestAssembleUnknownPose(t *testing.T) {
	a := NewAssembler(pose.Default())

	_, err := a.Assemble(choreo.Sequence{
		{Pose: pose.Neutral, Frames: 15},
		{Pose: "backflip", Frames: 5},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, pose.ErrUnknownPose))

	var unknown *pose.UnknownPoseError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "backflip", unknown.Name)
}

func TestAssembleSingleStepHasNoFrames(t *testing.T) {
	a := NewAssembler(pose.Default())
	frames, err := a.Assemble(choreo.Sequence{{Pose: pose.Neutral, Frames: 15}})
	require.NoError(t, err)
	assert.Empty(t, frames)
}

func TestAssembleInvalidStep(t *testing.T) {
	a := NewAssembler(pose.Default())
	_, err := a.Assemble(choreo.Sequence{
		{Pose: pose.Neutral, Frames: 15},
		{Pose: pose.Victory, Frames: 0},
	})
	assert.True(t, errors.Is(err, choreo.ErrInvalidStep))
}
