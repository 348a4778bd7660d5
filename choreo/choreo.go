// Package choreo 把自由文本的打斗描述转换为姿势序列
package choreo

import (
	"errors"
	"fmt"
	"strings"

	"stickfight/pose"
)

// 每个动作过渡所占的帧数
const (
	NeutralFrames = 15
	PunchFrames   = 10
	KickFrames    = 12
	VictoryFrames = 20
)

// ErrInvalidStep 序列中存在不合法的步骤
var ErrInvalidStep = errors.New("无效的编排步骤")

// Step 编排步骤：目标姿势以及进入该姿势的过渡帧数
type Step struct {
	Pose   string `json:"pose"`
	Frames int    `json:"frames"`
}

// Sequence 有序的编排步骤
type Sequence []Step

// Interpret 按关键字顺序扫描描述文本，生成姿势序列
// 空文本或无匹配时返回 [neutral, victory]
func Interpret(text string) Sequence {
	prompt := strings.ToLower(text)
	seq := Sequence{{Pose: pose.Neutral, Frames: NeutralFrames}}

	if strings.Contains(prompt, "punch") {
		if strings.Contains(prompt, "right") {
			seq = append(seq, Step{Pose: pose.PunchRight, Frames: PunchFrames})
		}
		if strings.Contains(prompt, "left") {
			seq = append(seq, Step{Pose: pose.PunchLeft, Frames: PunchFrames})
		}
	}

	if strings.Contains(prompt, "kick") {
		seq = append(seq, Step{Pose: pose.KickRight, Frames: KickFrames})
	}

	return append(seq, Step{Pose: pose.Victory, Frames: VictoryFrames})
}

// Validate 检查序列非空且每一步的帧数至少为 1
func (s Sequence) Validate() error {
	if len(s) == 0 {
		return fmt.Errorf("%w: 序列为空", ErrInvalidStep)
	}
	for i, step := range s {
		if step.Pose == "" {
			return fmt.Errorf("%w: 第 %d 步缺少姿势名称", ErrInvalidStep, i)
		}
		if step.Frames < 1 {
			return fmt.Errorf("%w: 第 %d 步 (%s) 帧数为 %d", ErrInvalidStep, i, step.Pose, step.Frames)
		}
	}
	return nil
}

// TotalFrames 渲染后的总帧数，第一步的帧数不参与计算
func (s Sequence) TotalFrames() int {
	total := 0
	for i := 1; i < len(s); i++ {
		total += s[i].Frames
	}
	return total
}

// PoseNames 按顺序返回姿势名称
func (s Sequence) PoseNames() []string {
	names := make([]string, len(s))
	for i, step := range s {
		names[i] = step.Pose
	}
	return names
}
