package pose

import (
	"errors"
	"fmt"
)

// ErrUnknownPose 姿势库中不存在指定名称
var ErrUnknownPose = errors.New("未知的姿势")

// UnknownPoseError 携带缺失的姿势名称
type UnknownPoseError struct {
	Name string
}

func (e *UnknownPoseError) Error() string {
	return fmt.Sprintf("%s: %s", ErrUnknownPose, e.Name)
}

func (e *UnknownPoseError) Is(target error) bool { return target == ErrUnknownPose }
