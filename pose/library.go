package pose

import (
	"fmt"
	"sort"
)

type entry struct {
	pose        Pose
	description string
}

// Library 只读的姿势库，构造完成后不再修改，可在多个请求间共享
type Library struct{ entries map[string]entry }

// NewLibrary 根据预设列表构造姿势库，任何一个预设的关节点数量不对都会失败
func NewLibrary(presets []Preset) (*Library, error) {
	entries := make(map[string]entry, len(presets))
	for _, preset := range presets {
		if preset.Name == "" {
			return nil, fmt.Errorf("预设姿势缺少名称")
		}
		if _, exists := entries[preset.Name]; exists {
			return nil, fmt.Errorf("预设姿势 %s 重复定义", preset.Name)
		}
		p, err := NewPose(preset.Points)
		if err != nil {
			return nil, fmt.Errorf("预设姿势 %s 无效：%w", preset.Name, err)
		}
		entries[preset.Name] = entry{pose: p, description: preset.Description}
	}
	return &Library{entries: entries}, nil
}

// Default 构造内置格斗姿势库
func Default() *Library {
	lib, err := NewLibrary(FighterPresets())
	if err != nil {
		// 内置坐标表损坏属于程序错误
		panic(err)
	}
	return lib
}

// Get 获取指定名称的姿势
func (l *Library) Get(name string) (Pose, error) {
	e, exists := l.entries[name]
	if !exists {
		return Pose{}, &UnknownPoseError{Name: name}
	}
	return e.pose, nil
}

// Has 是否包含指定名称的姿势
func (l *Library) Has(name string) bool {
	_, exists := l.entries[name]
	return exists
}

// Names 获取所有姿势名称（已排序）
func (l *Library) Names() []string {
	names := make([]string, 0, len(l.entries))
	for name := range l.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Description 获取姿势的描述
func (l *Library) Description(name string) string {
	if e, exists := l.entries[name]; exists {
		return e.description
	}
	return ""
}

// Len 姿势数量
func (l *Library) Len() int { return len(l.entries) }
