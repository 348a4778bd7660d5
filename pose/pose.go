package pose

import "fmt"

// JointCount 每个姿势固定的关节点数量
const JointCount = 13

// 关节索引，0 为头部，1 为躯干/颈部，其余按肢体顺序排列
const (
	JointHead = 0
	JointNeck = 1
)

// Point 关节点的像素坐标
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Pose 13 个关节点组成的姿势，索引语义固定
type Pose [JointCount]Point

// NewPose 从坐标列表构造姿势，长度必须正好为 13
func NewPose(points []Point) (Pose, error) {
	var p Pose
	if len(points) != JointCount {
		return p, fmt.Errorf("姿势需要 %d 个关节点，实际为 %d", JointCount, len(points))
	}
	copy(p[:], points)
	return p, nil
}

// Points 返回关节点切片副本
func (p Pose) Points() []Point {
	points := make([]Point, JointCount)
	copy(points, p[:])
	return points
}

// Head 头部中心点
func (p Pose) Head() Point { return p[JointHead] }

// Edge 骨架中的一条连线（两个关节索引）
type Edge struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// skeleton 所有姿势共享的 12 条骨架连线
var skeleton = [12]Edge{
	{0, 1}, {1, 2}, {2, 3}, // 右臂
	{1, 4}, {4, 5}, {5, 6}, // 左臂
	{1, 7}, {7, 8}, {8, 9}, // 右腿
	{1, 10}, {10, 11}, {11, 12}, // 左腿
}

// Edges 返回骨架连线的副本
func Edges() []Edge {
	edges := make([]Edge, len(skeleton))
	copy(edges, skeleton[:])
	return edges
}

// Valid 连线两端是否都是 n 个点范围内的合法索引
func (e Edge) Valid(n int) bool {
	return e.From >= 0 && e.To >= 0 && e.From < n && e.To < n
}
