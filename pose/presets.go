package pose

// Preset 预设姿势的结构
type Preset struct {
	Name        string  // 姿势名称
	Description string  // 姿势描述
	Points      []Point // 关节点坐标，必须正好 13 个
}

// 预设姿势名称
const (
	Neutral    = "neutral"
	PunchRight = "punch_right"
	PunchLeft  = "punch_left"
	KickRight  = "kick_right"
	Victory    = "victory"
)

// FighterPresets 获取格斗小人的所有预设姿势
// 坐标为手工设计，修改会直接改变画面效果
func FighterPresets() []Preset {
	return []Preset{
		{
			Name:        Neutral,
			Description: "站立准备姿势",
			Points: []Point{
				{300, 100}, {300, 200}, {250, 150}, {200, 150},
				{350, 150}, {400, 150}, {250, 350}, {250, 500},
				{350, 350}, {350, 500}, {300, 200}, {300, 200}, {300, 200},
			},
		},
		{
			Name:        PunchRight,
			Description: "右拳出击",
			Points: []Point{
				{300, 100}, {300, 200}, {280, 180}, {250, 200},
				{350, 150}, {400, 150}, {250, 350}, {250, 500},
				{350, 350}, {350, 500}, {300, 200}, {300, 200}, {300, 200},
			},
		},
		{
			Name:        PunchLeft,
			Description: "左拳出击",
			Points: []Point{
				{300, 100}, {300, 200}, {250, 150}, {200, 150},
				{320, 180}, {350, 200}, {250, 350}, {250, 500},
				{350, 350}, {350, 500}, {300, 200}, {300, 200}, {300, 200},
			},
		},
		{
			Name:        KickRight,
			Description: "右腿踢击",
			Points: []Point{
				{300, 100}, {300, 200}, {250, 150}, {200, 150},
				{350, 150}, {400, 150}, {280, 300}, {320, 400},
				{350, 350}, {350, 500}, {300, 200}, {300, 200}, {300, 200},
			},
		},
		{
			Name:        Victory,
			Description: "双臂高举庆祝胜利",
			Points: []Point{
				{300, 100}, {300, 200}, {250, 100}, {200, 80},
				{350, 100}, {400, 80}, {250, 350}, {250, 500},
				{350, 350}, {350, 500}, {300, 200}, {300, 200}, {300, 200},
			},
		},
	}
}
