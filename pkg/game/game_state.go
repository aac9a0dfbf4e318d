package game

// GameState 存储一局游戏的会话状态
// 由场景创建并按引用传递给需要它的系统；
// 不使用全局单例，便于一局结束后整体丢弃重建
type GameState struct {
	Score     int  // 当前得分
	WaveIndex int  // 当前波次序号（从 0 开始，清空一波后递增）
	GameOver  bool // 会话是否已结束（生命耗尽）
}

// NewGameState 创建新的会话状态
func NewGameState() *GameState {
	return &GameState{}
}

// AddScore 增加得分
func (gs *GameState) AddScore(points int) {
	gs.Score += points
}
