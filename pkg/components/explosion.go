package components

// ExplosionFrameCount 爆炸动画总帧数
const ExplosionFrameCount = 8

// ExplosionComponent 爆炸动画状态
// 表现为逐帧扩大、逐帧变淡的同心圆环，播放完毕后实体自毁
type ExplosionComponent struct {
	MaxRadius float64 // 最大半径（由被毁实体的尺寸决定）
	Frame     int     // 当前动画帧（0 ~ ExplosionFrameCount-1）
	Counter   int     // 帧间隔计数器（每 2 个游戏帧推进一个动画帧）
}
