package components

// PositionComponent 存储实体的世界坐标
// 所有实体的坐标均为碰撞盒中心点
type PositionComponent struct {
	X float64
	Y float64
}

// VelocityComponent 存储实体的速度（像素/帧）
// 子弹的速度在创建时固定：玩家子弹向上（负），敌机子弹向下（正）
type VelocityComponent struct {
	VX float64
	VY float64
}

// Point 路径采样点
// 俯冲路径由一串预计算的 Point 组成，敌机逐帧沿路径推进
type Point struct {
	X float64
	Y float64
}
