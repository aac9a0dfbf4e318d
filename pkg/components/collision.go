package components

// CollisionComponent 存储实体的碰撞盒尺寸
// 碰撞盒为轴对齐矩形（AABB），中心对齐实体的 PositionComponent
//
// 玩家合体（双机）时碰撞盒会被加宽，被击中降回单机时再收窄
type CollisionComponent struct {
	Width  float64
	Height float64
}
