package components

// BulletSide 子弹的归属方
type BulletSide int

const (
	// BulletSidePlayer 玩家子弹，向上飞行，命中敌机后立即消耗
	BulletSidePlayer BulletSide = iota
	// BulletSideEnemy 敌机子弹，向下飞行
	BulletSideEnemy
)

// BulletComponent 标记实体为子弹并记录归属方
// 子弹的移动由 VelocityComponent 驱动，飞出场地垂直边界后销毁
type BulletComponent struct {
	Side BulletSide
}
