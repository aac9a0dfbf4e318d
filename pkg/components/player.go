package components

import "github.com/decker502/galaga/pkg/ecs"

// PlayerComponent 存储玩家战机的状态
//
// 三个互斥的行为状态由布尔组合表达：
//   - 自由（Free）：IsCaptured == false 且 Invincible == false
//   - 无敌（Invincible）：被击中/获救后的短暂保护期，闪烁显示
//   - 被捕获（Captured）：位置被捕获者每帧接管，不处理移动与射击
//
// 状态转换的前置条件不满足时一律静默忽略（不是错误）
type PlayerComponent struct {
	Lives int // 剩余生命数

	// 合体机制
	CombinedShips    int  // 当前合体战机数，1 = 单机，2 = 双机
	MaxCombinedShips int  // 合体上限（固定为 2）
	HasDoubleFire    bool // 双发火力升级（获救后获得，失去合体机也不会丢失）

	// 捕获机制
	IsCaptured bool         // 是否被敌机捕获
	CapturedBy ecs.EntityID // 捕获者实体ID，0 表示未被捕获

	// 无敌机制
	Invincible      bool  // 是否处于无敌状态
	InvincibleSince int64 // 无敌开始时刻（毫秒）
	FlashCounter    int   // 无敌闪烁帧计数器（基于帧数，非时钟）

	// 射击冷却
	LastShotAt int64 // 上次开火时刻（毫秒）

	// 捕获后重生
	Respawning   bool  // 是否处于重生等待期
	RespawnSince int64 // 重生等待开始时刻（毫秒）

	// 引擎喷焰动画帧计数器
	EngineAnimCounter int
}

// IsFree 判断玩家是否处于自由状态（可被击中、可被捕获、可操作）
func (p *PlayerComponent) IsFree() bool {
	return !p.IsCaptured && !p.Invincible
}
