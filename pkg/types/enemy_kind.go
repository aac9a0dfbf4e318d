package types

// EnemyKind 敌机种类
// 不同种类的敌机拥有不同的分值、血量、移动速度和外观
type EnemyKind int

const (
	// EnemyKindSmall 小型虫机：低血量、高机动，100分
	EnemyKindSmall EnemyKind = iota
	// EnemyKindMedium 中型蜂机：中等血量，200分
	EnemyKindMedium
	// EnemyKindLarge 大型首领机：高血量、移动缓慢，400分
	// 唯一能够捕获玩家战机的种类
	EnemyKindLarge
)

// EnemyKindCount 敌机种类总数，供阵型生成器按 index % EnemyKindCount 循环取用
const EnemyKindCount = 3

// String 返回敌机种类的可读名称（用于日志输出）
func (k EnemyKind) String() string {
	switch k {
	case EnemyKindSmall:
		return "small"
	case EnemyKindMedium:
		return "medium"
	case EnemyKindLarge:
		return "large"
	default:
		return "unknown"
	}
}

// EnemyStats 由敌机种类推导出的固定属性
// 在创建敌机时一次性计算，运行期间不再变化
type EnemyStats struct {
	Points      int     // 击毁得分
	Health      int     // 初始血量（承受子弹数）
	SpeedFactor float64 // 水平漂移速度系数
	CanCapture  bool    // 是否能够捕获玩家（仅首领机为 true）
	Size        float64 // 机体边长（像素，碰撞盒为 Size×Size 正方形）
}

// Stats 返回该种类敌机的固定属性
func (k EnemyKind) Stats() EnemyStats {
	switch k {
	case EnemyKindSmall:
		return EnemyStats{Points: 100, Health: 1, SpeedFactor: 1.2, CanCapture: false, Size: 20}
	case EnemyKindMedium:
		return EnemyStats{Points: 200, Health: 2, SpeedFactor: 1.0, CanCapture: false, Size: 30}
	case EnemyKindLarge:
		return EnemyStats{Points: 400, Health: 3, SpeedFactor: 0.8, CanCapture: true, Size: 40}
	default:
		// 未知种类按小型虫机处理
		return EnemyKind(EnemyKindSmall).Stats()
	}
}

// AllEnemyKinds 返回所有敌机种类（按枚举顺序）
// 阵型生成器用它做随机或循环的种类分配
func AllEnemyKinds() []EnemyKind {
	return []EnemyKind{EnemyKindSmall, EnemyKindMedium, EnemyKindLarge}
}
