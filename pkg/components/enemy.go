package components

import "github.com/decker502/galaga/pkg/types"

// EnemyMovementState 敌机的移动状态
type EnemyMovementState int

const (
	// EnemyStateFormation 编队状态：围绕锚点正弦摆动，定时整体下压
	EnemyStateFormation EnemyMovementState = iota
	// EnemyStateDiving 俯冲状态：沿预计算的贝塞尔路径向玩家方向俯冲
	EnemyStateDiving
)

// EnemyComponent 存储单架敌机的状态
// 分值/血量/速度等固定属性在工厂创建时由 types.EnemyKind 推导写入，
// 避免运行期间按种类做分支判断
type EnemyComponent struct {
	Kind types.EnemyKind // 敌机种类

	// 种类推导的固定属性
	Points      int     // 击毁得分
	Health      int     // 剩余血量
	SpeedFactor float64 // 水平漂移速度系数
	CanCapture  bool    // 是否能捕获玩家（仅首领机）

	// 编队摆动参数（每架敌机创建时随机化）
	BaseX         float64 // 编队锚点X（摆动中心）
	DriftSpeed    float64 // 锚点水平漂移速度（像素/帧，符号表示方向）
	WaveAmplitude float64 // 摆动振幅（像素）
	WaveSpeed     float64 // 摆动相位推进速度（弧度/帧）
	WaveOffset    float64 // 摆动相位偏移（弧度）
	Phase         float64 // 当前摆动相位（弧度）

	// 整体下压计时
	LastMoveDown int64 // 上次下压时刻（毫秒）

	// 俯冲状态
	State     EnemyMovementState // 当前移动状态
	DivePath  []Point            // 俯冲路径采样点（空表示无路径）
	DiveIndex int                // 当前路径下标

	// 捕获机制
	HasCapturedPlayer bool // 是否正携带被捕获的玩家战机（仅首领机可能为 true）

	// 射击计时（基于时钟毫秒，非帧数）
	LastShotAt    int64 // 上次射击判定时刻（毫秒）
	NextShotDelay int64 // 距下次射击判定的随机延迟（毫秒）

	// 外观动画帧计数器（基于帧数，60FPS 下每 15 帧切换一次形态）
	AnimCounter int
}
