package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// GameplayConfig 玩法调参配置
// 所有数值都有内置默认值（与原版手感一致），可选地从 YAML 文件覆盖，
// 便于调试期间快速调整手感而无需重新编译
type GameplayConfig struct {
	// 场地尺寸（逻辑像素）
	WindowWidth  int `yaml:"windowWidth"`
	WindowHeight int `yaml:"windowHeight"`

	// 玩家参数
	PlayerSpeed          float64 `yaml:"playerSpeed"`          // 水平移动速度（像素/帧）
	PlayerShootCooldown  int64   `yaml:"playerShootCooldown"`  // 射击冷却（毫秒）
	InvincibleDuration   int64   `yaml:"invincibleDuration"`   // 无敌持续时间（毫秒）
	RespawnDelay         int64   `yaml:"respawnDelay"`         // 被捕获后的重生延迟（毫秒）
	PlayerBulletSpeed    float64 `yaml:"playerBulletSpeed"`    // 玩家子弹速度（像素/帧，向上）
	PlayerLives          int     `yaml:"playerLives"`          // 初始生命数
	DoubleFireOffset     float64 `yaml:"doubleFireOffset"`     // 多发子弹的水平偏移（像素）
	PlayerBottomMargin   float64 `yaml:"playerBottomMargin"`   // 玩家底边距场地底部的距离（像素）

	// 敌机参数
	EnemyBulletSpeed  float64 `yaml:"enemyBulletSpeed"`  // 敌机子弹速度（像素/帧，向下）
	EnemyShotDelayMin int64   `yaml:"enemyShotDelayMin"` // 敌机射击判定最小间隔（毫秒）
	EnemyShotDelayMax int64   `yaml:"enemyShotDelayMax"` // 敌机射击判定最大间隔（毫秒）
	EnemyFireChance   float64 `yaml:"enemyFireChance"`   // 射击判定通过时实际开火的概率
	EnemyBaseDrift    float64 `yaml:"enemyBaseDrift"`    // 编队锚点基础漂移速度（像素/帧）
	MoveDownInterval  int64   `yaml:"moveDownInterval"`  // 编队整体下压间隔（毫秒）
	MoveDownStep      float64 `yaml:"moveDownStep"`      // 每次下压的像素数

	// 俯冲参数
	DiveInterval      int64   `yaml:"diveInterval"`      // 俯冲调度间隔（毫秒）
	DiveSteps         int     `yaml:"diveSteps"`         // 俯冲路径细分步数（路径点数 = DiveSteps+1）
	DiveTargetSpreadX float64 `yaml:"diveTargetSpreadX"` // 俯冲目标相对玩家的水平随机偏移上限（±像素）
	DiveControlSpread float64 `yaml:"diveControlSpread"` // 贝塞尔控制点的水平随机偏移上限（±像素）
	DiveControlLift   float64 `yaml:"diveControlLift"`   // 贝塞尔控制点的垂直上提量（像素）

	// 捕获参数
	CaptureChance float64 `yaml:"captureChance"` // 首领机身体碰撞时捕获（而非同归于尽）的概率

	// 阵型参数
	GridCols     int     `yaml:"gridCols"`     // 网格阵列数
	GridRows     int     `yaml:"gridRows"`     // 网格阵行数
	GridSpacingX float64 `yaml:"gridSpacingX"` // 网格水平间距
	GridSpacingY float64 `yaml:"gridSpacingY"` // 网格垂直间距
	GridOriginX  float64 `yaml:"gridOriginX"`  // 网格起点X
	GridOriginY  float64 `yaml:"gridOriginY"`  // 网格起点Y
	ArcRadius    float64 `yaml:"arcRadius"`    // 弧形阵半径
	ArcCount     int     `yaml:"arcCount"`     // 弧形阵敌机数
	VSpacing     float64 `yaml:"vSpacing"`     // V字阵水平间距
	VCount       int     `yaml:"vCount"`       // V字阵敌机总数（左右各半）
}

// DefaultGameplayConfig 返回默认玩法配置
// 数值取自原版手感：600×800 场地、60FPS、250ms 射击冷却、2s 无敌等
func DefaultGameplayConfig() *GameplayConfig {
	return &GameplayConfig{
		WindowWidth:  600,
		WindowHeight: 800,

		PlayerSpeed:         8,
		PlayerShootCooldown: 250,
		InvincibleDuration:  2000,
		RespawnDelay:        1000,
		PlayerBulletSpeed:   10,
		PlayerLives:         3,
		DoubleFireOffset:    20,
		PlayerBottomMargin:  20,

		EnemyBulletSpeed:  7,
		EnemyShotDelayMin: 3000,
		EnemyShotDelayMax: 8000,
		EnemyFireChance:   0.3,
		EnemyBaseDrift:    2,
		MoveDownInterval:  5000,
		MoveDownStep:      20,

		DiveInterval:      3000,
		DiveSteps:         30,
		DiveTargetSpreadX: 50,
		DiveControlSpread: 100,
		DiveControlLift:   50,

		CaptureChance: 0.3,

		GridCols:     5,
		GridRows:     2,
		GridSpacingX: 80,
		GridSpacingY: 60,
		GridOriginX:  100,
		GridOriginY:  50,
		ArcRadius:    150,
		ArcCount:     10,
		VSpacing:     40,
		VCount:       10,
	}
}

// LoadGameplayConfig 从 YAML 文件加载玩法配置
// 文件中未出现的字段保持默认值
//
// 参数:
//   - path: YAML 配置文件路径
//
// 返回:
//   - *GameplayConfig: 合并后的配置
//   - error: 文件读取或解析失败时返回错误
func LoadGameplayConfig(path string) (*GameplayConfig, error) {
	cfg := DefaultGameplayConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取玩法配置失败: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("解析玩法配置失败: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("玩法配置非法: %w", err)
	}

	return cfg, nil
}

// Validate 校验配置的基本合法性
// 只拦截会导致模拟崩坏的数值（零尺寸场地、倒置的延迟区间等）
func (c *GameplayConfig) Validate() error {
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return fmt.Errorf("场地尺寸必须为正: %dx%d", c.WindowWidth, c.WindowHeight)
	}
	if c.EnemyShotDelayMin > c.EnemyShotDelayMax {
		return fmt.Errorf("敌机射击间隔区间倒置: [%d, %d]", c.EnemyShotDelayMin, c.EnemyShotDelayMax)
	}
	if c.DiveSteps <= 0 {
		return fmt.Errorf("俯冲路径步数必须为正: %d", c.DiveSteps)
	}
	if c.CaptureChance < 0 || c.CaptureChance > 1 {
		return fmt.Errorf("捕获概率必须在 [0,1] 内: %f", c.CaptureChance)
	}
	if c.EnemyFireChance < 0 || c.EnemyFireChance > 1 {
		return fmt.Errorf("敌机开火概率必须在 [0,1] 内: %f", c.EnemyFireChance)
	}
	return nil
}
