package systems

import (
	"log"
	"math"
	"math/rand"

	"github.com/decker502/galaga/pkg/components"
	"github.com/decker502/galaga/pkg/config"
	"github.com/decker502/galaga/pkg/ecs"
	"github.com/decker502/galaga/pkg/entities"
	"github.com/decker502/galaga/pkg/game"
	"github.com/decker502/galaga/pkg/types"
)

// FormationType 阵型类型
type FormationType int

const (
	// FormationGrid 标准网格阵：行×列点阵，种类逐格随机
	FormationGrid FormationType = iota
	// FormationDiamond 菱形阵：围绕中心的 10 个固定相对位置，种类循环分配
	FormationDiamond
	// FormationArc 弧形阵：沿半圆均匀分布，种类循环分配
	FormationArc
	// FormationVShape V字阵：从中心向两侧下方对称展开，左右翼种类错开一位
	FormationVShape
)

// String 返回阵型的可读名称（用于日志输出）
func (f FormationType) String() string {
	switch f {
	case FormationGrid:
		return "grid"
	case FormationDiamond:
		return "diamond"
	case FormationArc:
		return "arc"
	case FormationVShape:
		return "v_shape"
	default:
		return "unknown"
	}
}

// formationRotation 阵型轮换表，按波次序号取模循环
var formationRotation = []FormationType{
	FormationGrid,
	FormationDiamond,
	FormationArc,
	FormationVShape,
}

// FormationForWave 返回指定波次序号对应的阵型
// 轮换周期固定为 len(formationRotation)
func FormationForWave(waveIndex int) FormationType {
	return formationRotation[waveIndex%len(formationRotation)]
}

// WaveSystem 波次调度器
// 检测"场上敌机清空"，推进波次序号并按轮换表生成下一个阵型
type WaveSystem struct {
	em        *ecs.EntityManager
	cfg       *config.GameplayConfig
	clock     *game.Clock
	rng       *rand.Rand
	events    *game.EventQueue
	gameState *game.GameState
}

// NewWaveSystem 创建波次调度器
//
// 参数:
//   - em: 实体管理器
//   - cfg: 玩法配置
//   - clock: 模拟时钟（新敌机的计时初始化需要当前时刻）
//   - rng: 随机源（敌机种类分配与个体参数随机化）
//   - events: 事件队列
//   - gameState: 会话状态（波次序号）
func NewWaveSystem(em *ecs.EntityManager, cfg *config.GameplayConfig, clock *game.Clock,
	rng *rand.Rand, events *game.EventQueue, gameState *game.GameState) *WaveSystem {
	return &WaveSystem{
		em:        em,
		cfg:       cfg,
		clock:     clock,
		rng:       rng,
		events:    events,
		gameState: gameState,
	}
}

// Update 检查敌机人口，清空时生成下一波
// 延迟删除的敌机在帧末才真正移除，因此新波次最早在清空后的下一帧生成
func (s *WaveSystem) Update() {
	if s.em.CountEntitiesWith(enemyType) > 0 {
		return
	}

	s.gameState.WaveIndex++
	formation := FormationForWave(s.gameState.WaveIndex)
	s.SpawnFormation(formation)

	s.events.Emit(game.Event{Type: game.EventWaveComplete, Value: s.gameState.WaveIndex})
	log.Printf("[WaveSystem] wave %d complete, spawning %v formation", s.gameState.WaveIndex, formation)
}

// SpawnFormation 生成指定阵型的一波敌机
// 位置布局对给定配置是确定的，只有敌机种类分配使用随机源
func (s *WaveSystem) SpawnFormation(formation FormationType) {
	switch formation {
	case FormationGrid:
		s.spawnGrid()
	case FormationDiamond:
		s.spawnDiamond()
	case FormationArc:
		s.spawnArc()
	case FormationVShape:
		s.spawnVShape()
	}
}

// spawnGrid 网格阵：GridRows × GridCols 点阵，种类逐格均匀随机
func (s *WaveSystem) spawnGrid() {
	kinds := types.AllEnemyKinds()
	for row := 0; row < s.cfg.GridRows; row++ {
		for col := 0; col < s.cfg.GridCols; col++ {
			kind := kinds[s.rng.Intn(len(kinds))]
			x := s.cfg.GridOriginX + float64(col)*s.cfg.GridSpacingX
			y := s.cfg.GridOriginY + float64(row)*s.cfg.GridSpacingY
			s.spawnEnemy(kind, x, y)
		}
	}
}

// spawnDiamond 菱形阵：围绕场地中轴的 10 个固定相对位置
func (s *WaveSystem) spawnDiamond() {
	cx := float64(s.cfg.WindowWidth) / 2
	positions := []components.Point{
		{X: cx, Y: 50},        // 顶点
		{X: cx - 80, Y: 100},  // 左
		{X: cx + 80, Y: 100},  // 右
		{X: cx, Y: 150},       // 底点
		{X: cx - 40, Y: 75},   // 左上
		{X: cx + 40, Y: 75},   // 右上
		{X: cx - 40, Y: 125},  // 左下
		{X: cx + 40, Y: 125},  // 右下
		{X: cx - 120, Y: 150}, // 远左
		{X: cx + 120, Y: 150}, // 远右
	}

	kinds := types.AllEnemyKinds()
	for i, pos := range positions {
		s.spawnEnemy(kinds[i%len(kinds)], pos.X, pos.Y)
	}
}

// spawnArc 弧形阵：沿半圆均匀分布 ArcCount 架
func (s *WaveSystem) spawnArc() {
	cx := float64(s.cfg.WindowWidth) / 2
	count := s.cfg.ArcCount
	kinds := types.AllEnemyKinds()

	for i := 0; i < count; i++ {
		angle := math.Pi * float64(i) / float64(count-1) // 0 ~ π
		x := cx + s.cfg.ArcRadius*math.Cos(angle)
		y := 100 + s.cfg.ArcRadius*math.Sin(angle)
		s.spawnEnemy(kinds[i%len(kinds)], x, y)
	}
}

// spawnVShape V字阵：从中心向两侧下方对称展开
// 左右翼的种类下标错开一位，避免两翼完全镜像
func (s *WaveSystem) spawnVShape() {
	cx := float64(s.cfg.WindowWidth) / 2
	kinds := types.AllEnemyKinds()

	for i := 0; i < s.cfg.VCount/2; i++ {
		y := 50 + float64(i)*30
		dx := float64(i+1) * s.cfg.VSpacing

		s.spawnEnemy(kinds[i%len(kinds)], cx-dx, y)
		s.spawnEnemy(kinds[(i+1)%len(kinds)], cx+dx, y)
	}
}

// spawnEnemy 生成单架敌机
func (s *WaveSystem) spawnEnemy(kind types.EnemyKind, x, y float64) {
	if _, err := entities.CreateEnemy(s.em, s.cfg, s.rng, kind, x, y, s.clock.NowMillis()); err != nil {
		log.Printf("[WaveSystem] failed to create enemy: %v", err)
	}
}
