package systems

import (
	"math/rand"
	"testing"
	"time"

	"github.com/decker502/galaga/pkg/components"
	"github.com/decker502/galaga/pkg/config"
	"github.com/decker502/galaga/pkg/ecs"
	"github.com/decker502/galaga/pkg/entities"
	"github.com/decker502/galaga/pkg/game"
	"github.com/decker502/galaga/pkg/types"
)

// testEnv 系统测试的公共装配：
// 虚拟时钟 + 固定种子随机源，让所有计时与随机行为完全确定
type testEnv struct {
	em        *ecs.EntityManager
	cfg       *config.GameplayConfig
	clock     *game.Clock
	millis    *int64
	rng       *rand.Rand
	events    *game.EventQueue
	gameState *game.GameState

	playerID     ecs.EntityID
	playerSystem *PlayerSystem
}

// newTestEnv 创建带玩家实体的测试环境
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		em:        ecs.NewEntityManager(),
		cfg:       config.DefaultGameplayConfig(),
		millis:    new(int64),
		rng:       rand.New(rand.NewSource(7)),
		events:    game.NewEventQueue(),
		gameState: game.NewGameState(),
	}
	env.clock = game.NewClockWithSource(func() time.Time {
		return time.Unix(0, *env.millis*int64(time.Millisecond))
	})

	playerID, err := entities.CreatePlayer(env.em, env.cfg)
	if err != nil {
		t.Fatalf("Failed to create player: %v", err)
	}
	env.playerID = playerID
	env.playerSystem = NewPlayerSystem(env.em, env.cfg, env.clock, env.events, playerID)

	return env
}

// advance 推进虚拟时钟
func (env *testEnv) advance(ms int64) {
	*env.millis += ms
}

// player 返回玩家组件，玩家必须存在
func (env *testEnv) player(t *testing.T) (*components.PlayerComponent, *components.PositionComponent, *components.CollisionComponent) {
	t.Helper()
	p, pos, col, ok := env.playerSystem.Player()
	if !ok {
		t.Fatal("Player entity missing")
	}
	return p, pos, col
}

// spawnEnemy 在指定位置创建敌机并返回其ID与组件
func (env *testEnv) spawnEnemy(t *testing.T, kind types.EnemyKind, x, y float64) (ecs.EntityID, *components.EnemyComponent) {
	t.Helper()
	id, err := entities.CreateEnemy(env.em, env.cfg, env.rng, kind, x, y, env.clock.NowMillis())
	if err != nil {
		t.Fatalf("Failed to create enemy: %v", err)
	}
	ec, _ := env.em.GetComponent(id, enemyType)
	e := ec.(*components.EnemyComponent)
	// 测试中默认静默敌机射击，避免干扰子弹计数
	e.NextShotDelay = 1 << 40
	return id, e
}

// enemyPos 返回敌机位置组件
func (env *testEnv) enemyPos(t *testing.T, id ecs.EntityID) *components.PositionComponent {
	t.Helper()
	pc, ok := env.em.GetComponent(id, positionType)
	if !ok {
		t.Fatalf("Enemy %d missing position", id)
	}
	return pc.(*components.PositionComponent)
}

// countBullets 统计指定阵营的子弹数
func (env *testEnv) countBullets(side components.BulletSide) int {
	count := 0
	for _, id := range env.em.GetEntitiesWith(bulletType) {
		bc, _ := env.em.GetComponent(id, bulletType)
		if bc.(*components.BulletComponent).Side == side {
			count++
		}
	}
	return count
}

// drainEventTypes 取出事件队列并返回类型序列
func (env *testEnv) drainEventTypes() []game.EventType {
	events := env.events.Drain()
	result := make([]game.EventType, len(events))
	for i, e := range events {
		result[i] = e.Type
	}
	return result
}

// hasEvent 检查类型序列中是否包含指定事件
func hasEvent(eventTypes []game.EventType, want game.EventType) bool {
	for _, et := range eventTypes {
		if et == want {
			return true
		}
	}
	return false
}
