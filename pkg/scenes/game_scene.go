package scenes

import (
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/galaga/pkg/ecs"
	"github.com/decker502/galaga/pkg/entities"
	"github.com/decker502/galaga/pkg/game"
	"github.com/decker502/galaga/pkg/systems"
)

// GameScene 对局场景
// 持有一局游戏的全部模拟状态：实体管理器、时钟、随机源、事件队列和各系统。
// 一局结束后整个场景被丢弃，重新开局即重建，无需逐项复位
type GameScene struct {
	deps Deps

	entityManager *ecs.EntityManager
	clock         *game.Clock
	rng           *rand.Rand
	gameState     *game.GameState
	events        *game.EventQueue

	playerSystem    *systems.PlayerSystem
	enemySystem     *systems.EnemySystem
	bulletSystem    *systems.BulletSystem
	starfieldSystem *systems.StarfieldSystem
	explosionSystem *systems.ExplosionSystem
	collisionSystem *systems.CollisionSystem
	waveSystem      *systems.WaveSystem
	diveSystem      *systems.DiveSystem
	renderSystem    *systems.RenderSystem
}

// NewGameScene 创建并初始化一局新游戏
func NewGameScene(deps Deps) *GameScene {
	scene := &GameScene{
		deps:          deps,
		entityManager: ecs.NewEntityManager(),
		clock:         game.NewClock(),
		rng:           rand.New(rand.NewSource(time.Now().UnixNano())),
		gameState:     game.NewGameState(),
		events:        game.NewEventQueue(),
	}

	em := scene.entityManager
	cfg := deps.Cfg

	playerID, err := entities.CreatePlayer(em, cfg)
	if err != nil {
		log.Printf("[GameScene] failed to create player: %v", err)
	}

	scene.playerSystem = systems.NewPlayerSystem(em, cfg, scene.clock, scene.events, playerID)
	scene.enemySystem = systems.NewEnemySystem(em, cfg, scene.clock, scene.rng, scene.playerSystem)
	scene.bulletSystem = systems.NewBulletSystem(em, cfg)
	scene.starfieldSystem = systems.NewStarfieldSystem(em, cfg, scene.rng)
	scene.explosionSystem = systems.NewExplosionSystem(em)
	scene.collisionSystem = systems.NewCollisionSystem(em, cfg, scene.rng, scene.events,
		scene.gameState, scene.playerSystem)
	scene.waveSystem = systems.NewWaveSystem(em, cfg, scene.clock, scene.rng, scene.events, scene.gameState)
	scene.diveSystem = systems.NewDiveSystem(em, cfg, scene.clock, scene.rng, scene.enemySystem)
	scene.renderSystem = systems.NewRenderSystem(em, cfg, scene.gameState,
		deps.ScoreManager, scene.playerSystem)

	// 初始实体：星空与第一波网格阵（玩家已在上面创建）
	if err := entities.CreateStarfield(em, cfg, scene.rng); err != nil {
		log.Printf("[GameScene] failed to create starfield: %v", err)
	}
	scene.waveSystem.SpawnFormation(systems.FormationForWave(0))

	log.Println("[GameScene] new game started")
	return scene
}

// Update 推进一帧模拟
// 系统更新顺序固定；实体的真正删除集中在帧末执行，
// 保证同一帧内所有系统看到一致的实体集合
func (s *GameScene) Update(deltaTime float64) {
	s.clock.Tick()
	intents := systems.PollInput()

	if intents.Quit {
		s.deps.SceneManager.RequestQuit()
	}

	s.playerSystem.Update(intents)
	s.enemySystem.Update()
	s.bulletSystem.Update()
	s.starfieldSystem.Update()
	s.explosionSystem.Update()
	s.collisionSystem.Update()
	s.waveSystem.Update()
	s.diveSystem.Update()

	gameOver := false
	if player, _, _, ok := s.playerSystem.Player(); ok && player.Lives <= 0 {
		gameOver = true
	}
	if gameOver && !s.gameState.GameOver {
		s.gameState.GameOver = true
		s.events.Emit(game.Event{Type: game.EventGameOver, Value: s.gameState.Score})
		log.Printf("[GameScene] game over, score=%d wave=%d", s.gameState.Score, s.gameState.WaveIndex)
	}

	if s.deps.AudioManager != nil {
		s.deps.AudioManager.HandleEvents(s.events.Drain())
	} else {
		s.events.Drain()
	}

	s.entityManager.RemoveMarkedEntities()

	if s.gameState.GameOver {
		s.deps.SceneManager.SwitchTo(NewGameOverScene(s.deps, s.gameState.Score, s.gameState.WaveIndex))
	}
}

// Draw 绘制对局画面
func (s *GameScene) Draw(screen *ebiten.Image) {
	s.renderSystem.Draw(screen)
}
