package scenes

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/galaga/pkg/ecs"
	"github.com/decker502/galaga/pkg/entities"
	"github.com/decker502/galaga/pkg/systems"
)

// GameOverScene 结束画面
// 展示本局得分与波次，刷新最高分记录，等待重开或退出
type GameOverScene struct {
	deps Deps

	score        int
	waveIndex    int
	newHighScore bool

	entityManager   *ecs.EntityManager
	rng             *rand.Rand
	starfieldSystem *systems.StarfieldSystem
}

// NewGameOverScene 创建结束画面
// 最高分的持久化在构造时完成一次，而不是每帧比较
func NewGameOverScene(deps Deps, score, waveIndex int) *GameOverScene {
	scene := &GameOverScene{
		deps:          deps,
		score:         score,
		waveIndex:     waveIndex,
		entityManager: ecs.NewEntityManager(),
		rng:           rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	scene.newHighScore = deps.ScoreManager.SaveHighScoreIfHigher(score)
	if scene.newHighScore {
		log.Printf("[GameOverScene] new high score: %d", score)
	}

	scene.starfieldSystem = systems.NewStarfieldSystem(scene.entityManager, deps.Cfg, scene.rng)
	entities.CreateStarfield(scene.entityManager, deps.Cfg, scene.rng)

	return scene
}

// Update 结束画面逻辑
func (s *GameOverScene) Update(deltaTime float64) {
	s.starfieldSystem.Update()
	s.entityManager.RemoveMarkedEntities()

	if inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		log.Println("[GameOverScene] restarting")
		s.deps.SceneManager.SwitchTo(NewGameScene(s.deps))
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.deps.SceneManager.RequestQuit()
	}
}

// Draw 绘制结束画面
func (s *GameOverScene) Draw(screen *ebiten.Image) {
	systems.DrawStarfield(screen, s.entityManager)

	cx := s.deps.Cfg.WindowWidth / 2
	cy := s.deps.Cfg.WindowHeight / 2

	title := "GAME OVER"
	ebitenutil.DebugPrintAt(screen, title, cx-len(title)*3, cy-80)

	score := fmt.Sprintf("SCORE  %d", s.score)
	ebitenutil.DebugPrintAt(screen, score, cx-len(score)*3, cy-40)

	wave := fmt.Sprintf("WAVE   %d", s.waveIndex+1)
	ebitenutil.DebugPrintAt(screen, wave, cx-len(wave)*3, cy-24)

	if s.newHighScore {
		banner := "NEW HIGH SCORE!"
		ebitenutil.DebugPrintAt(screen, banner, cx-len(banner)*3, cy)
	}

	prompt := "R RESTART   Q QUIT"
	ebitenutil.DebugPrintAt(screen, prompt, cx-len(prompt)*3, cy+40)
}
