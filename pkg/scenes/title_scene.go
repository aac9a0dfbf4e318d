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

// TitleScene 标题画面
// 滚动星空背景 + 标题文字 + 最高分展示，等待玩家开始游戏
type TitleScene struct {
	deps Deps

	entityManager   *ecs.EntityManager
	rng             *rand.Rand
	starfieldSystem *systems.StarfieldSystem

	blinkCounter int
}

// NewTitleScene 创建标题画面
// 拥有独立的实体管理器，只承载背景星空
func NewTitleScene(deps Deps) *TitleScene {
	scene := &TitleScene{
		deps:          deps,
		entityManager: ecs.NewEntityManager(),
		rng:           rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	scene.starfieldSystem = systems.NewStarfieldSystem(scene.entityManager, deps.Cfg, scene.rng)
	entities.CreateStarfield(scene.entityManager, deps.Cfg, scene.rng)

	log.Println("[TitleScene] initialized")
	return scene
}

// Update 标题画面逻辑
func (s *TitleScene) Update(deltaTime float64) {
	s.blinkCounter++
	s.starfieldSystem.Update()
	s.entityManager.RemoveMarkedEntities()

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		log.Println("[TitleScene] starting new game")
		s.deps.SceneManager.SwitchTo(NewGameScene(s.deps))
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.deps.SceneManager.RequestQuit()
	}
}

// Draw 绘制标题画面
func (s *TitleScene) Draw(screen *ebiten.Image) {
	systems.DrawStarfield(screen, s.entityManager)

	cx := s.deps.Cfg.WindowWidth / 2
	cy := s.deps.Cfg.WindowHeight / 2

	title := "G A L A G A"
	ebitenutil.DebugPrintAt(screen, title, cx-len(title)*3, cy-80)

	high := fmt.Sprintf("HIGH SCORE  %d", s.deps.ScoreManager.LoadHighScore())
	ebitenutil.DebugPrintAt(screen, high, cx-len(high)*3, cy-40)

	// 提示文字闪烁，周期 60 帧
	if s.blinkCounter%60 < 40 {
		prompt := "PRESS ENTER TO START"
		ebitenutil.DebugPrintAt(screen, prompt, cx-len(prompt)*3, cy+20)
	}

	controls := "ARROWS/AD MOVE   SPACE FIRE   ESC QUIT"
	ebitenutil.DebugPrintAt(screen, controls, cx-len(controls)*3, s.deps.Cfg.WindowHeight-40)
}
