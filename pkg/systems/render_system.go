package systems

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/galaga/pkg/components"
	"github.com/decker502/galaga/pkg/config"
	"github.com/decker502/galaga/pkg/ecs"
	"github.com/decker502/galaga/pkg/entities"
	"github.com/decker502/galaga/pkg/game"
	"github.com/decker502/galaga/pkg/types"
)

// whitePixel 三角形填充用的 1×1 白色源图
// 取 3×3 白图的中心像素，避免采样到边缘
var whitePixel *ebiten.Image

func init() {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	whitePixel = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}

// 敌机配色，按种类区分
var enemyColors = map[types.EnemyKind]color.RGBA{
	types.EnemyKindSmall:  {R: 255, G: 80, B: 80, A: 255},  // 红
	types.EnemyKindMedium: {R: 200, G: 80, B: 255, A: 255}, // 紫
	types.EnemyKindLarge:  {R: 80, G: 255, B: 120, A: 255}, // 绿（首领机）
}

// RenderSystem 渲染系统
// 所有图形均为程序化绘制：飞船用三角形网格，敌机/子弹/爆炸用矢量图元，
// 不依赖任何外部资源文件
type RenderSystem struct {
	em           *ecs.EntityManager
	cfg          *config.GameplayConfig
	gameState    *game.GameState
	scoreManager *game.ScoreManager
	playerSystem *PlayerSystem
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(em *ecs.EntityManager, cfg *config.GameplayConfig, gameState *game.GameState,
	scoreManager *game.ScoreManager, playerSystem *PlayerSystem) *RenderSystem {
	return &RenderSystem{
		em:           em,
		cfg:          cfg,
		gameState:    gameState,
		scoreManager: scoreManager,
		playerSystem: playerSystem,
	}
}

// Draw 绘制一帧
// 绘制顺序决定遮挡关系：星空最底，HUD 最顶
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	s.drawStars(screen)
	s.drawBullets(screen)
	s.drawEnemies(screen)
	s.drawPlayer(screen)
	s.drawExplosions(screen)
	s.drawHUD(screen)
}

func (s *RenderSystem) drawStars(screen *ebiten.Image) {
	DrawStarfield(screen, s.em)
}

// DrawStarfield 绘制背景星空
// 独立导出供标题/结束画面复用（它们只有星空，没有完整的游戏世界）
func DrawStarfield(screen *ebiten.Image, em *ecs.EntityManager) {
	screen.Fill(color.RGBA{R: 5, G: 5, B: 20, A: 255})

	for _, entityID := range em.GetEntitiesWith(starType, positionType) {
		sc, _ := em.GetComponent(entityID, starType)
		pc, _ := em.GetComponent(entityID, positionType)
		star := sc.(*components.StarComponent)
		pos := pc.(*components.PositionComponent)

		shade := color.RGBA{R: star.Shade, G: star.Shade, B: star.Shade, A: 255}
		vector.DrawFilledRect(screen, float32(pos.X), float32(pos.Y),
			float32(star.Size), float32(star.Size), shade, false)
	}
}

func (s *RenderSystem) drawBullets(screen *ebiten.Image) {
	for _, entityID := range s.em.GetEntitiesWith(bulletType, positionType) {
		bc, _ := s.em.GetComponent(entityID, bulletType)
		pc, _ := s.em.GetComponent(entityID, positionType)
		bullet := bc.(*components.BulletComponent)
		pos := pc.(*components.PositionComponent)

		var clr color.RGBA
		if bullet.Side == components.BulletSidePlayer {
			clr = color.RGBA{R: 255, G: 255, B: 100, A: 255}
		} else {
			clr = color.RGBA{R: 255, G: 120, B: 60, A: 255}
		}
		vector.DrawFilledRect(screen,
			float32(pos.X-entities.BulletWidth/2), float32(pos.Y-entities.BulletHeight/2),
			float32(entities.BulletWidth), float32(entities.BulletHeight), clr, false)
	}
}

func (s *RenderSystem) drawEnemies(screen *ebiten.Image) {
	for _, entityID := range s.em.GetEntitiesWith(enemyType, positionType, collisionType) {
		ec, _ := s.em.GetComponent(entityID, enemyType)
		pc, _ := s.em.GetComponent(entityID, positionType)
		cc, _ := s.em.GetComponent(entityID, collisionType)
		enemy := ec.(*components.EnemyComponent)
		pos := pc.(*components.PositionComponent)
		col := cc.(*components.CollisionComponent)

		clr := enemyColors[enemy.Kind]
		radius := float32(col.Width / 2)

		// 两帧翅膀动画：周期 30 帧，前半帧体型略收
		if enemy.AnimCounter%30 < 15 {
			radius *= 0.9
		}

		vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), radius, clr, true)

		// 眼睛，朝向飞行方向
		eyeY := float32(pos.Y)
		if enemy.State == components.EnemyStateDiving {
			eyeY += radius * 0.3
		} else {
			eyeY -= radius * 0.3
		}
		eyeOffset := radius * 0.35
		vector.DrawFilledCircle(screen, float32(pos.X)-eyeOffset, eyeY, 2, color.White, true)
		vector.DrawFilledCircle(screen, float32(pos.X)+eyeOffset, eyeY, 2, color.White, true)

		// 首领机押送捕获玩家时画一条牵引束
		if enemy.HasCapturedPlayer {
			beam := color.RGBA{R: 120, G: 200, B: 255, A: 180}
			vector.StrokeLine(screen, float32(pos.X), float32(pos.Y),
				float32(pos.X), float32(pos.Y)+capturedPlayerOffsetY, 3, beam, true)
		}
	}
}

func (s *RenderSystem) drawPlayer(screen *ebiten.Image) {
	player, pos, col, ok := s.playerSystem.Player()
	if !ok {
		return
	}
	if player.Respawning {
		return
	}
	// 无敌期闪烁：每 10 帧隐藏 5 帧
	if player.Invincible && player.FlashCounter%10 >= 5 {
		return
	}

	shipColor := color.RGBA{R: 220, G: 220, B: 255, A: 255}
	if player.IsCaptured {
		shipColor = color.RGBA{R: 120, G: 200, B: 255, A: 255}
	}

	if player.CombinedShips == 2 {
		half := col.Width / 4
		s.drawShip(screen, pos.X-half, pos.Y, float64(entities.PlayerWidth)*0.8, float64(entities.PlayerHeight)*0.8, shipColor)
		s.drawShip(screen, pos.X+half, pos.Y, float64(entities.PlayerWidth)*0.8, float64(entities.PlayerHeight)*0.8, shipColor)
	} else {
		s.drawShip(screen, pos.X, pos.Y, float64(entities.PlayerWidth), float64(entities.PlayerHeight), shipColor)
	}

	// 引擎喷焰，两帧闪动
	if !player.IsCaptured {
		flameH := float32(6)
		if player.EngineAnimCounter%10 < 5 {
			flameH = 10
		}
		flame := color.RGBA{R: 255, G: 160, B: 40, A: 255}
		vector.DrawFilledRect(screen, float32(pos.X)-3, float32(pos.Y+col.Height/2),
			6, flameH, flame, false)
	}
}

// drawShip 绘制一个三角形机体，顶点朝上
func (s *RenderSystem) drawShip(screen *ebiten.Image, cx, cy, w, h float64, clr color.RGBA) {
	r := float32(clr.R) / 255
	g := float32(clr.G) / 255
	b := float32(clr.B) / 255

	vs := []ebiten.Vertex{
		{DstX: float32(cx), DstY: float32(cy - h/2), SrcX: 0, SrcY: 0, ColorR: r, ColorG: g, ColorB: b, ColorA: 1},
		{DstX: float32(cx - w/2), DstY: float32(cy + h/2), SrcX: 0, SrcY: 0, ColorR: r, ColorG: g, ColorB: b, ColorA: 1},
		{DstX: float32(cx + w/2), DstY: float32(cy + h/2), SrcX: 0, SrcY: 0, ColorR: r, ColorG: g, ColorB: b, ColorA: 1},
	}
	is := []uint16{0, 1, 2}
	screen.DrawTriangles(vs, is, whitePixel, nil)
}

func (s *RenderSystem) drawExplosions(screen *ebiten.Image) {
	for _, entityID := range s.em.GetEntitiesWith(explosionType, positionType) {
		xc, _ := s.em.GetComponent(entityID, explosionType)
		pc, _ := s.em.GetComponent(entityID, positionType)
		explosion := xc.(*components.ExplosionComponent)
		pos := pc.(*components.PositionComponent)

		progress := float64(explosion.Frame) / float64(components.ExplosionFrameCount)
		radius := float32(explosion.MaxRadius * progress)
		alpha := uint8(255 * (1 - progress))
		clr := color.RGBA{R: 255, G: uint8(200 * (1 - progress)), B: 60, A: alpha}
		vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), radius, clr, true)
	}
}

func (s *RenderSystem) drawHUD(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("SCORE %d", s.gameState.Score), 10, 10)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("HIGH %d", s.scoreManager.LoadHighScore()), 10, 26)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("WAVE %d", s.gameState.WaveIndex+1), 10, 42)

	player, _, _, ok := s.playerSystem.Player()
	if !ok {
		return
	}

	// 剩余生命用小三角形图标表示
	for i := 0; i < player.Lives; i++ {
		iconX := float64(s.cfg.WindowWidth) - 24 - float64(i)*20
		s.drawShip(screen, iconX, 20, 12, 16, color.RGBA{R: 220, G: 220, B: 255, A: 255})
	}

	if player.CombinedShips == 2 {
		ebitenutil.DebugPrintAt(screen, "DUAL FIGHTER", 10, 58)
	}
	if player.IsCaptured {
		msg := "SHIP CAPTURED"
		x := s.cfg.WindowWidth/2 - len(msg)*3
		ebitenutil.DebugPrintAt(screen, msg, x, s.cfg.WindowHeight/2)
	}
}
