// Package app 提供游戏应用的核心包装器
//
// 该包将启动装配逻辑从 main 包提取出来：日志配置、存档打开、
// 玩法配置加载、音频初始化和初始场景创建都在这里完成，
// main.go 只负责解析命令行参数并调用 ebiten.RunGame
package app

import (
	"fmt"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/quasilyte/gdata/v2"

	"github.com/decker502/galaga/pkg/config"
	"github.com/decker502/galaga/pkg/game"
	"github.com/decker502/galaga/pkg/scenes"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Mute 禁用音频（不创建音频上下文）
	Mute bool
	// GameplayConfigPath 玩法配置文件路径，为空则使用内置默认值
	GameplayConfigPath string
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	gameplayCfg  *config.GameplayConfig
	verbose      bool
}

// NewApp 创建并初始化游戏应用
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	// 加载玩法配置
	gameplayCfg := config.DefaultGameplayConfig()
	if cfg.GameplayConfigPath != "" {
		loaded, err := config.LoadGameplayConfig(cfg.GameplayConfigPath)
		if err != nil {
			return nil, fmt.Errorf("玩法配置加载失败: %w", err)
		}
		gameplayCfg = loaded
		log.Printf("[App] Loaded gameplay config from %s", cfg.GameplayConfigPath)
	}

	// 打开本地存档；失败时降级为无持久化模式，游戏本体不受影响
	gdataManager, err := gdata.Open(gdata.Config{
		AppName: "galaga",
	})
	if err != nil {
		log.Printf("[App] Warning: failed to open save data, persistence disabled: %v", err)
		gdataManager = nil
	}

	scoreManager := game.NewScoreManager(gdataManager)
	settingsManager := game.NewSettingsManager(gdataManager)

	// 初始化音频（静音模式下不创建上下文）
	var audioManager *game.AudioManager
	if !cfg.Mute {
		audioContext := audio.NewContext(game.AudioSampleRate)
		audioManager = game.NewAudioManager(audioContext, settingsManager)
		log.Printf("[App] AudioManager initialized")
	}

	// 创建场景管理器并进入标题画面
	sceneManager := game.NewSceneManager()
	deps := scenes.Deps{
		Cfg:             gameplayCfg,
		SceneManager:    sceneManager,
		ScoreManager:    scoreManager,
		SettingsManager: settingsManager,
		AudioManager:    audioManager,
	}
	sceneManager.SwitchTo(scenes.NewTitleScene(deps))

	return &App{
		sceneManager: sceneManager,
		gameplayCfg:  gameplayCfg,
		verbose:      cfg.Verbose,
	}, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	if a.sceneManager.QuitRequested() {
		return ebiten.Termination
	}

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.gameplayCfg.WindowWidth, a.gameplayCfg.WindowHeight
}

// GameplayConfig 返回生效的玩法配置
// main 包用它设置初始窗口尺寸
func (a *App) GameplayConfig() *config.GameplayConfig {
	return a.gameplayCfg
}
