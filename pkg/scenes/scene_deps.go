package scenes

import (
	"github.com/decker502/galaga/pkg/config"
	"github.com/decker502/galaga/pkg/game"
)

// Deps 各场景共享的外部依赖
// 由 App 在启动时装配一次，场景切换时原样传递；
// AudioManager 在静音模式下为 nil，场景只在非 nil 时调用它
type Deps struct {
	Cfg             *config.GameplayConfig
	SceneManager    *game.SceneManager
	ScoreManager    *game.ScoreManager
	SettingsManager *game.SettingsManager
	AudioManager    *game.AudioManager
}
