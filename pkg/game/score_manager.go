package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// HighScoreData 持久化的最高分数据
type HighScoreData struct {
	HighScore int `yaml:"highScore"` // 历史最高分
}

// ScoreManager 最高分管理器
// 通过 gdata 跨平台存储持久化最高分，只在会话边界
// （开始画面、结束画面）读写，帧循环内只访问内存缓存
//
// 所有持久化失败都被吞掉并降级为默认值/不保存，不会中断游戏
type ScoreManager struct {
	gdataManager *gdata.Manager // 可为 nil（降级模式，仅内存）
	cached       int            // 内存中的最高分
	loaded       bool           // 是否已从存储加载过
}

// 存储路径常量
const (
	scoreObject   = "score"
	scoreProperty = "highscore"
)

// NewScoreManager 创建最高分管理器
//
// 参数：
//   - gdataManager: gdata 存储管理器，可为 nil（降级模式）
func NewScoreManager(gdataManager *gdata.Manager) *ScoreManager {
	return &ScoreManager{gdataManager: gdataManager}
}

// LoadHighScore 返回历史最高分
// 存储缺失、数据损坏或处于降级模式时一律返回 0
func (sm *ScoreManager) LoadHighScore() int {
	if sm.loaded {
		return sm.cached
	}
	sm.loaded = true
	sm.cached = 0

	if sm.gdataManager == nil {
		return 0
	}
	if !sm.gdataManager.ObjectPropExists(scoreObject, scoreProperty) {
		return 0
	}

	data, err := sm.gdataManager.LoadObjectProp(scoreObject, scoreProperty)
	if err != nil {
		log.Printf("[ScoreManager] Warning: failed to load high score: %v (using 0)", err)
		return 0
	}

	var hs HighScoreData
	if err := yaml.Unmarshal(data, &hs); err != nil {
		log.Printf("[ScoreManager] Warning: corrupt high score data: %v (using 0)", err)
		return 0
	}
	if hs.HighScore < 0 {
		return 0
	}

	sm.cached = hs.HighScore
	return sm.cached
}

// SaveHighScoreIfHigher 当 score 超过历史最高分时写入存储
//
// 返回：
//   - bool: 是否产生了新纪录（降级模式下纪录只更新内存，同样返回 true）
func (sm *ScoreManager) SaveHighScoreIfHigher(score int) bool {
	current := sm.LoadHighScore()
	if score <= current {
		return false
	}

	sm.cached = score
	if sm.gdataManager == nil {
		return true
	}

	if err := sm.save(score); err != nil {
		log.Printf("[ScoreManager] Warning: failed to save high score: %v", err)
	}
	return true
}

// save 序列化并写入最高分
func (sm *ScoreManager) save(score int) error {
	data, err := yaml.Marshal(&HighScoreData{HighScore: score})
	if err != nil {
		return fmt.Errorf("failed to marshal high score: %w", err)
	}
	if err := sm.gdataManager.SaveObjectProp(scoreObject, scoreProperty, data); err != nil {
		return fmt.Errorf("failed to save high score: %w", err)
	}
	log.Printf("[ScoreManager] New high score saved: %d", score)
	return nil
}
