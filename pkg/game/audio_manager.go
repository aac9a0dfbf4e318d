package game

import (
	"bytes"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioSampleRate 音频采样率（Hz）
// 创建 audio.Context 时必须使用该采样率
const AudioSampleRate = 44100

// beepSpec 单个提示音的合成参数
type beepSpec struct {
	freq     float64 // 正弦波频率（Hz）
	duration float64 // 时长（秒）
	volume   float64 // 振幅比例 0.0 ~ 1.0
}

// 各事件对应的复古提示音
// 高音表示玩家动作，低音表示爆炸，特殊事件使用独有音高
var eventBeeps = map[EventType]beepSpec{
	EventShotFired:      {freq: 880, duration: 0.05, volume: 0.5},
	EventEnemyDestroyed: {freq: 220, duration: 0.2, volume: 0.5},
	EventPlayerHit:      {freq: 440, duration: 0.1, volume: 0.5},
	EventPlayerCaptured: {freq: 330, duration: 0.3, volume: 0.5},
	EventPlayerRescued:  {freq: 660, duration: 0.2, volume: 0.5},
	EventWaveComplete:   {freq: 550, duration: 0.5, volume: 0.7},
}

// AudioManager 音频管理器
//
// 职责：
//   - 程序化合成复古正弦提示音（不依赖任何音频资源文件）
//   - 消费模拟层事件队列，按事件类型触发对应提示音
//   - 应用 SettingsManager 中的音量/开关设置
//
// 合成的 PCM 在构造时一次性生成并缓存为可复用的播放器，
// 播放时只做 Rewind + Play
type AudioManager struct {
	audioContext    *audio.Context
	settingsManager *SettingsManager
	players         map[EventType]*audio.Player // 事件类型 -> 缓存的播放器
}

// NewAudioManager 创建音频管理器并预合成全部提示音
//
// 参数：
//   - audioContext: ebiten 音频上下文（采样率须为 AudioSampleRate）
//   - settingsManager: 设置管理器，用于读取音量设置，可为 nil
func NewAudioManager(audioContext *audio.Context, settingsManager *SettingsManager) *AudioManager {
	am := &AudioManager{
		audioContext:    audioContext,
		settingsManager: settingsManager,
		players:         make(map[EventType]*audio.Player),
	}

	for eventType, spec := range eventBeeps {
		pcm := synthesizeBeep(spec.freq, spec.duration, spec.volume)
		player, err := audioContext.NewPlayer(bytes.NewReader(pcm))
		if err != nil {
			// 某个音色创建失败只影响该事件的音效
			log.Printf("[AudioManager] Warning: failed to create player for %v: %v", eventType, err)
			continue
		}
		am.players[eventType] = player
	}

	return am
}

// HandleEvents 消费一帧的事件并播放对应提示音
// 没有对应音色的事件（如 EventGameOver）被静默忽略
func (am *AudioManager) HandleEvents(events []Event) {
	for _, e := range events {
		am.playFor(e.Type)
	}
}

// playFor 播放指定事件类型的提示音
func (am *AudioManager) playFor(eventType EventType) {
	if am.settingsManager != nil && !am.settingsManager.GetSettings().SoundEnabled {
		return
	}

	player, ok := am.players[eventType]
	if !ok {
		return
	}

	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: rewind failed for %v: %v", eventType, err)
		return
	}
	if am.settingsManager != nil {
		player.SetVolume(am.settingsManager.GetSettings().SoundVolume)
	}
	player.Play()
}

// synthesizeBeep 合成一段正弦波提示音
// 输出为 16bit 有符号小端、双声道交织的 PCM 字节流
func synthesizeBeep(freq, duration, volume float64) []byte {
	numSamples := int(math.Round(duration * AudioSampleRate))
	const maxSample = 1<<15 - 1

	buf := make([]byte, numSamples*4) // 每个采样 2 声道 × 2 字节
	for i := 0; i < numSamples; i++ {
		t := float64(i) / AudioSampleRate
		v := int16(math.Round(maxSample * volume * math.Sin(2*math.Pi*freq*t)))

		// 左右声道相同
		buf[i*4] = byte(v)
		buf[i*4+1] = byte(v >> 8)
		buf[i*4+2] = byte(v)
		buf[i*4+3] = byte(v >> 8)
	}
	return buf
}
