package config

import (
	"fmt"

	"github.com/decker502/roomquest/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// Rect 轴对齐矩形（AABB）
// 房间内的墙体、交互区都用它描述，坐标为房间世界坐标
type Rect struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// Intersects 判断两个矩形是否相交
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W &&
		r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Area 返回矩形面积
func (r Rect) Area() float64 {
	return r.W * r.H
}

// SpawnPoint 进入房间时的出生点
// Facing 取值: up / down / left / right
type SpawnPoint struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Facing string  `yaml:"facing"`
}

// CarouselItem 选择类覆盖层（唱片箱、书架、照片墙）中的一项
type CarouselItem struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Image string `yaml:"image,omitempty"`
	Text  string `yaml:"text,omitempty"`
}

// ActionConfig 描述交互区被触发时执行的动作
//
// Kind 取值与对应字段：
//   - transition: Target（目标房间，淡出→切换→淡入）
//   - gate:       Gate + Target + Code/HintIcons/HintText（密码锁门禁）
//   - chat:       激活聊天面板（走到 NPC 身边）
//   - cat:        Lines（随机反应，文字+音效）
//   - voice:      Lines（随机语音台词，如厨房餐桌）
//   - console:    游戏机覆盖层（内含小游戏）
//   - carousel:   Items + Variant（vinyl 会把选中项交给音乐系统）
//   - music_toggle: 唱片机开关
//   - inspect:    Image + Text（简单查看；Variant=mirror 时受蒸汽状态影响）
//   - dream:      梦境视频覆盖层（Video/Sound + WakeLines）
//   - video:      终场视频（街道门禁成功后由终场场景播放，此处预留）
//   - kettle:     烧水壶（长计时，结束后提示）
//   - feed:       给猫倒粮（短计时+语音）
//   - dishes:     洗碗小游戏覆盖层
//   - bathtub:    放热水，设置浴室蒸汽标记
type ActionConfig struct {
	Kind string `yaml:"kind"`

	Target string `yaml:"target,omitempty"`
	Gate   string `yaml:"gate,omitempty"`

	Code      []int    `yaml:"code,omitempty"`
	HintIcons []string `yaml:"hintIcons,omitempty"`
	HintText  string   `yaml:"hintText,omitempty"`

	Image   string `yaml:"image,omitempty"`
	Text    string `yaml:"text,omitempty"`
	Variant string `yaml:"variant,omitempty"`

	Sound    string         `yaml:"sound,omitempty"`
	Video    string         `yaml:"video,omitempty"`
	Duration float64        `yaml:"duration,omitempty"`
	Lines    []Line         `yaml:"lines,omitempty"`
	Items    []CarouselItem `yaml:"items,omitempty"`

	// WakeLines 梦境结束后随机播放的台词（文字+配音）
	WakeLines []Line `yaml:"wakeLines,omitempty"`
}

// Line 一句台词：显示文字和可选配音
type Line struct {
	Text  string `yaml:"text"`
	Sound string `yaml:"sound,omitempty"`
}

// ZoneConfig 房间内一个命名交互区
type ZoneConfig struct {
	Name   string       `yaml:"name"`
	Rect   Rect         `yaml:"rect"`
	Action ActionConfig `yaml:"action"`
}

// RoomConfig 一个房间的完整静态配置
// 场景构造后不再修改（交互区为不可变数据）
type RoomConfig struct {
	ID          string                `yaml:"id"`
	DisplayName string                `yaml:"displayName"`
	Background  string                `yaml:"background"`
	Music       string                `yaml:"music,omitempty"`
	NPC         *NPCConfig            `yaml:"npc,omitempty"`
	Spawns      map[string]SpawnPoint `yaml:"spawns"`
	Walls       []Rect                `yaml:"walls"`
	Zones       []ZoneConfig          `yaml:"zones"`
}

// NPCConfig 房间里的 NPC（目前只有达莎坐在卧室的豆袋椅上）
type NPCConfig struct {
	Name   string  `yaml:"name"`
	Sprite string  `yaml:"sprite,omitempty"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
}

// DefaultSpawn 返回默认出生点
// 配置缺失时回退到房间中央，避免把玩家生成在 (0,0)
func (rc *RoomConfig) DefaultSpawn() SpawnPoint {
	if sp, ok := rc.Spawns["default"]; ok {
		return sp
	}
	return SpawnPoint{X: PlayfieldWidth / 2, Y: GameWindowHeight / 2, Facing: "down"}
}

// SpawnFor 根据来源房间选择出生点
// 没有对应入口的配置时回退到默认出生点
func (rc *RoomConfig) SpawnFor(from string) SpawnPoint {
	if sp, ok := rc.Spawns[from]; ok {
		return sp
	}
	return rc.DefaultSpawn()
}

// LoadRoomConfig 从嵌入的 data/rooms/ 目录加载单个房间配置
func LoadRoomConfig(roomID string) (*RoomConfig, error) {
	path := fmt.Sprintf("data/rooms/%s.yaml", roomID)
	raw, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read room config %s: %w", path, err)
	}
	return ParseRoomConfig(raw)
}

// ParseRoomConfig 解析房间配置并做基本校验
func ParseRoomConfig(raw []byte) (*RoomConfig, error) {
	var rc RoomConfig
	if err := yaml.Unmarshal(raw, &rc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal room config: %w", err)
	}
	if rc.ID == "" {
		return nil, fmt.Errorf("room config missing id")
	}
	for i, z := range rc.Zones {
		if z.Name == "" {
			return nil, fmt.Errorf("room %s: zone %d has no name", rc.ID, i)
		}
		if z.Action.Kind == "gate" {
			if len(z.Action.Code) != 4 {
				return nil, fmt.Errorf("room %s: gate zone %q needs a 4-digit code, got %d", rc.ID, z.Name, len(z.Action.Code))
			}
			if z.Action.Gate == "" {
				return nil, fmt.Errorf("room %s: gate zone %q has no gate name", rc.ID, z.Name)
			}
		}
	}
	return &rc, nil
}
