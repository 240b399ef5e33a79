package config

import (
	"fmt"

	"github.com/decker502/roomquest/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// DialogueOption 聊天面板中玩家可点击的一个选项
// Next 指向同一层级内的下一个节点；为空表示对话到此为止
type DialogueOption struct {
	Label string `yaml:"label"`
	Next  string `yaml:"next,omitempty"`
}

// DialogueNode 对话树中的一个节点
// Greeting 为真时该节点是层级入口（切换聊天层级时自动展示）
type DialogueNode struct {
	Greeting bool             `yaml:"greeting,omitempty"`
	Text     string           `yaml:"text"`
	Options  []DialogueOption `yaml:"options,omitempty"`
}

// DialogueLevel 一个进度层级下的完整对话树
// 聊天面板根据已解锁的门禁数选择当前层级
type DialogueLevel struct {
	Entry string                  `yaml:"entry"`
	Nodes map[string]DialogueNode `yaml:"nodes"`
}

// DialogueScript 某个角色的全部对话脚本
// Levels 的键为层级编号（0 = 初始，每解锁一个门禁 +1）
type DialogueScript struct {
	Character string                `yaml:"character"`
	Levels    map[int]DialogueLevel `yaml:"levels"`
}

// LevelFor 返回给定进度层级的对话树
// 缺失时回退到不超过 level 的最高已定义层级，保证进度推进后
// 即使脚本没跟上也不会让面板变空
func (ds *DialogueScript) LevelFor(level int) (DialogueLevel, bool) {
	if lv, ok := ds.Levels[level]; ok {
		return lv, true
	}
	best := -1
	for k := range ds.Levels {
		if k <= level && k > best {
			best = k
		}
	}
	if best < 0 {
		return DialogueLevel{}, false
	}
	return ds.Levels[best], true
}

// LoadDialogueScript 从嵌入的 data/dialogue/ 目录加载角色对话脚本
func LoadDialogueScript(character string) (*DialogueScript, error) {
	path := fmt.Sprintf("data/dialogue/%s.yaml", character)
	raw, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dialogue script %s: %w", path, err)
	}
	return ParseDialogueScript(raw)
}

// ParseDialogueScript 解析对话脚本并校验节点引用
func ParseDialogueScript(raw []byte) (*DialogueScript, error) {
	var ds DialogueScript
	if err := yaml.Unmarshal(raw, &ds); err != nil {
		return nil, fmt.Errorf("failed to unmarshal dialogue script: %w", err)
	}
	for level, lv := range ds.Levels {
		if _, ok := lv.Nodes[lv.Entry]; !ok {
			return nil, fmt.Errorf("dialogue level %d: entry node %q not found", level, lv.Entry)
		}
		for name, node := range lv.Nodes {
			for _, opt := range node.Options {
				if opt.Next == "" {
					continue
				}
				if _, ok := lv.Nodes[opt.Next]; !ok {
					return nil, fmt.Errorf("dialogue level %d: node %q option %q points to missing node %q", level, name, opt.Label, opt.Next)
				}
			}
		}
	}
	return &ds, nil
}
