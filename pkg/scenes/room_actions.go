package scenes

import (
	"log"

	"github.com/decker502/roomquest/pkg/config"
	"github.com/decker502/roomquest/pkg/minigames"
	"github.com/decker502/roomquest/pkg/overlay"
)

// dispatch 执行交互区动作
// 每种动作的语义见 config.ActionConfig 的说明
func (s *RoomScene) dispatch(zone *config.ZoneConfig) {
	action := zone.Action
	switch action.Kind {
	case "transition":
		s.deps.Scenes.TransitionTo(action.Target, s.cfg.ID)

	case "gate":
		s.handleGate(zone)

	case "chat":
		s.float("Смотри в чат →")

	case "cat":
		s.handleCat(zone)

	case "voice":
		s.handleVoice(zone)

	case "inspect":
		s.handleInspect(zone)

	case "carousel":
		s.handleCarousel(zone)

	case "music_toggle":
		if s.deps.Music.CurrentTrackID() == "" {
			s.float("Сначала выбери пластинку")
			return
		}
		if s.deps.Music.TogglePlayback() {
			s.float("♪")
		} else {
			s.float("Тишина...")
		}

	case "console":
		s.handleConsole(zone)

	case "dream":
		s.handleDream(zone)

	case "kettle":
		s.handleKettle(zone)

	case "feed":
		s.handleFeed(zone)

	case "dishes":
		s.handleDishes(zone)

	case "bathtub":
		s.handleBathtub(zone)

	default:
		log.Printf("[Room] Unknown action kind %q in zone %s", action.Kind, zone.Name)
	}
}

// handleGate 门禁：已解锁直接过，未解锁弹密码锁
// 解锁成功后先记录进度再切换房间；重复交互已解锁的门是普通过门
func (s *RoomScene) handleGate(zone *config.ZoneConfig) {
	action := zone.Action
	if s.deps.Progress.IsUnlocked(action.Gate) {
		s.enterGateTarget(action)
		return
	}

	ov, ok := s.overlays[zone.Name].(*overlay.CodeLockOverlay)
	if !ok {
		ov = overlay.NewCodeLockOverlay(overlay.CodeLockConfig{
			Title:        s.cfg.DisplayName,
			Code:         action.Code,
			HintIcons:    action.HintIcons,
			HintText:     action.HintText,
			KeySound:     "assets/audio/sounds/keypad_press.ogg",
			SuccessSound: "assets/audio/sounds/keypad_success.ogg",
			ErrorSound:   "assets/audio/sounds/keypad_error.ogg",
		}, s.deps.Audio, s.deps.Face)
		s.overlays[zone.Name] = ov
	}

	ov.Open(func(r overlay.Result) {
		if r.Code != overlay.ExitUnlocked {
			return
		}
		s.deps.Progress.Unlock(action.Gate)
		s.enterGateTarget(action)
	})
	s.openOverlay(ov)
}

// enterGateTarget 穿过门禁
// target 为 "final" 时进入终场而不是另一个房间
func (s *RoomScene) enterGateTarget(action config.ActionConfig) {
	if action.Target == "final" {
		s.deps.GoToFinal()
		return
	}
	s.deps.Scenes.TransitionTo(action.Target, s.cfg.ID)
}

// handleCat 戳猫：随机反应文字 + 音效
func (s *RoomScene) handleCat(zone *config.ZoneConfig) {
	if s.cat == nil {
		return
	}
	s.floatAt(s.cat.React(), s.cat.X, s.cat.Y-30)
	if zone.Action.Sound != "" {
		s.deps.Audio.PlaySound(zone.Action.Sound)
	}
}

// handleVoice 随机台词：文字 + 配音
func (s *RoomScene) handleVoice(zone *config.ZoneConfig) {
	lines := zone.Action.Lines
	if len(lines) == 0 {
		return
	}
	line := lines[s.rng.Intn(len(lines))]
	s.float(line.Text)
	if line.Sound != "" {
		s.deps.Audio.PlaySound(line.Sound)
	}
}

// handleInspect 查看面板
// variant=mirror 的镜子受蒸汽状态影响：起雾前是谜语，起雾后显出密码
func (s *RoomScene) handleInspect(zone *config.ZoneConfig) {
	action := zone.Action

	var lines []string
	imagePath := action.Image
	if action.Variant == "mirror" {
		if s.steam {
			lines = []string{"1 9 0 2"}
			imagePath = "assets/images/props/mirror_fogged.png"
		} else {
			lines = []string{
				"Твой холодный двойник хранит секрет.",
				"Согрей его, и он заговорит.",
			}
		}
	} else if action.Text != "" {
		lines = []string{action.Text}
	}

	ov, ok := s.overlays[zone.Name].(*overlay.InspectOverlay)
	if !ok {
		ov = overlay.NewInspectOverlay(s.deps.Face)
		s.overlays[zone.Name] = ov
	}
	ov.Show(s.deps.Resources.LoadImageOrNil(imagePath), lines, func(overlay.Result) {})
	s.openOverlay(ov)
}

// handleCarousel 选择面板
// vinyl 变体把选中的唱片交给音乐系统并立即播放，
// 其他变体（书架、照片墙）转入查看面板
func (s *RoomScene) handleCarousel(zone *config.ZoneConfig) {
	action := zone.Action

	ov, ok := s.overlays[zone.Name].(*overlay.CarouselOverlay)
	if !ok {
		ov = overlay.NewCarouselOverlay(action.Items, s.deps.Resources, s.deps.Face)
		s.overlays[zone.Name] = ov
	}

	ov.Open(func(r overlay.Result) {
		if r.Code != overlay.ExitSelected {
			return
		}
		if action.Variant == "vinyl" {
			s.deps.Music.SelectTrack(r.Item)
			s.deps.Music.Play()
			s.float("♪")
			return
		}
		// 书/照片：找到条目并展示内容
		for _, item := range action.Items {
			if item.ID != r.Item {
				continue
			}
			iv, ok := s.overlays[zone.Name+"#view"].(*overlay.InspectOverlay)
			if !ok {
				iv = overlay.NewInspectOverlay(s.deps.Face)
				s.overlays[zone.Name+"#view"] = iv
			}
			var lines []string
			if item.Text != "" {
				lines = []string{item.Text}
			}
			iv.Show(s.deps.Resources.LoadImageOrNil(item.Image), lines, func(overlay.Result) {})
			s.openOverlay(iv)
			return
		}
	})
	s.openOverlay(ov)
}

// handleConsole 游戏机
func (s *RoomScene) handleConsole(zone *config.ZoneConfig) {
	ov, ok := s.overlays[zone.Name].(*overlay.ConsoleOverlay)
	if !ok {
		ov = overlay.NewConsoleOverlay([]minigames.MiniGame{
			minigames.NewSnakeGame(),
			minigames.NewTicTacToeGame(),
			minigames.NewFootballGame(),
		}, s.deps.Face)
		s.overlays[zone.Name] = ov
	}
	ov.Open(func(overlay.Result) {})
	s.openOverlay(ov)
}

// handleDream 梦境：全屏播放，醒来后随机一句台词
func (s *RoomScene) handleDream(zone *config.ZoneConfig) {
	action := zone.Action

	ov, ok := s.overlays[zone.Name].(*overlay.VideoOverlay)
	if !ok {
		ov = overlay.NewVideoOverlay(s.deps.Audio, s.deps.Face)
		s.overlays[zone.Name] = ov
	}

	// 梦里达莎离线，醒来才回来
	s.deps.Chat.SetActive(false)
	ov.Play(s.deps.Resources.LoadImageOrNil(action.Image), "", action.Sound, action.Duration,
		func(r overlay.Result) {
			s.deps.Chat.SetActive(true)
			if len(action.WakeLines) == 0 {
				return
			}
			line := action.WakeLines[s.rng.Intn(len(action.WakeLines))]
			s.float(line.Text)
			if line.Sound != "" {
				s.deps.Audio.PlaySound(line.Sound)
			}
		})
	s.openOverlay(ov)
}

// handleKettle 烧水壶：长计时，烧开后一直提醒茶好了
func (s *RoomScene) handleKettle(zone *config.ZoneConfig) {
	switch {
	case s.kettleDone:
		s.float("Чай готов!")
	case s.kettleOn:
		s.float("Ещё кипит...")
	default:
		s.kettleOn = true
		if zone.Action.Sound != "" {
			s.deps.Audio.PlaySound(zone.Action.Sound)
		}
		s.float("Чайник включён")
		s.timers.Schedule(config.KettleBoilDuration, func() {
			s.kettleDone = true
			s.float("Вода вскипела!")
		})
	}
}

// handleFeed 给猫倒粮：倒粮音效放完才出反馈
func (s *RoomScene) handleFeed(zone *config.ZoneConfig) {
	if s.feeding {
		return
	}
	s.feeding = true
	if zone.Action.Sound != "" {
		s.deps.Audio.PlaySound(zone.Action.Sound)
	}
	s.timers.Schedule(config.FeedPourDuration, func() {
		s.feeding = false
		s.handleVoice(zone)
	})
}

// handleDishes 洗碗：短暂擦洗后给句反馈
func (s *RoomScene) handleDishes(zone *config.ZoneConfig) {
	if s.washing {
		return
	}
	s.washing = true
	if zone.Action.Sound != "" {
		s.deps.Audio.PlaySound(zone.Action.Sound)
	}
	s.float("Шшш...")
	s.timers.Schedule(3.0, func() {
		s.washing = false
		s.float("Посуда сверкает!")
	})
}

// handleBathtub 放热水：设置蒸汽标记，镜子从此起雾
func (s *RoomScene) handleBathtub(zone *config.ZoneConfig) {
	if zone.Action.Sound != "" {
		s.deps.Audio.PlaySound(zone.Action.Sound)
	}
	if !s.steam {
		s.steam = true
		s.float("Из ванны поднимается пар...")
	} else {
		s.float("Горячо!")
	}
}
