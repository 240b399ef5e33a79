package utils

import (
	"math"
	"testing"
)

// TestEaseInOutCubic 测试三次方缓入缓出函数
func TestEaseInOutCubic(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"起点", 0.0, 0.0},
		{"终点", 1.0, 1.0},
		{"中点", 0.5, 0.5},
		{"四分之一", 0.25, 0.0625}, // 4 * 0.25^3
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := EaseInOutCubic(tt.input)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("EaseInOutCubic(%v) = %v, 期望 %v", tt.input, result, tt.expected)
			}
		})
	}
}

// TestEaseOutQuad 测试二次方缓出函数
func TestEaseOutQuad(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"起点", 0.0, 0.0},
		{"终点", 1.0, 1.0},
		{"中点", 0.5, 0.75}, // 1 - (1-0.5)^2
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := EaseOutQuad(tt.input)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("EaseOutQuad(%v) = %v, 期望 %v", tt.input, result, tt.expected)
			}
		})
	}
}

// TestEasingMonotonic 缓动函数在 [0,1] 上应单调不减
func TestEasingMonotonic(t *testing.T) {
	funcs := map[string]func(float64) float64{
		"EaseInOutCubic": EaseInOutCubic,
		"EaseOutQuad":    EaseOutQuad,
	}

	for name, fn := range funcs {
		prev := fn(0)
		for i := 1; i <= 100; i++ {
			v := fn(float64(i) / 100)
			if v < prev-0.0001 {
				t.Errorf("%s 在 t=%v 处不单调", name, float64(i)/100)
				break
			}
			prev = v
		}
	}
}

// TestLerp 测试线性插值
func TestLerp(t *testing.T) {
	if v := Lerp(0, 10, 0.5); math.Abs(v-5) > 0.001 {
		t.Errorf("Lerp(0, 10, 0.5) = %v, 期望 5", v)
	}
	if v := Lerp(10, 20, 0); v != 10 {
		t.Errorf("Lerp(10, 20, 0) = %v, 期望 10", v)
	}
	if v := Lerp(10, 20, 1); v != 20 {
		t.Errorf("Lerp(10, 20, 1) = %v, 期望 20", v)
	}
	if v := Lerp(5, -5, 0.5); math.Abs(v) > 0.001 {
		t.Errorf("Lerp(5, -5, 0.5) = %v, 期望 0", v)
	}
}
