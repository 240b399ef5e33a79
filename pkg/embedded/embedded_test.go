package embedded

import (
	"embed"
	"testing"
)

// 真正的资源嵌入在项目根目录的 embed.go 中（embed 指令只能
// 嵌入当前包目录下的文件），这里用空的 embed.FS 测试接口行为。

// TestIsInitialized 测试初始化状态检测
func TestIsInitialized(t *testing.T) {
	initialized = false

	if IsInitialized() {
		t.Error("Expected IsInitialized() to return false before Init()")
	}

	var emptyFS embed.FS
	Init(emptyFS, emptyFS)

	if !IsInitialized() {
		t.Error("Expected IsInitialized() to return true after Init()")
	}

	// 重置状态以避免影响其他测试
	initialized = false
}

// TestNotInitialized 测试未初始化时的各入口
func TestNotInitialized(t *testing.T) {
	initialized = false

	if _, err := Open("assets/test.png"); err == nil {
		t.Error("Expected error when calling Open() before Init()")
	}
	if _, err := ReadFile("data/tracks.yaml"); err == nil {
		t.Error("Expected error when calling ReadFile() before Init()")
	}
	if _, err := ReadDir("assets/images"); err == nil {
		t.Error("Expected error when calling ReadDir() before Init()")
	}
	if Exists("assets/test.png") {
		t.Error("Expected Exists() to return false before Init()")
	}
}

// TestInvalidPrefix 测试无效路径前缀
func TestInvalidPrefix(t *testing.T) {
	var emptyFS embed.FS
	Init(emptyFS, emptyFS)
	defer func() { initialized = false }()

	_, err := Open("invalid/path/test.png")
	if err == nil {
		t.Fatal("Expected error for invalid path prefix")
	}
	if err.Error() != "unknown resource path prefix: invalid/path/test.png (must start with 'assets/' or 'data/')" {
		t.Errorf("Unexpected error message: %v", err)
	}

	if _, err := ReadFile("invalid/path/test.txt"); err == nil {
		t.Error("Expected error for invalid path prefix")
	}
	if _, err := ReadDir("invalid/path"); err == nil {
		t.Error("Expected error for invalid path prefix")
	}
}

// TestValidPrefixRouting 测试有效前缀被路由到对应 FS
// 空 FS 里文件不存在，但错误不应是前缀错误
func TestValidPrefixRouting(t *testing.T) {
	var emptyFS embed.FS
	Init(emptyFS, emptyFS)
	defer func() { initialized = false }()

	for _, path := range []string{"assets/test.png", "data/tracks.yaml"} {
		_, err := Open(path)
		if err == nil {
			t.Errorf("Expected error for non-existent file %s in empty FS", path)
			continue
		}
		if err.Error() == "unknown resource path prefix: "+path+" (must start with 'assets/' or 'data/')" {
			t.Errorf("Prefix of %s should be recognized as valid", path)
		}
	}
}

// TestPathNormalization 测试 "./" 前缀被移除
func TestPathNormalization(t *testing.T) {
	var emptyFS embed.FS
	Init(emptyFS, emptyFS)
	defer func() { initialized = false }()

	_, err := Open("./assets/test.png")
	if err == nil {
		t.Fatal("Expected error for non-existent file")
	}
	if err.Error() == "unknown resource path prefix: ./assets/test.png (must start with 'assets/' or 'data/')" {
		t.Error("Path normalization should remove './' prefix")
	}
}

// TestExistsWithValidPrefix 测试 Exists 带有效前缀但文件不存在
func TestExistsWithValidPrefix(t *testing.T) {
	var emptyFS embed.FS
	Init(emptyFS, emptyFS)
	defer func() { initialized = false }()

	if Exists("assets/nonexistent.png") {
		t.Error("Expected Exists() to return false for non-existent file")
	}
	if Exists("data/nonexistent.yaml") {
		t.Error("Expected Exists() to return false for non-existent file")
	}
}
