// Package embedded 提供嵌入资源的统一访问接口
//
// 由于 Go embed 指令只能嵌入当前包目录及其子目录的文件，
// embed.FS 变量必须声明在项目根目录（embed.go）。
// 本包提供包装函数，让其他包可以访问嵌入的资源：
//   - assets/ 存放图片、音频等二进制素材
//   - data/   存放房间配置、对话脚本等 YAML 数据
//
// 使用前必须调用 Init() 初始化。
package embedded

import (
	"embed"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

var (
	assetsFS    embed.FS
	dataFS      embed.FS
	initialized bool
)

// Init 初始化 embed.FS 变量
// 必须在 main() 开始时、任何资源加载之前调用
func Init(assets, data embed.FS) {
	assetsFS = assets
	dataFS = data
	initialized = true
}

// IsInitialized 返回 embedded 包是否已初始化
func IsInitialized() bool {
	return initialized
}

// pick 根据路径前缀选择正确的 embed.FS
// 路径必须以 "assets/" 或 "data/" 开头
func pick(path string) (*embed.FS, string, error) {
	// 标准化路径分隔符为正斜杠（embed.FS 使用正斜杠）
	path = filepath.ToSlash(path)
	path = strings.TrimPrefix(path, "./")

	var fsys *embed.FS
	switch {
	case strings.HasPrefix(path, "assets/"):
		fsys = &assetsFS
	case strings.HasPrefix(path, "data/"):
		fsys = &dataFS
	default:
		return nil, "", fmt.Errorf("unknown resource path prefix: %s (must start with 'assets/' or 'data/')", path)
	}

	if !initialized {
		return nil, "", fmt.Errorf("embedded package not initialized, call Init() first")
	}
	return fsys, path, nil
}

// Open 打开嵌入文件
func Open(path string) (fs.File, error) {
	fsys, p, err := pick(path)
	if err != nil {
		return nil, err
	}
	return fsys.Open(p)
}

// ReadFile 读取嵌入文件的全部内容
func ReadFile(path string) ([]byte, error) {
	fsys, p, err := pick(path)
	if err != nil {
		return nil, err
	}
	return fs.ReadFile(fsys, p)
}

// Exists 检查文件是否存在于 embed.FS 中
func Exists(path string) bool {
	file, err := Open(path)
	if err != nil {
		return false
	}
	file.Close()
	return true
}

// ReadDir 读取目录内容
func ReadDir(path string) ([]fs.DirEntry, error) {
	fsys, p, err := pick(path)
	if err != nil {
		return nil, err
	}
	return fs.ReadDir(fsys, p)
}
