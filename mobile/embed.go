//go:build mobile

// embed.go - 移动端资源嵌入声明
//
// 此文件仅在使用 -tags mobile 构建时编译。
// 构建前需要把根目录的 assets/ 和 data/ 复制（或软链）到此目录，
// 因为 //go:embed 只能嵌入当前包目录下的文件。
package mobile

import "embed"

//go:embed all:assets
var assetsFS embed.FS

//go:embed data/rooms data/dialogue data/tracks.yaml
var dataFS embed.FS
