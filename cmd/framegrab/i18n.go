// Package main provides localization for the framegrab CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Root command
		"Convert directories of videos into time-sampled JPEG frame sequences.": "動画ディレクトリを時間サンプリングされたJPEG連番画像に変換",

		// Extract command
		"Extract JPEG frame sequences from a directory of videos.": "動画ディレクトリからJPEG連番画像を抽出",

		// Version command
		"Show version information.": "バージョン情報を表示",
		"framegrab version %s":      "framegrab バージョン %s",

		// Flags
		"Directory containing the source videos.":                              "元動画を含むディレクトリ",
		"Root directory for frame folders (default: beside each video).":       "フレームフォルダのルートディレクトリ（デフォルト: 各動画の隣）",
		"Seconds between sampled frames (default: 30).":                        "フレームをサンプリングする間隔秒数（デフォルト: 30）",
		"Number of videos processed in parallel (default: CPU count).":         "並列処理する動画数（デフォルト: CPUコア数）",
		"Descend into subdirectories when discovering videos.":                 "サブディレクトリも再帰的に探索",
		"Process at most this many videos (0 = unlimited).":                    "処理する動画数の上限（0 = 無制限）",
		"Number of output folders to spot-check (default: 3).":                 "抜き取り検査する出力フォルダ数（デフォルト: 3）",
		"Images validated per sampled folder (default: 3).":                    "フォルダごとに検証する画像数（デフォルト: 3）",
		"Seed for reproducible QA sampling (default: 42).":                     "再現可能なQAサンプリングのシード（デフォルト: 42）",
		"Also write a sheet.jpg overview per video.":                           "動画ごとに概要画像 sheet.jpg も出力",
		"Write a Markdown batch report to this path.":                          "Markdownのバッチレポートをこのパスに出力",
		"YAML profile with defaults for the flags above.":                      "上記フラグのデフォルト値を持つYAMLプロファイル",
		"Path to ffmpeg (falls back to FFMPEG_PATH env, then PATH).":           "ffmpegのパス（FFMPEG_PATH環境変数、PATHの順にフォールバック）",
		"Path to ffprobe (falls back to FFPROBE_PATH env, then PATH).":         "ffprobeのパス（FFPROBE_PATH環境変数、PATHの順にフォールバック）",
		"Log level (debug, info, warn, error; default: info).":                 "ログレベル（debug, info, warn, error、デフォルト: info）",
		"Suppress all log output.":                                             "全てのログ出力を抑制",

		// Runtime messages
		"Interrupted, shutting down...": "中断されました。シャットダウン中...",
		"ffmpeg not found: %s":          "ffmpegが見つかりません: %s",
		"ffprobe not found: %s":         "ffprobeが見つかりません: %s",
		"No supported videos found under %s": "%s 以下に対応する動画が見つかりませんでした",
		"Found %d video(s), extracting every %.1f seconds with %d worker(s)": "%d 件の動画を検出、%.1f 秒間隔・%d ワーカーで抽出します",
		"Failed to write report: %s": "レポートの書き込みに失敗しました: %s",
		"Report saved to %s":         "レポートを %s に保存しました",
	})
}
