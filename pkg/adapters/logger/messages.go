package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Probe stage
		"Probing duration of %s":        "%s の再生時間を取得中",
		"Duration of %s: %.3f seconds":  "%s の再生時間: %.3f 秒",

		// Render stage
		"Rendering %d frames from %s": "%[2]s から %[1]d フレームを抽出中",

		// Orchestrator
		"Batch %s: %d video(s) with %d worker(s)": "バッチ %s: %d 件の動画を %d ワーカーで処理",
		"Batch completed: %d/%d frames written":   "バッチ完了: %d/%d フレームを書き込みました",

		// QA sampling
		"Sampling %d directories for validation": "%d 個のディレクトリを検証のためサンプリング中",

		// Contact sheet
		"Contact sheet failed for %s: %s": "%s のコンタクトシート生成に失敗しました: %s",
		"Contact sheet written: %s":       "コンタクトシートを書き込みました: %s",

		// Warnings and errors
		"MP4 fast path failed for %s, falling back to ffprobe: %s": "%s のMP4高速解析に失敗しました。ffprobeにフォールバックします: %s",
	})
}
