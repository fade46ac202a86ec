// Package discover finds video files eligible for frame extraction.
package discover

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

var videoExtensions = map[string]struct{}{
	".mp4":  {},
	".mkv":  {},
	".avi":  {},
	".mov":  {},
	".webm": {},
	".flv":  {},
	".m4v":  {},
	".mpg":  {},
	".mpeg": {},
	".ts":   {},
}

// IsVideo reports whether the path has a supported video extension.
func IsVideo(path string) bool {
	_, ok := videoExtensions[strings.ToLower(filepath.Ext(path))]
	return ok
}

// Videos returns the supported video files under inputDir in lexical
// order. With recursive set, subdirectories are searched as well.
func Videos(inputDir string, recursive bool) ([]string, error) {
	var videos []string

	if recursive {
		err := filepath.WalkDir(inputDir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && IsVideo(path) {
				videos = append(videos, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	} else {
		entries, err := os.ReadDir(inputDir)
		if err != nil {
			return nil, err
		}
		for _, entry := range entries {
			if !entry.IsDir() && IsVideo(entry.Name()) {
				videos = append(videos, filepath.Join(inputDir, entry.Name()))
			}
		}
	}

	sort.Strings(videos)
	return videos, nil
}

// OutputDir resolves the per-video output directory: under outputRoot when
// one is configured, otherwise beside the source video. Both use the video
// file's stem as the directory name.
func OutputDir(videoPath, outputRoot string) string {
	stem := strings.TrimSuffix(filepath.Base(videoPath), filepath.Ext(videoPath))
	if outputRoot != "" {
		return filepath.Join(outputRoot, stem)
	}
	return filepath.Join(filepath.Dir(videoPath), stem)
}
