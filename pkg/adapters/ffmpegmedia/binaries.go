// Package ffmpegmedia drives the external ffmpeg and ffprobe binaries.
package ffmpegmedia

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
)

// ErrBinaryNotFound is returned when a required binary cannot be located.
var ErrBinaryNotFound = errors.New("required binary not found")

// FindFFmpeg searches for ffmpeg.
// Priority: 1) customPath, 2) FFMPEG_PATH env, 3) PATH, 4) common locations
func FindFFmpeg(customPath string) (string, error) {
	return findBinary("ffmpeg", customPath, "FFMPEG_PATH")
}

// FindFFprobe searches for ffprobe with the same priority as FindFFmpeg,
// reading the FFPROBE_PATH environment variable.
func FindFFprobe(customPath string) (string, error) {
	return findBinary("ffprobe", customPath, "FFPROBE_PATH")
}

func findBinary(name, customPath, envVar string) (string, error) {
	// Check custom path first
	if customPath != "" {
		if _, err := os.Stat(customPath); err == nil {
			return customPath, nil
		}
		return "", fmt.Errorf("%w: custom path %s not found", ErrBinaryNotFound, customPath)
	}

	// Check environment variable
	if envPath := os.Getenv(envVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath, nil
		}
		return "", fmt.Errorf("%w: %s %s not found", ErrBinaryNotFound, envVar, envPath)
	}

	// Check PATH
	execName := name
	if runtime.GOOS == "windows" {
		execName = name + ".exe"
	}

	path, err := exec.LookPath(execName)
	if err == nil {
		return path, nil
	}

	// Check common locations
	for _, p := range commonLocations(name) {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}

	return "", fmt.Errorf("%w: %s", ErrBinaryNotFound, name)
}

func commonLocations(name string) []string {
	switch runtime.GOOS {
	case "windows":
		return []string{
			`C:\ffmpeg\bin\` + name + `.exe`,
			`C:\Program Files\ffmpeg\bin\` + name + `.exe`,
			`C:\Program Files (x86)\ffmpeg\bin\` + name + `.exe`,
		}
	case "darwin":
		return []string{
			"/opt/homebrew/bin/" + name,
			"/usr/local/bin/" + name,
			"/usr/bin/" + name,
		}
	default:
		return []string{
			"/usr/bin/" + name,
			"/usr/local/bin/" + name,
			"/opt/homebrew/bin/" + name,
			"/snap/bin/" + name,
		}
	}
}
