package service

import (
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"

	"github.com/set-night/crystalbot/internal/domain"
)

// PickRandom returns one regular file from the folder, chosen uniformly.
// Listing is flat and uncached; repeats across calls are expected. A missing
// or empty folder yields domain.ErrNoMedia.
func PickRandom(folder string) (string, error) {
	abs, err := filepath.Abs(folder)
	if err != nil {
		return "", fmt.Errorf("resolve folder: %w", err)
	}

	info, err := os.Stat(abs)
	if err != nil || !info.IsDir() {
		return "", domain.ErrNoMedia
	}

	entries, err := os.ReadDir(abs)
	if err != nil {
		return "", fmt.Errorf("list folder: %w", err)
	}

	var files []string
	for _, e := range entries {
		if e.Type().IsRegular() {
			files = append(files, filepath.Join(abs, e.Name()))
		}
	}
	if len(files) == 0 {
		return "", domain.ErrNoMedia
	}

	return files[rand.IntN(len(files))], nil
}
