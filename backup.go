package main

import (
	"io"
	"os"
	"path/filepath"
	"time"

	zlog "github.com/rs/zerolog/log"
)

// startDailyBackupAtFixedTime copies the uploads dir into a timestamped
// backup folder once a day at the given hour and prunes backups older than
// the retention window. Uploaded images are the only local state the
// service holds, so they are the only thing backed up.
func startDailyBackupAtFixedTime(srcDir, backupDir string, retention time.Duration, hour, min int) {
	for {
		now := time.Now()
		next := time.Date(now.Year(), now.Month(), now.Day(), hour, min, 0, 0, now.Location())
		if !next.After(now) {
			next = next.Add(24 * time.Hour)
		}
		zlog.Info().Time("next", next).Msg("uploads backup scheduled")
		time.Sleep(next.Sub(now))

		timestamp := time.Now().Format("2006-01-02_15-04-05")
		destDir := filepath.Join(backupDir, timestamp)

		if err := copyDir(srcDir, destDir); err != nil {
			zlog.Error().Err(err).Msg("uploads backup failed")
		} else {
			zlog.Info().Str("dest", destDir).Msg("uploads backed up")
		}

		cleanupOldBackups(backupDir, retention)
	}
}

func copyDir(src, dest string) error {
	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dest, 0755); err != nil {
		return err
	}
	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		destPath := filepath.Join(dest, entry.Name())

		if entry.IsDir() {
			if err := copyDir(srcPath, destPath); err != nil {
				return err
			}
		} else {
			if err := copyFile(srcPath, destPath); err != nil {
				return err
			}
		}
	}
	return nil
}

func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err = io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}

func cleanupOldBackups(backupDir string, retention time.Duration) {
	entries, err := os.ReadDir(backupDir)
	if err != nil {
		zlog.Error().Err(err).Msg("failed to read backup directory")
		return
	}

	cutoff := time.Now().Add(-retention)

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		folderPath := filepath.Join(backupDir, entry.Name())
		info, err := os.Stat(folderPath)
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			if err := os.RemoveAll(folderPath); err != nil {
				zlog.Error().Err(err).Str("path", folderPath).Msg("failed to remove old backup")
			} else {
				zlog.Info().Str("path", folderPath).Msg("removed old backup")
			}
		}
	}
}
