// Package fileutil provides file predicates and backup-then-write
// helpers for destructive CLI operations.
package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// backupStamp is the timestamp layout embedded in backup filenames.
const backupStamp = "20060102_150405"

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather
// than a bare name. A string containing path separators is a path.
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, `/\`)
}

// Backup copies path to <dir>/<stem>_<timestamp><ext> and returns the
// backup path. An empty dir places the backup alongside the original.
// The timestamp comes from now, injected so tests get stable names.
func Backup(path, dir string, now func() time.Time) (string, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- caller-provided path
	if err != nil {
		return "", fmt.Errorf("reading file for backup: %w", err)
	}

	if dir == "" {
		dir = filepath.Dir(path)
	} else if err := os.MkdirAll(dir, dirPermissions); err != nil {
		return "", fmt.Errorf("creating backup directory: %w", err)
	}

	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(filepath.Base(path), ext)
	backupPath := filepath.Join(dir, stem+"_"+now().Format(backupStamp)+ext)

	if err := os.WriteFile(backupPath, data, filePermissions); err != nil {
		return "", fmt.Errorf("writing backup: %w", err)
	}
	return backupPath, nil
}

// WriteFileBackup writes data to path, backing up any existing file
// first. Returns the backup path, empty when nothing existed to back up.
func WriteFileBackup(path string, data []byte, backupDir string, now func() time.Time) (string, error) {
	var backupPath string
	if FileExists(path) {
		var err error
		backupPath, err = Backup(path, backupDir, now)
		if err != nil {
			return "", err
		}
	}

	if err := os.WriteFile(path, data, filePermissions); err != nil {
		return backupPath, fmt.Errorf("writing file: %w", err)
	}
	return backupPath, nil
}
