package global

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// rollingFileWriter appends to a single log file and archives it once it
// grows past maxLogSize, keeping at most maxLogs archives around.
type rollingFileWriter struct {
	FileDirectory string
	FileName      string
}

const (
	mb         = 1000000
	maxLogSize = 2.5 * mb
	maxLogs    = 2
)

func NewRollingFileWriter(fileDir string, fileName string) rollingFileWriter {
	absFileDir, err := filepath.Abs(fileDir)
	if err != nil {
		panic(err)
	}

	if err := os.MkdirAll(absFileDir, 0750); err != nil {
		panic(err)
	}

	return rollingFileWriter{
		FileDirectory: absFileDir,
		FileName:      fileName,
	}
}

func (w rollingFileWriter) mainLogPath() string {
	return filepath.Join(w.FileDirectory, fmt.Sprintf("%s.log", w.FileName))
}

func (w rollingFileWriter) Write(b []byte) (int, error) {
	logFile, err := os.OpenFile(w.mainLogPath(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return 0, err
	}

	stats, err := logFile.Stat()
	if err != nil {
		logFile.Close()
		return 0, err
	}

	if stats.Size() < maxLogSize {
		defer logFile.Close()
		return logFile.Write(b)
	}

	// main file is full: archive it and start a fresh one
	logFile.Close()
	if err := w.archive(); err != nil {
		return 0, err
	}

	logFile, err = os.OpenFile(w.mainLogPath(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return 0, err
	}
	defer logFile.Close()

	return logFile.Write(b)
}

func (w rollingFileWriter) archive() error {
	archives, err := w.archivedLogs()
	if err != nil {
		return err
	}

	nextIndex := 1
	if len(archives) > 0 {
		nextIndex = logIndex(w.FileName, archives[len(archives)-1]) + 1
	}

	archived := filepath.Join(w.FileDirectory, fmt.Sprintf("%s-%d.log", w.FileName, nextIndex))
	if err := os.Rename(w.mainLogPath(), archived); err != nil {
		return err
	}

	archives = append(archives, filepath.Base(archived))

	// trim the oldest archives
	for len(archives) > maxLogs {
		if err := os.Remove(filepath.Join(w.FileDirectory, archives[0])); err != nil {
			return err
		}
		archives = archives[1:]
	}

	return nil
}

// archivedLogs lists name-N.log files, oldest index first.
func (w rollingFileWriter) archivedLogs() ([]string, error) {
	fileSystem := os.DirFS(w.FileDirectory)

	matches, err := fs.Glob(fileSystem, w.FileName+"-*.log")
	if err != nil {
		return nil, err
	}

	sort.Slice(matches, func(i, j int) bool {
		return logIndex(w.FileName, matches[i]) < logIndex(w.FileName, matches[j])
	})

	return matches, nil
}

func logIndex(baseName string, logName string) int {
	trimmed := strings.TrimSuffix(filepath.Base(logName), ".log")
	trimmed = strings.TrimPrefix(trimmed, baseName+"-")

	index := 0
	fmt.Sscanf(trimmed, "%d", &index)

	return index
}
