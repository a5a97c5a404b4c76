package metrics

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// StorageReport is the admin view of the installation: contribution
// counts, storage footprint, and process health.
type StorageReport struct {
	Contributions int    `json:"contributions"`
	ActiveRegions int    `json:"activeRegions"`
	StorageSize   string `json:"storageSize"`
	AllocMB       uint64 `json:"allocMb"`
	SysMB         uint64 `json:"sysMb"`
	NumGC         uint32 `json:"numGc"`
	Goroutines    int    `json:"goroutines"`
}

// BuildStorageReport collects real-time health data. dataPath is the
// data directory whose on-disk size is reported.
func BuildStorageReport(dataPath string, contributions, activeRegions int) StorageReport {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	return StorageReport{
		Contributions: contributions,
		ActiveRegions: activeRegions,
		StorageSize:   calculateDirSize(dataPath),
		AllocMB:       m.Alloc / 1024 / 1024,
		SysMB:         m.Sys / 1024 / 1024,
		NumGC:         m.NumGC,
		Goroutines:    runtime.NumGoroutine(),
	}
}

func calculateDirSize(path string) string {
	var size int64
	_ = filepath.Walk(path, func(_ string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			size += info.Size()
		}
		return nil
	})

	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}
	div, exp := int64(unit), 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(size)/float64(div), "KMGTPE"[exp])
}
