package mapload

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// MapEntry is one discoverable map file.
type MapEntry struct {
	Name string // display name from the map file, falling back to the filename
	Path string
}

// ScanMaps lists the map files under dir, sorted by path. Files that are not
// valid map JSON are skipped rather than failing the scan, so one broken
// work-in-progress file does not hide the rest.
func ScanMaps(dir string) ([]MapEntry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read maps directory %s: %w", dir, err)
	}

	var maps []MapEntry
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		path := filepath.Join(dir, entry.Name())

		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var header struct {
			Name  string `json:"name"`
			Width int    `json:"width"`
		}
		if err := json.Unmarshal(data, &header); err != nil || header.Width <= 0 {
			continue
		}

		name := header.Name
		if name == "" {
			name = strings.TrimSuffix(entry.Name(), ".json")
		}
		maps = append(maps, MapEntry{Name: name, Path: path})
	}

	sort.Slice(maps, func(i, j int) bool { return maps[i].Path < maps[j].Path })
	return maps, nil
}
