package mongoconfig

import (
	"os"
	"path/filepath"
	"strings"
)

// DefaultAppName is used when the running executable cannot be determined.
const DefaultAppName = "main"

// AppName derives a fallback database name from the running executable:
// its base name without extension.
func AppName() string {
	path, err := os.Executable()
	if err != nil || path == "" {
		if len(os.Args) == 0 {
			return DefaultAppName
		}
		path = os.Args[0]
	}
	return appNameFromPath(path)
}

func appNameFromPath(path string) string {
	base := filepath.Base(path)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	if name == "" || name == "." || name == string(filepath.Separator) {
		return DefaultAppName
	}
	return name
}
