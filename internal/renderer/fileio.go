package renderer

import (
	"os"
)

// writeFile writes data to a file, truncating any previous content
func writeFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0644)
}
