package screen

import (
	"fmt"
	"os"
)

// logDebugf appends to the debug log if TEXELHOST_DEBUG is set.
func logDebugf(format string, args ...interface{}) {
	if os.Getenv("TEXELHOST_DEBUG") == "" {
		return
	}
	debugFile, err := os.OpenFile("/tmp/texelhost-debug.log", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	defer debugFile.Close()
	fmt.Fprintf(debugFile, "[SCREEN] "+format+"\n", args...)
}
