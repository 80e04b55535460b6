package utils

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
)

// DebugEnv is the variable LoadConfig reads to switch debug mode on.
const DebugEnv = "CALC_DEBUG"

var (
	debugMode = false

	// output is where every Print* helper writes.
	output io.Writer = color.Output

	infoColor   = color.New(color.FgCyan)
	resultColor = color.New(color.FgGreen)
	errorColor  = color.New(color.FgRed, color.Bold)
)

// SetOutput redirects the Print* helpers and returns the previous writer.
func SetOutput(w io.Writer) io.Writer {
	prev := output
	output = w
	return prev
}

// PrintInfo writes an [INFO] line.
func PrintInfo(message string) {
	infoColor.Fprintf(output, "[INFO] %s\n", message)
}

// PrintDebug writes a [DEBUG] line when debug mode is on.
func PrintDebug(format string, args ...interface{}) {
	if !debugMode {
		return
	}
	fmt.Fprintf(output, "[DEBUG] "+format+"\n", args...)
}

// PrintResult writes "label = value" with the value highlighted.
func PrintResult(label string, value interface{}) {
	fmt.Fprintf(output, "%s = %s\n", label, resultColor.Sprint(value))
}

// PrintError writes "label: err" in red.
func PrintError(label string, err error) {
	errorColor.Fprintf(output, "%s: %v\n", label, err)
}

func SetDebugMode(mode bool) {
	debugMode = mode
}

func GetDebugMode() bool {
	return debugMode
}

// LoadConfig loads the given dotenv files (".env" when none are given) and
// applies CALC_DEBUG. Missing files are skipped.
func LoadConfig(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("loading %s: %w", p, err)
		}
	}

	raw, ok := os.LookupEnv(DebugEnv)
	if !ok || raw == "" {
		return nil
	}
	mode, err := strconv.ParseBool(raw)
	if err != nil {
		return fmt.Errorf("%s=%q: %w", DebugEnv, raw, err)
	}
	SetDebugMode(mode)
	return nil
}
