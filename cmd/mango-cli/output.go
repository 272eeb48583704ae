package main

import (
	"encoding/json"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/vrsandeep/mango-chapters/internal/chapter"
)

var (
	titleStyle   = color.New(color.Bold)
	numberStyle  = color.New(color.FgGreen, color.Bold)
	warningStyle = color.New(color.FgYellow)
	labelStyle   = color.New(color.FgCyan)
	successStyle = color.New(color.FgGreen)
)

// formatNumber prints a chapter number the way it was written, or
// "unrecognized".
func formatNumber(n float64) string {
	if n < 0 {
		return "unrecognized"
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}

func writeNumber(w io.Writer, n float64) {
	if n < 0 {
		warningStyle.Fprint(w, formatNumber(n))
		return
	}
	numberStyle.Fprint(w, formatNumber(n))
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// parseOutput is the JSON form of one recognised chapter.
type parseOutput struct {
	Chapter string `json:"chapter"`
	chapter.Recognition
}
