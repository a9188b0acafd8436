package demo

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
)

// Report summarizes the transforms applied to one tree. Values are
// rendered as shortest-form decimals so IEEE Inf/NaN results survive
// the JSON encoding.
type Report struct {
	Input       string `json:"input"`
	Value       string `json:"value"`
	Folded      string `json:"folded"`
	FoldedValue string `json:"folded_value"`
	NodesBefore int    `json:"nodes_before"`
	NodesAfter  int    `json:"nodes_after"`
	FullyFolded bool   `json:"fully_folded"`
}

// FinalReport summarizes the entire run.
type FinalReport struct {
	Config  Config   `json:"config"`
	Reports []Report `json:"expressions"`
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// WriteText writes the report in human-readable format.
func WriteText(w io.Writer, r FinalReport) {
	for i, rep := range r.Reports {
		fmt.Fprintf(w, "#%d  %s\n", i+1, rep.Input)
		fmt.Fprintf(w, "    value:  %s\n", rep.Value)
		fmt.Fprintf(w, "    folded: %s (%d -> %d nodes)\n",
			rep.Folded, rep.NodesBefore, rep.NodesAfter)
	}
	fmt.Fprintf(w, "%d expressions, profile %s, seed %d\n",
		len(r.Reports), r.Config.Profile, r.Config.Seed)
}

// WriteJSON writes the report as indented JSON.
func WriteJSON(w io.Writer, r FinalReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
