package main

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"

	"prontuario/pkg/core/record"
	"prontuario/pkg/core/render"
)

// gerar renders a saved note snapshot to the final progress-note text.
// Usage: gerar <snapshot.json>   (or "-" to read from stdin)
func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: gerar <snapshot.json>")
		os.Exit(1)
	}

	var (
		data []byte
		err  error
	)
	if os.Args[1] == "-" {
		data, err = ioutil.ReadAll(os.Stdin)
	} else {
		data, err = ioutil.ReadFile(os.Args[1])
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read snapshot: %v\n", err)
		os.Exit(1)
	}

	// Accept both the bare snapshot and the export envelope used by the API.
	var envelope struct {
		Snapshot *record.Snapshot `json:"snapshot"`
	}
	var snap record.Snapshot
	if err := json.Unmarshal(data, &envelope); err == nil && envelope.Snapshot != nil {
		snap = *envelope.Snapshot
	} else if err := json.Unmarshal(data, &snap); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to parse snapshot: %v\n", err)
		os.Exit(1)
	}

	n := record.New()
	n.Restore(snap)
	fmt.Println(render.Render(n))
}
