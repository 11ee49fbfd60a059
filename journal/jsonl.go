package journal

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
)

// ExportJSONL writes events to w as JSON Lines, one event per line, in
// the order given.
func ExportJSONL(w io.Writer, events []*Event) error {
	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)
	for _, ev := range events {
		if err := enc.Encode(ev); err != nil {
			return fmt.Errorf("encoding event %s: %w", ev.ID, err)
		}
	}
	return bw.Flush()
}

// ImportJSONL reads events from a JSON Lines stream in order.
func ImportJSONL(r io.Reader) ([]*Event, error) {
	var events []*Event
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var ev Event
		if err := json.Unmarshal(line, &ev); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		events = append(events, &ev)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return events, nil
}
