package journal

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"tradelog/calc"
)

// ReadFile loads a trade list from a YAML file holding a top-level
// sequence of trades. Symbols are normalized to upper case and
// directions to LONG/SHORT; a direction the engine cannot understand is
// an error rather than a silently open field.
func ReadFile(path string) ([]Trade, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read trades: %w", err)
	}

	var trades []Trade
	if err := yaml.Unmarshal(data, &trades); err != nil {
		return nil, fmt.Errorf("parse trades %s: %w", path, err)
	}

	for i := range trades {
		t := &trades[i]
		t.Symbol = strings.ToUpper(strings.TrimSpace(t.Symbol))
		dir, err := calc.ParseDirection(string(t.Direction))
		if err != nil {
			return nil, fmt.Errorf("trade %d (%s): %w", i+1, t.Symbol, err)
		}
		t.Direction = dir
	}
	return trades, nil
}
