package classify

import (
	"fmt"
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// tableFile is the on-disk shape of a versioned rule table.
type tableFile struct {
	Version int    `yaml:"version"`
	Rules   []Rule `yaml:"rules"`
}

// LoadRuleTable reads a rule table from a YAML file, preserving declaration
// order. Rule tables are redeploy-time configuration: load once at startup
// and treat the result as immutable.
func LoadRuleTable(path string) (RuleTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "classify: read rule table %s", path)
	}

	var tf tableFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return nil, eris.Wrapf(err, "classify: parse rule table %s", path)
	}
	if len(tf.Rules) == 0 {
		return nil, eris.Errorf("classify: rule table %s contains no rules", path)
	}

	table := RuleTable(tf.Rules)
	if err := ValidateTable(table); err != nil {
		return nil, err
	}
	return table, nil
}

// ValidateTable checks that every rule's ranges are well-formed and inside
// [0,100]. Overlaps are allowed (first match wins) but inverted or
// out-of-bounds ranges are authoring mistakes.
func ValidateTable(table RuleTable) error {
	var errs []string
	for i, r := range table {
		if r.DataMin > r.DataMax {
			errs = append(errs, fmt.Sprintf("rule %d: data_min > data_max", i))
		}
		if r.AIMin > r.AIMax {
			errs = append(errs, fmt.Sprintf("rule %d: ai_min > ai_max", i))
		}
		if r.DataMin < 0 || r.DataMax > 100 || r.AIMin < 0 || r.AIMax > 100 {
			errs = append(errs, fmt.Sprintf("rule %d: range outside [0,100]", i))
		}
		if r.Classification == "" {
			errs = append(errs, fmt.Sprintf("rule %d: classification is empty", i))
		}
	}
	if len(errs) > 0 {
		return eris.Errorf("classify: rule table validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}
