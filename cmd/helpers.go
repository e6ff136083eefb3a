package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/francesca-tabor-ai/MATURITY-OS-sub001/internal/benchmark"
	"github.com/francesca-tabor-ai/MATURITY-OS-sub001/internal/classify"
	"github.com/francesca-tabor-ai/MATURITY-OS-sub001/internal/model"
	"github.com/francesca-tabor-ai/MATURITY-OS-sub001/internal/scoring"
	"github.com/francesca-tabor-ai/MATURITY-OS-sub001/internal/store"
)

func initStore(ctx context.Context) (store.Store, error) {
	st, err := store.Open(ctx, cfg.Store)
	if err != nil {
		return nil, err
	}
	if err := st.Migrate(ctx); err != nil {
		st.Close() //nolint:errcheck
		return nil, eris.Wrap(err, "migrate store")
	}
	return st, nil
}

// readJSONFile decodes a JSON input file into out. "-" reads stdin.
func readJSONFile(path string, out any) error {
	var data []byte
	var err error
	if path == "-" {
		data, err = os.ReadFile("/dev/stdin")
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return eris.Wrapf(err, "read input %s", path)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return eris.Wrapf(err, "parse input %s", path)
	}
	return nil
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return eris.Wrap(enc.Encode(v), "encode output")
}

// loadRuleTable resolves the classification rule table: the configured YAML
// file when present, the built-in table otherwise.
func loadRuleTable() (classify.RuleTable, error) {
	if cfg.Classify.RuleTablePath == "" {
		return classify.DefaultRuleTable(), nil
	}
	return classify.LoadRuleTable(cfg.Classify.RuleTablePath)
}

// resolveBenchmark looks up the benchmark for the flag value, falling back
// to the configured default.
func resolveBenchmark(id string) benchmark.Benchmark {
	if id == "" {
		id = cfg.Benchmark.DefaultID
	}
	return benchmark.Lookup(id)
}

// scoreAudit scores inputs with the configured weight vector for the
// variant, falling back to the built-in defaults. Both the CLI and the API
// route through here so weights always come from configuration.
func scoreAudit(inputs model.AuditInputs, variant model.AuditVariant) (model.MaturityResult, model.ResultKind, error) {
	switch variant {
	case model.AuditVariantData:
		weights := cfg.Scoring.DataWeights
		if len(weights) == 0 {
			weights = scoring.DefaultDataWeights()
		}
		if err := scoring.ValidateWeights(weights, scoring.DataCategories); err != nil {
			return model.MaturityResult{}, "", err
		}
		return scoring.CalculateData(inputs, weights), model.ResultKindDataMaturity, nil
	case model.AuditVariantAI:
		weights := cfg.Scoring.AIWeights
		if len(weights) == 0 {
			weights = scoring.DefaultAIWeights()
		}
		if err := scoring.ValidateWeights(weights, scoring.AICategories); err != nil {
			return model.MaturityResult{}, "", err
		}
		return scoring.CalculateAI(inputs, weights), model.ResultKindAIMaturity, nil
	default:
		return model.MaturityResult{}, "", eris.Errorf("unknown audit variant %q", variant)
	}
}

// saveResult persists an engine output when --save is set.
func saveResult(ctx context.Context, save bool, orgID string, kind model.ResultKind, payload any) error {
	if !save {
		return nil
	}
	if orgID == "" {
		return eris.New("--org is required with --save")
	}

	st, err := initStore(ctx)
	if err != nil {
		return err
	}
	defer st.Close() //nolint:errcheck

	r, err := st.SaveResult(ctx, orgID, kind, payload)
	if err != nil {
		return err
	}
	zap.L().Info("result saved",
		zap.String("id", r.ID),
		zap.String("org", orgID),
		zap.String("kind", string(kind)),
	)
	fmt.Fprintf(os.Stderr, "Saved result %s\n", r.ID)
	return nil
}
