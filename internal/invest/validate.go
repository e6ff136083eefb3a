package invest

import (
	"fmt"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/francesca-tabor-ai/MATURITY-OS-sub001/internal/model"
)

// ValidateOrdering rejects any target maturity below the current one. This
// is the one hard precondition in the gap-based engines; every other
// malformed numeric input is clamped instead.
func ValidateOrdering(current, target model.ScorePair) error {
	var errs []string
	if target.DataScore < current.DataScore {
		errs = append(errs, fmt.Sprintf("data target %.1f below current %.1f", target.DataScore, current.DataScore))
	}
	if target.AIScore < current.AIScore {
		errs = append(errs, fmt.Sprintf("ai target %.1f below current %.1f", target.AIScore, current.AIScore))
	}
	if len(errs) > 0 {
		return eris.Errorf("invest: target must be >= current: %s", strings.Join(errs, "; "))
	}
	return nil
}
