package internal

import (
	"fmt"

	"fundsignal/internal/domain"

	"github.com/shopspring/decimal"
)

// ClassifySignal maps a comprehensive score onto a signal via fixed
// thresholds. marketCap is carried through unused; it is reserved for a
// future tie-break rule and must not influence the decision yet.
func ClassifySignal(comprehensive float64, marketCap decimal.Decimal) domain.Signal {
	switch {
	case comprehensive >= 80:
		return domain.Signal{
			Kind:       domain.SignalBullish,
			Confidence: comprehensive,
			Reasoning:  fmt.Sprintf("comprehensive score %.1f%%: very strong investment candidate", comprehensive),
		}
	case comprehensive >= 60:
		return domain.Signal{
			Kind:       domain.SignalBullish,
			Confidence: comprehensive,
			Reasoning:  fmt.Sprintf("comprehensive score %.1f%%: good investment candidate", comprehensive),
		}
	case comprehensive >= 40:
		return domain.Signal{
			Kind:       domain.SignalNeutral,
			Confidence: 50,
			Reasoning:  fmt.Sprintf("comprehensive score %.1f%%: neutral investment candidate", comprehensive),
		}
	default:
		return domain.Signal{
			Kind:       domain.SignalBearish,
			Confidence: 100 - comprehensive,
			Reasoning:  fmt.Sprintf("comprehensive score %.1f%%: caution warranted", comprehensive),
		}
	}
}
