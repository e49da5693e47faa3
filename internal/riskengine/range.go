package riskengine

import (
	"time"

	"github.com/shopspring/decimal"
)

// DayKeyFormat is the calendar-day key used to bucket trades for a range run.
const DayKeyFormat = "2006-01-02"

// RangeVerdict folds per-day verdicts over a date span. Every evaluated day is
// counted in exactly one of the three buckets, so the counts partition
// len(Results). Days without trades produce no result at all.
type RangeVerdict struct {
	Results        []DayVerdict    `json:"results"`
	GreedyDays     int             `json:"greedy_days"`
	LossBreachDays int             `json:"loss_breach_days"`
	CompliantDays  int             `json:"compliant_days"`
	TotalImpact    decimal.Decimal `json:"total_impact"`
}

// EvaluateRange runs the day simulator for every calendar day from start to
// end inclusive and aggregates the verdicts. Days absent from tradesByDay are
// skipped entirely, not counted as compliant.
func EvaluateRange(start, end time.Time, goal, maxLoss decimal.Decimal, tradesByDay map[string][]TradeOutcome) (RangeVerdict, error) {
	if end.Before(start) {
		return RangeVerdict{}, invalidf("range end %s is before start %s",
			end.Format(DayKeyFormat), start.Format(DayKeyFormat))
	}

	verdict := RangeVerdict{Results: []DayVerdict{}, TotalImpact: decimal.Zero}
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		key := day.Format(DayKeyFormat)
		trades := tradesByDay[key]
		if len(trades) == 0 {
			continue
		}
		dayVerdict, err := EvaluateDay(key, goal, maxLoss, trades)
		if err != nil {
			return RangeVerdict{}, err
		}
		verdict.Results = append(verdict.Results, dayVerdict)
		switch {
		case dayVerdict.Greedy:
			verdict.GreedyDays++
		case dayVerdict.LossBreach:
			verdict.LossBreachDays++
		default:
			verdict.CompliantDays++
		}
		verdict.TotalImpact = verdict.TotalImpact.Add(dayVerdict.Impact)
	}
	return verdict, nil
}

// Rounded returns a boundary copy with every monetary field at two fraction digits.
func (v RangeVerdict) Rounded() RangeVerdict {
	out := v
	out.Results = make([]DayVerdict, len(v.Results))
	for i, day := range v.Results {
		out.Results[i] = day.Rounded()
	}
	out.TotalImpact = v.TotalImpact.Round(2)
	return out
}
