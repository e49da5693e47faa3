package analytics

import (
	"github.com/shopspring/decimal"
)

// KPIs summarizes a sequence of realized trade P&Ls over some window.
type KPIs struct {
	TotalPL      decimal.Decimal `json:"total_pl"`
	WinRate      decimal.Decimal `json:"win_rate"`
	Expectancy   decimal.Decimal `json:"expectancy"`
	ProfitFactor decimal.Decimal `json:"profit_factor"`
	MaxGain      decimal.Decimal `json:"max_gain"`
	MaxLoss      decimal.Decimal `json:"max_loss"`
	MaxDrawdown  decimal.Decimal `json:"max_drawdown"`
	TotalTrades  int             `json:"total_trades"`

	MaxWinStreak    int             `json:"max_win_streak"`
	MaxWinStreakPL  decimal.Decimal `json:"max_win_streak_pl"`
	MaxLossStreak   int             `json:"max_loss_streak"`
	MaxLossStreakPL decimal.Decimal `json:"max_loss_streak_pl"`
}

// Compute derives all KPIs in one pass over the chronological P&L sequence.
// An empty sequence yields all-zero KPIs.
func Compute(pnls []decimal.Decimal) KPIs {
	k := KPIs{
		TotalPL:         decimal.Zero,
		WinRate:         decimal.Zero,
		Expectancy:      decimal.Zero,
		ProfitFactor:    decimal.Zero,
		MaxGain:         decimal.Zero,
		MaxLoss:         decimal.Zero,
		MaxDrawdown:     decimal.Zero,
		MaxWinStreakPL:  decimal.Zero,
		MaxLossStreakPL: decimal.Zero,
	}
	if len(pnls) == 0 {
		return k
	}

	k.TotalTrades = len(pnls)
	wins := 0
	grossProfit := decimal.Zero
	grossLoss := decimal.Zero
	cumulative := decimal.Zero
	peak := decimal.Zero

	winStreak, lossStreak := 0, 0
	winStreakPL, lossStreakPL := decimal.Zero, decimal.Zero

	for _, pl := range pnls {
		k.TotalPL = k.TotalPL.Add(pl)
		if pl.GreaterThan(k.MaxGain) {
			k.MaxGain = pl
		}
		if pl.LessThan(k.MaxLoss) {
			k.MaxLoss = pl
		}

		switch {
		case pl.Sign() > 0:
			wins++
			grossProfit = grossProfit.Add(pl)
			winStreak++
			winStreakPL = winStreakPL.Add(pl)
			lossStreak, lossStreakPL = 0, decimal.Zero
		case pl.Sign() < 0:
			grossLoss = grossLoss.Add(pl.Abs())
			lossStreak++
			lossStreakPL = lossStreakPL.Add(pl.Abs())
			winStreak, winStreakPL = 0, decimal.Zero
		default:
			winStreak, winStreakPL = 0, decimal.Zero
			lossStreak, lossStreakPL = 0, decimal.Zero
		}
		if winStreak > k.MaxWinStreak {
			k.MaxWinStreak = winStreak
			k.MaxWinStreakPL = winStreakPL
		}
		if lossStreak > k.MaxLossStreak {
			k.MaxLossStreak = lossStreak
			k.MaxLossStreakPL = lossStreakPL
		}

		cumulative = cumulative.Add(pl)
		if cumulative.GreaterThan(peak) {
			peak = cumulative
		}
		if dd := peak.Sub(cumulative); dd.GreaterThan(k.MaxDrawdown) {
			k.MaxDrawdown = dd
		}
	}

	count := decimal.NewFromInt(int64(len(pnls)))
	k.WinRate = decimal.NewFromInt(int64(wins)).Div(count).Mul(decimal.NewFromInt(100))
	k.Expectancy = k.TotalPL.Div(count)
	if grossLoss.IsZero() {
		// No losing trades: report gross profit itself rather than dividing by zero.
		k.ProfitFactor = grossProfit
	} else {
		k.ProfitFactor = grossProfit.Div(grossLoss)
	}
	return k
}

// Rounded returns a boundary copy with monetary and ratio fields at two fraction digits.
func (k KPIs) Rounded() KPIs {
	out := k
	out.TotalPL = k.TotalPL.Round(2)
	out.WinRate = k.WinRate.Round(2)
	out.Expectancy = k.Expectancy.Round(2)
	out.ProfitFactor = k.ProfitFactor.Round(2)
	out.MaxGain = k.MaxGain.Round(2)
	out.MaxLoss = k.MaxLoss.Round(2)
	out.MaxDrawdown = k.MaxDrawdown.Round(2)
	out.MaxWinStreakPL = k.MaxWinStreakPL.Round(2)
	out.MaxLossStreakPL = k.MaxLossStreakPL.Round(2)
	return out
}
