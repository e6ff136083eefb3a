// Package compete compares an organisation's maturity scores against a peer
// set. Being ahead of peers contributes zero risk, never a negative one; an
// empty peer set yields explicit neutral defaults rather than an error.
package compete

import (
	"fmt"

	"github.com/francesca-tabor-ai/MATURITY-OS-sub001/internal/model"
	"github.com/francesca-tabor-ai/MATURITY-OS-sub001/internal/stats"
)

// riskGapMultiplier scales the positive peer gap into a 0-100 risk score.
const riskGapMultiplier = 1.2

// Competitor is one peer's scores.
type Competitor struct {
	Name      string  `json:"name"`
	DataScore float64 `json:"data_score"`
	AIScore   float64 `json:"ai_score"`
}

// Report is the competitive position output.
type Report struct {
	DataMaturity   float64         `json:"data_maturity"`
	AIMaturity     float64         `json:"ai_maturity"`
	Competitors    []Competitor    `json:"competitors"`
	RiskLevel      model.RiskLevel `json:"competitive_risk_level"`
	RiskScore      float64         `json:"competitive_risk_score"`
	AdvantageScore float64         `json:"competitive_advantage_score"`
	Strengths      []string        `json:"strengths"`
	Weaknesses     []string        `json:"weaknesses"`
}

// Analyze scores the organisation against its peer set. With zero
// competitors the risk score is computed against self (zero) and the
// advantage score is the neutral 50.
func Analyze(org model.ScorePair, competitors []Competitor) Report {
	orgAvg := clampPair(&org)

	report := Report{
		DataMaturity: org.DataScore,
		AIMaturity:   org.AIScore,
		Competitors:  competitors,
	}

	if len(competitors) == 0 {
		report.RiskScore = 0
		report.RiskLevel = model.RiskLevelLow
		report.AdvantageScore = 50
		report.Strengths = []string{"No peer comparison available; position assessed against self"}
		return report
	}

	var peerSum, bestPeer float64
	for i := range competitors {
		peerAvg := (stats.ClampScore(competitors[i].DataScore) + stats.ClampScore(competitors[i].AIScore)) / 2
		peerSum += peerAvg
		if peerAvg > bestPeer {
			bestPeer = peerAvg
		}
	}
	peerMean := peerSum / float64(len(competitors))

	// Risk comes only from peers being ahead.
	gap := peerMean - orgAvg
	if gap < 0 {
		gap = 0
	}
	risk := stats.ClampScore(stats.Round2(riskGapMultiplier * gap))

	// Advantage starts neutral and shifts with the lead over the peer mean
	// (up to +-30) and the position against the best peer (up to +-20).
	lead := orgAvg - peerMean
	advantage := 50 + stats.Clamp(lead, -30, 30) + stats.Clamp((orgAvg-bestPeer)/2, -20, 20)
	advantage = stats.Round2(stats.ClampScore(advantage))

	report.RiskScore = risk
	report.RiskLevel = riskLevelFor(risk)
	report.AdvantageScore = advantage
	report.Strengths, report.Weaknesses = narrate(org, orgAvg, peerMean, bestPeer)
	return report
}

func clampPair(p *model.ScorePair) float64 {
	p.DataScore = stats.ClampScore(p.DataScore)
	p.AIScore = stats.ClampScore(p.AIScore)
	return p.Avg()
}

func riskLevelFor(score float64) model.RiskLevel {
	switch {
	case score >= 60:
		return model.RiskLevelHigh
	case score >= 30:
		return model.RiskLevelMedium
	default:
		return model.RiskLevelLow
	}
}

// narrate produces qualitative insight lines from the relative position.
func narrate(org model.ScorePair, orgAvg, peerMean, bestPeer float64) (strengths, weaknesses []string) {
	if org.DataScore >= peerMean {
		strengths = append(strengths, fmt.Sprintf("Data maturity (%.0f) at or above the peer average (%.0f)", org.DataScore, peerMean))
	} else {
		weaknesses = append(weaknesses, fmt.Sprintf("Data maturity (%.0f) trails the peer average (%.0f)", org.DataScore, peerMean))
	}
	if org.AIScore >= peerMean {
		strengths = append(strengths, fmt.Sprintf("AI maturity (%.0f) at or above the peer average (%.0f)", org.AIScore, peerMean))
	} else {
		weaknesses = append(weaknesses, fmt.Sprintf("AI maturity (%.0f) trails the peer average (%.0f)", org.AIScore, peerMean))
	}
	if orgAvg >= bestPeer {
		strengths = append(strengths, "Leads every tracked competitor on combined maturity")
	} else if bestPeer-orgAvg > 20 {
		weaknesses = append(weaknesses, fmt.Sprintf("Best-in-class peer leads by %.0f points", bestPeer-orgAvg))
	}
	return strengths, weaknesses
}
