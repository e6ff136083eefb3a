package model

import "time"

// ResultKind identifies which engine produced a stored result row.
type ResultKind string

const (
	ResultKindDataMaturity   ResultKind = "data_maturity"
	ResultKindAIMaturity     ResultKind = "ai_maturity"
	ResultKindClassification ResultKind = "classification"
	ResultKindDistribution   ResultKind = "distribution"
	ResultKindGapAnalysis    ResultKind = "gap_analysis"
	ResultKindFinancial      ResultKind = "financial_impact"
	ResultKindFinancialModel ResultKind = "financial_model"
	ResultKindRisk           ResultKind = "risk_assessment"
	ResultKindProjectRisk    ResultKind = "project_risk"
	ResultKindInvestment     ResultKind = "investment"
	ResultKindCompetitive    ResultKind = "competitive_position"
	ResultKindRoadmap        ResultKind = "roadmap"
	ResultKindSimulation     ResultKind = "simulation"
	ResultKindValuation      ResultKind = "valuation_adjustment"
)

// AuditVariant distinguishes the two self-assessment questionnaires.
type AuditVariant string

const (
	AuditVariantData AuditVariant = "data"
	AuditVariantAI   AuditVariant = "ai"
)

// Audit is a stored raw self-assessment submission. IDs and timestamps are
// assigned by the store, never by the engine.
type Audit struct {
	ID        string       `json:"id"`
	OrgID     string       `json:"org_id"`
	Variant   AuditVariant `json:"variant"`
	Inputs    AuditInputs  `json:"inputs"`
	CreatedAt time.Time    `json:"created_at"`
}

// Result is a stored engine output of any kind, serialized as JSON.
type Result struct {
	ID        string     `json:"id"`
	OrgID     string     `json:"org_id"`
	Kind      ResultKind `json:"kind"`
	Payload   []byte     `json:"payload"`
	CreatedAt time.Time  `json:"created_at"`
}

// DistributionStats summarises a numeric sample. An empty sample yields the
// zero value with Count 0.
type DistributionStats struct {
	Mean     float64   `json:"mean"`
	Median   float64   `json:"median"`
	StdDev   float64   `json:"std_dev"`
	Q1       float64   `json:"q1"`
	Q3       float64   `json:"q3"`
	Min      float64   `json:"min"`
	Max      float64   `json:"max"`
	Count    int       `json:"count"`
	Outliers []float64 `json:"outliers,omitempty"`
}
