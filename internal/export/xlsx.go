// Package export writes assessment reports as XLSX workbooks for sharing
// with stakeholders who live in spreadsheets.
package export

import (
	"sort"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/francesca-tabor-ai/MATURITY-OS-sub001/internal/classify"
	"github.com/francesca-tabor-ai/MATURITY-OS-sub001/internal/financial"
	"github.com/francesca-tabor-ai/MATURITY-OS-sub001/internal/gaps"
	"github.com/francesca-tabor-ai/MATURITY-OS-sub001/internal/model"
	"github.com/francesca-tabor-ai/MATURITY-OS-sub001/internal/roadmap"
	"github.com/francesca-tabor-ai/MATURITY-OS-sub001/internal/simulate"
)

// Report bundles the engine outputs one workbook covers. Sections are
// optional; nil sections are skipped rather than rendered empty.
type Report struct {
	OrgID          string
	Data           *model.MaturityResult
	AI             *model.MaturityResult
	Classification *classify.Result
	Gaps           *gaps.Analysis
	Financial      *financial.ModelReport
	Roadmap        *roadmap.Roadmap
	Simulation     *simulate.Outcome
}

// WriteWorkbook renders the report to an XLSX file at path.
func WriteWorkbook(path string, r Report) error {
	f := xlsx.NewFile()

	if err := addSummarySheet(f, r); err != nil {
		return err
	}
	if r.Gaps != nil {
		if err := addGapsSheet(f, r.Gaps); err != nil {
			return err
		}
	}
	if r.Financial != nil {
		if err := addFinancialSheet(f, r.Financial); err != nil {
			return err
		}
	}
	if r.Roadmap != nil {
		if err := addRoadmapSheet(f, r.Roadmap); err != nil {
			return err
		}
	}
	if r.Simulation != nil {
		if err := addSimulationSheet(f, r.Simulation); err != nil {
			return err
		}
	}

	return eris.Wrapf(f.Save(path), "export: save workbook %s", path)
}

func addSummarySheet(f *xlsx.File, r Report) error {
	sheet, err := f.AddSheet("Summary")
	if err != nil {
		return eris.Wrap(err, "export: add summary sheet")
	}

	addKV(sheet, "Organisation", r.OrgID)
	if r.Data != nil {
		addKV(sheet, "Data Maturity Score", FormatScore(r.Data.CompositeScore))
		addKV(sheet, "Data Maturity Stage", stageLabel(r.Data.MaturityStage))
		if r.Data.ConfidenceScore != nil {
			addKV(sheet, "Assessment Confidence", FormatPercent(*r.Data.ConfidenceScore*100))
		}
	}
	if r.AI != nil {
		addKV(sheet, "AI Maturity Score", FormatScore(r.AI.CompositeScore))
		addKV(sheet, "AI Maturity Stage", stageLabel(r.AI.MaturityStage))
	}
	if r.Classification != nil {
		addKV(sheet, "Classification", r.Classification.Classification)
		addKV(sheet, "Risk Profile", r.Classification.Risk)
		addKV(sheet, "Opportunity", r.Classification.Opportunity)
	}

	if r.Data != nil && len(r.Data.CategoryScores) > 0 {
		addRow(sheet)
		addHeader(sheet, "Data Category", "Score")
		for _, name := range sortedKeys(r.Data.CategoryScores) {
			addKV(sheet, name, FormatScore(r.Data.CategoryScores[name].Score))
		}
	}
	if r.AI != nil && len(r.AI.CategoryScores) > 0 {
		addRow(sheet)
		addHeader(sheet, "AI Category", "Score")
		for _, name := range sortedKeys(r.AI.CategoryScores) {
			addKV(sheet, name, FormatScore(r.AI.CategoryScores[name].Score))
		}
	}
	return nil
}

func addGapsSheet(f *xlsx.File, a *gaps.Analysis) error {
	sheet, err := f.AddSheet("Capability Gaps")
	if err != nil {
		return eris.Wrap(err, "export: add gaps sheet")
	}

	addHeader(sheet, "Dimension", "Theme", "Priority", "Current", "Ideal", "Gap", "Description")
	for _, g := range a.Gaps {
		row := sheet.AddRow()
		row.AddCell().SetString(g.Dimension)
		row.AddCell().SetString(string(g.Theme))
		row.AddCell().SetString(string(g.Priority))
		row.AddCell().SetFloatWithFormat(g.Current, "0.00")
		row.AddCell().SetFloatWithFormat(g.Ideal, "0.00")
		row.AddCell().SetFloatWithFormat(g.Gap, "0.00")
		row.AddCell().SetString(g.Description)
	}
	return nil
}

func addFinancialSheet(f *xlsx.File, m *financial.ModelReport) error {
	sheet, err := f.AddSheet("Financial Impact")
	if err != nil {
		return eris.Wrap(err, "export: add financial sheet")
	}

	if m.Revenue != nil {
		addHeader(sheet, "Revenue")
		addKV(sheet, "Baseline", FormatCurrency(m.Revenue.Baseline))
		addKV(sheet, "Upside", FormatCurrency(m.Revenue.Upside))
		addKV(sheet, "Projected", FormatCurrency(m.Revenue.Projected))
		addRow(sheet)
	}
	if m.Cost != nil {
		addHeader(sheet, "Cost")
		addKV(sheet, "Baseline", FormatCurrency(m.Cost.Baseline))
		addKV(sheet, "Reduction", FormatCurrency(m.Cost.Reduction))
		addKV(sheet, "Projected", FormatCurrency(m.Cost.Projected))
		addKV(sheet, "Basis", m.Cost.Basis)
		addRow(sheet)
	}
	if m.Profit != nil {
		addHeader(sheet, "Profit")
		addKV(sheet, "Baseline Margin", FormatPercent(m.Profit.BaselineMarginPct))
		addKV(sheet, "Projected Margin", FormatPercent(m.Profit.ProjectedMarginPct))
		addKV(sheet, "Baseline Profit", FormatCurrency(m.Profit.BaselineProfit))
		addKV(sheet, "Projected Profit", FormatCurrency(m.Profit.ProjectedProfit))
		addRow(sheet)
	}

	addHeader(sheet, "Summary")
	addKV(sheet, "Total Upside", FormatCurrency(m.Summary.TotalUpside))
	addKV(sheet, "Total Reduction", FormatCurrency(m.Summary.TotalReduction))
	addKV(sheet, "Net Annual Impact", FormatCurrency(m.Summary.NetAnnualImpact))

	for _, diag := range m.Errors {
		addKV(sheet, "Note", diag)
	}
	return nil
}

func addRoadmapSheet(f *xlsx.File, rm *roadmap.Roadmap) error {
	sheet, err := f.AddSheet("Roadmap")
	if err != nil {
		return eris.Wrap(err, "export: add roadmap sheet")
	}

	addKV(sheet, "Prioritization", string(rm.Strategy))
	addKV(sheet, "Total Estimated Cost", FormatCurrency(rm.TotalEstimatedCost))
	addKV(sheet, "Total Projected Impact", FormatCurrency(rm.TotalProjectedImpact))
	addRow(sheet)

	addHeader(sheet, "Phase", "Estimated Cost", "Projected Impact", "Relative Impact", "Actions")
	for _, p := range rm.Phases {
		row := sheet.AddRow()
		row.AddCell().SetString(p.Name)
		row.AddCell().SetFloatWithFormat(p.EstimatedCost, "#,##0")
		row.AddCell().SetFloatWithFormat(p.ProjectedImpactValue, "#,##0")
		row.AddCell().SetFloatWithFormat(p.RelativeImpact, "0.00")
		for _, action := range p.Actions {
			row.AddCell().SetString(action)
		}
	}
	return nil
}

func addSimulationSheet(f *xlsx.File, o *simulate.Outcome) error {
	sheet, err := f.AddSheet("Simulation")
	if err != nil {
		return eris.Wrap(err, "export: add simulation sheet")
	}

	addKV(sheet, "Scenario", o.ScenarioName)
	addKV(sheet, "End Valuation", FormatCurrency(o.EndValuation))
	addKV(sheet, "Total Profit", FormatCurrency(o.TotalProfit))
	addKV(sheet, "Average Risk", FormatScore(o.AvgRisk))
	addRow(sheet)

	addHeader(sheet, "Year", "Data Maturity", "AI Maturity", "Revenue", "Profit", "Valuation", "Competitive", "Risk")
	for _, y := range o.Yearly {
		row := sheet.AddRow()
		row.AddCell().SetInt(y.Year)
		row.AddCell().SetFloatWithFormat(y.DataMaturity, "0.00")
		row.AddCell().SetFloatWithFormat(y.AIMaturity, "0.00")
		row.AddCell().SetFloatWithFormat(y.Revenue, "#,##0")
		row.AddCell().SetFloatWithFormat(y.Profit, "#,##0")
		row.AddCell().SetFloatWithFormat(y.Valuation, "#,##0")
		row.AddCell().SetFloatWithFormat(y.CompetitiveScore, "0.00")
		row.AddCell().SetFloatWithFormat(y.RiskScore, "0.00")
	}
	return nil
}

// sheet helpers

func addRow(sheet *xlsx.Sheet) {
	sheet.AddRow()
}

func addHeader(sheet *xlsx.Sheet, cells ...string) {
	row := sheet.AddRow()
	for _, c := range cells {
		row.AddCell().SetString(c)
	}
}

func addKV(sheet *xlsx.Sheet, key, value string) {
	row := sheet.AddRow()
	row.AddCell().SetString(key)
	row.AddCell().SetString(value)
}

func stageLabel(stage int) string {
	return printer.Sprintf("Stage %d", stage)
}

func sortedKeys(m map[string]model.CategoryScore) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
