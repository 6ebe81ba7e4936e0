package stats

import (
	"testing"
	"time"
)

func seedCollector() *Collector {
	c := NewCollector()
	c.AddCell(CellResult{
		Group: "All Groups", Scenario: "Normal only", Model: "MLP",
		RawCount: 12, NormalizedCount: 12, Elapsed: time.Millisecond,
	})
	c.AddCell(CellResult{
		Group: "All Groups", Scenario: "Normal only", Model: "XGBoost",
		Missing: true,
	})
	c.AddCell(CellResult{
		Group: "All Groups", Scenario: "Merged Normal", Model: "MLP",
		RawCount: 8, NormalizedCount: 7,
	})
	c.AddCell(CellResult{
		Group: "Pathologic And Control", Scenario: "Normal only", Model: "MLP",
		RawCount: 4, NormalizedCount: 4,
	})
	c.AddCommon(CommonResult{Group: "All Groups", Scenario: "Normal only", Count: 3})
	c.AddCommon(CommonResult{Group: "All Groups", Scenario: "Merged Normal", Count: 2})
	c.AddCommon(CommonResult{Group: "All Groups", Count: 1})
	return c
}

func TestCellsByGroup(t *testing.T) {
	c := seedCollector()

	cells := c.CellsByGroup("All Groups")
	if len(cells) != 3 {
		t.Errorf("expected 3 cells for All Groups, got %d", len(cells))
	}
	cells = c.CellsByGroup("Pathologic And Control")
	if len(cells) != 1 {
		t.Errorf("expected 1 cell, got %d", len(cells))
	}
}

func TestMissingModels(t *testing.T) {
	c := seedCollector()

	missing := c.MissingModels("All Groups", "Normal only")
	if len(missing) != 1 || missing[0] != "XGBoost" {
		t.Errorf("expected [XGBoost], got %v", missing)
	}
	if got := c.MissingModels("All Groups", "Merged Normal"); len(got) != 0 {
		t.Errorf("expected no missing models, got %v", got)
	}
}

func TestComputeGroupSummary(t *testing.T) {
	c := seedCollector()

	s := c.ComputeGroupSummary("All Groups")
	if s.Cells != 3 {
		t.Errorf("expected 3 cells, got %d", s.Cells)
	}
	if s.MissingFiles != 1 {
		t.Errorf("expected 1 missing file, got %d", s.MissingFiles)
	}
	if s.MinSetSize != 0 || s.MaxSetSize != 12 {
		t.Errorf("expected min 0 max 12, got %d/%d", s.MinSetSize, s.MaxSetSize)
	}
	if s.ScenarioCommon["Normal only"] != 3 {
		t.Errorf("expected scenario common 3, got %d", s.ScenarioCommon["Normal only"])
	}
	if s.AcrossCommon != 1 {
		t.Errorf("expected across common 1, got %d", s.AcrossCommon)
	}
}

func TestComputeGroupSummary_UnknownGroup(t *testing.T) {
	c := seedCollector()

	s := c.ComputeGroupSummary("nope")
	if s.Cells != 0 || s.MissingFiles != 0 {
		t.Errorf("expected zeroed summary, got %+v", s)
	}
}

func TestCopiesAreIndependent(t *testing.T) {
	c := seedCollector()

	cells := c.Cells()
	cells[0].Group = "mutated"
	if c.Cells()[0].Group == "mutated" {
		t.Error("Cells must return a copy")
	}
}
