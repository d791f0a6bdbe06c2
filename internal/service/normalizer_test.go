package service

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alsftd-research/datasync/internal/domain"
	"github.com/alsftd-research/datasync/pkg/external"
)

func TestNormalizer_ParseDate(t *testing.T) {
	normalizer := NewNormalizer(logrus.New())

	tests := []struct {
		name     string
		value    string
		expected *time.Time
	}{
		{
			name:     "full ISO date",
			value:    "2024-03-15",
			expected: timePtr(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)),
		},
		{
			name:     "month-only resolves to first of month",
			value:    "2024-03",
			expected: timePtr(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)),
		},
		{
			name:     "dashed US layout",
			value:    "3-15-2024",
			expected: timePtr(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)),
		},
		{
			name:     "unparseable stored as null",
			value:    "not a date",
			expected: nil,
		},
		{
			name:     "blank stored as null",
			value:    "  ",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizer.parseDate("NCT01234567", "start_date", tt.value)
			if tt.expected == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.True(t, tt.expected.Equal(*got))
		})
	}
}

func TestConvertStudyPhase(t *testing.T) {
	tests := []struct {
		name           string
		phases         []string
		expandedAccess bool
		expected       string
	}{
		{name: "no phases", phases: nil, expected: "NA"},
		{name: "na literal", phases: []string{"NA"}, expected: "NA"},
		{name: "early phase", phases: []string{"EARLY_PHASE1"}, expected: "Early Phase 1"},
		{name: "single phase", phases: []string{"PHASE1"}, expected: "Phase 1"},
		{name: "combined phases", phases: []string{"PHASE1", "PHASE2"}, expected: "Phase 1/2"},
		{name: "combined phases order independent", phases: []string{"PHASE2", "PHASE1"}, expected: "Phase 1/2"},
		{name: "late combination", phases: []string{"PHASE2", "PHASE3"}, expected: "Phase 2/3"},
		{name: "phase four", phases: []string{"PHASE4"}, expected: "Phase 4"},
		{name: "unrecognized combination", phases: []string{"PHASE1", "PHASE4"}, expected: "Unknown"},
		{name: "expanded access overrides phases", phases: []string{"PHASE3"}, expandedAccess: true, expected: "EAP"},
		{name: "expanded access with no phases", phases: nil, expandedAccess: true, expected: "EAP"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ConvertStudyPhase(tt.phases, tt.expandedAccess))
		})
	}
}

func TestNormalizer_Normalize(t *testing.T) {
	normalizer := NewNormalizer(logrus.New())

	var study external.Study
	ps := &study.ProtocolSection
	ps.IdentificationModule.OrgStudyIDInfo.ID = "STUDY-001"
	ps.IdentificationModule.NCTID = "NCT01234567"
	ps.IdentificationModule.BriefTitle = "Tofersen in Adults With SOD1-ALS"
	ps.DesignModule.StudyType = "INTERVENTIONAL"
	ps.DesignModule.Phases = []string{"PHASE3"}
	ps.DesignModule.EnrollmentInfo.Count = intPtr(108)
	ps.DesignModule.EnrollmentInfo.Type = "ACTUAL"
	ps.StatusModule.OverallStatus = "COMPLETED"
	ps.StatusModule.StudyFirstSubmitDate = "2021-05-10"
	ps.StatusModule.StartDateStruct.Date = "2021-06"
	ps.StatusModule.CompletionDateStruct.Date = "garbage"
	ps.ConditionsModule.Conditions = []string{"Amyotrophic Lateral Sclerosis"}
	ps.ConditionsModule.Keywords = []string{"SOD1"}
	ps.OversightModule.IsFDARegulatedDrug = boolPtr(true)
	ps.EligibilityModule.EligibilityCriteria = "Inclusion: adults.\nExclusion: none."
	ps.EligibilityModule.HealthyVolunteers = boolPtr(false)
	ps.ArmsInterventionsModule.Interventions = []struct {
		Type        string `json:"type"`
		Name        string `json:"name"`
		Description string `json:"description"`
	}{
		{Type: "DRUG", Name: "Tofersen", Description: "antisense oligonucleotide"},
	}
	ps.OutcomesModule.PrimaryOutcomes = []external.StudyOutcome{
		{Measure: "ALSFRS-R change", TimeFrame: "28 weeks"},
	}

	record := normalizer.Normalize(&study)

	assert.Equal(t, "STUDY-001", record.UniqueProtocolID)
	assert.Equal(t, "NCT01234567", record.NCTID)
	assert.Equal(t, "Phase 3", record.StudyPhase)
	assert.Equal(t, "https://clinicaltrials.gov/study/NCT01234567", record.ClinicalTrialURL)
	assert.Equal(t, domain.ChoiceTrue, record.FDARegulatedDrug)
	assert.Equal(t, domain.ChoiceBlank, record.FDARegulatedDevice)
	assert.Equal(t, domain.ChoiceFalse, record.HealthyVolunteers)
	assert.Equal(t, []string{"Tofersen"}, record.InterventionName)
	assert.Len(t, record.PrimaryOutcomes, 1)

	require.NotNil(t, record.SubmitDate)
	assert.Equal(t, time.Date(2021, 5, 10, 0, 0, 0, 0, time.UTC), *record.SubmitDate)
	require.NotNil(t, record.StartDate)
	assert.Equal(t, time.Date(2021, 6, 1, 0, 0, 0, 0, time.UTC), *record.StartDate)
	assert.Nil(t, record.CompletionDate)

	require.NotNil(t, record.EnrollmentCount)
	assert.Equal(t, 108, *record.EnrollmentCount)

	// Enrichment runs later; the normalizer leaves the lists empty,
	// not nil, so the stored JSON is always an array.
	assert.NotNil(t, record.InclusionCriteria)
	assert.NotNil(t, record.ExclusionCriteria)
	assert.NotNil(t, record.Genes)
}

func timePtr(t time.Time) *time.Time { return &t }
func intPtr(v int) *int              { return &v }
func boolPtr(v bool) *bool           { return &v }
