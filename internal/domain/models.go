package domain

import (
	"time"
)

// Core Enums and Types

// ChoiceValue is the canonical form of boolean-like registry fields.
// Blank means the registry left the field unspecified.
type ChoiceValue string

const (
	ChoiceTrue  ChoiceValue = "TRUE"
	ChoiceFalse ChoiceValue = "FALSE"
	ChoiceBlank ChoiceValue = ""
)

// RiskCategory is the ALSoD evidence tier for a gene. Genes in the
// Tenuous category are kept in the dictionary but excluded from news
// keyword matching.
type RiskCategory string

const (
	RiskDefinitive RiskCategory = "Definitive ALS gene"
	RiskStrong     RiskCategory = "Strong evidence"
	RiskModerate   RiskCategory = "Moderate evidence"
	RiskTenuous    RiskCategory = "Tenuous"
)

// SourceTier ranks news feed trustworthiness for duplicate tie-breaks.
// Lower values win.
type SourceTier int

const (
	TierPrimaryLiterature SourceTier = 1 // PubMed and other literature databases
	TierSpecializedOutlet SourceTier = 2 // domain outlets (ScienceDaily, Medical Xpress)
	TierRegionalPress     SourceTier = 3
	TierAggregator        SourceTier = 4 // Google News and similar
)

// Core Data Models

// Gene is one canonical dictionary entry scraped from ALSoD.
// Read-only everywhere except the dictionary refresh path.
type Gene struct {
	Symbol       string       `json:"gene_symbol"`
	Name         string       `json:"gene_name"`
	RiskCategory RiskCategory `json:"gene_risk_category"`
}

// TrialLocation is one structured study site.
type TrialLocation struct {
	Facility string   `json:"facility,omitempty"`
	City     string   `json:"city,omitempty"`
	State    string   `json:"state,omitempty"`
	Country  string   `json:"country,omitempty"`
	Lat      *float64 `json:"lat,omitempty"`
	Lon      *float64 `json:"lon,omitempty"`
}

// TrialOutcome is one primary/secondary/other outcome measure.
type TrialOutcome struct {
	Measure     string `json:"measure"`
	Description string `json:"description,omitempty"`
	TimeFrame   string `json:"time_frame,omitempty"`
}

// TrialRecord is one study keyed by the registry's unique protocol id.
// The Genes set is a cache of running the gene matcher over the record's
// text fields; re-resolving must always reproduce it (modulo overrides).
type TrialRecord struct {
	UniqueProtocolID string `json:"unique_protocol_id"`
	NCTID            string `json:"nct_id"`
	BriefTitle       string `json:"brief_title"`
	StudyType        string `json:"study_type"`
	StudyPhase       string `json:"study_phase"`
	OverallStatus    string `json:"overall_status"`

	SubmitDate         *time.Time `json:"study_submitance_date,omitempty"`
	SubmitDateQC       *time.Time `json:"study_submitance_date_qc,omitempty"`
	StartDate          *time.Time `json:"study_start_date,omitempty"`
	StartDateType      string     `json:"study_start_date_type,omitempty"`
	StatusVerifiedDate *time.Time `json:"status_verified_date,omitempty"`
	CompletionDate     *time.Time `json:"completion_date,omitempty"`

	LeadSponsorName         string `json:"lead_sponsor_name,omitempty"`
	ResponsiblePartyType    string `json:"responsible_party_type,omitempty"`
	ResponsibleInvestigator string `json:"responsible_party_investigator_full_name,omitempty"`

	Conditions       []string `json:"condition,omitempty"`
	Keywords         []string `json:"keyword,omitempty"`
	InterventionName []string `json:"intervention_name,omitempty"`
	StudyPopulation  string   `json:"study_population,omitempty"`

	EnrollmentCount *int   `json:"enrollment_count,omitempty"`
	EnrollmentType  string `json:"enrollment_type,omitempty"`

	FDARegulatedDrug   ChoiceValue `json:"fda_regulated_drug"`
	FDARegulatedDevice ChoiceValue `json:"fda_regulated_device"`

	Locations []TrialLocation `json:"study_location,omitempty"`

	PrimaryOutcomes   []TrialOutcome `json:"primary_outcomes,omitempty"`
	SecondaryOutcomes []TrialOutcome `json:"secondary_outcomes,omitempty"`
	OtherOutcomes     []TrialOutcome `json:"other_outcomes,omitempty"`

	EligibilityCriteria  string      `json:"eligibility_criteria_generic_description,omitempty"`
	InclusionCriteria    []string    `json:"eligibility_criteria_inclusion_description,omitempty"`
	ExclusionCriteria    []string    `json:"eligibility_criteria_exclusion_description,omitempty"`
	HealthyVolunteers    ChoiceValue `json:"eligibility_criteria_healthy_volunteers"`
	EligibilitySex       string      `json:"eligibility_criteria_sex,omitempty"`
	EligibilityMinAge    string      `json:"eligibility_criteria_min_age_years,omitempty"`
	EligibilityMaxAge    string      `json:"eligibility_criteria_max_age_years,omitempty"`

	ClinicalTrialURL string   `json:"clinical_trial_url"`
	Genes            []string `json:"genes"`
}

// NewsArticle is one distinct real-world news item. The canonical URL is
// unique in the store, but identity across feeds is behavioral (see the
// dedup engine) because aggregators republish stories at new URLs.
type NewsArticle struct {
	Title       string     `json:"title"`
	Summary     string     `json:"summary"`
	SourceName  string     `json:"source_name"`
	URL         string     `json:"url"`
	ImageURL    string     `json:"image_url,omitempty"`
	PublishedAt time.Time  `json:"publication_date"`
	Tags        []string   `json:"tags"`
	Genes       []string   `json:"genes"`
	SourceTier  SourceTier `json:"source_tier"`
}

// SyncCheckpoint records the last successful refresh for one logical
// dataset ("genes", "trials", "news"). It gates expensive re-scrapes of
// slowly-changing reference data.
type SyncCheckpoint struct {
	Dataset     string    `json:"dataset"`
	LastSuccess time.Time `json:"last_success"`
}

// RunSummary reports what one sync run did. A run either fully applies
// (and reports these counts) or fully aborts.
type RunSummary struct {
	RunID    string        `json:"run_id"`
	Dataset  string        `json:"dataset"`
	Fetched  int           `json:"fetched"`
	Rejected int           `json:"rejected"`
	Created  int           `json:"created"`
	Updated  int           `json:"updated"`
	Deleted  int           `json:"deleted"`
	Duration time.Duration `json:"duration"`
}

// EnrichedCriteria is the structured result of the eligibility-text
// enrichment hook. Both lists empty is a valid (and common) outcome.
type EnrichedCriteria struct {
	Inclusion []string `json:"inclusion"`
	Exclusion []string `json:"exclusion"`
}
