package service

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/alsftd-research/datasync/internal/domain"
	"github.com/alsftd-research/datasync/pkg/external"
)

var errUnknownDateLayout = errors.New("value matches no known date layout")

// Date layouts the registry actually emits. Month-only dates resolve to
// the first of the month.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01",
	"1-2-2006",
}

// phaseMapping converts the registry's phase list (sorted, normalized)
// to the dashboard's display value.
var phaseMapping = map[string]string{
	"":              "NA",
	"NA":            "NA",
	"EARLY_Phase1":  "Early Phase 1",
	"Phase1":        "Phase 1",
	"Phase1|Phase2": "Phase 1/2",
	"Phase2":        "Phase 2",
	"Phase2|Phase3": "Phase 2/3",
	"Phase3":        "Phase 3",
	"Phase4":        "Phase 4",
	"EAP":           "EAP",
}

// Normalizer converts raw registry studies into trial records: parsed
// dates, canonical choice fields, a single display phase and the
// public study URL.
type Normalizer struct {
	log *logrus.Logger
}

// NewNormalizer creates a study normalizer
func NewNormalizer(logger *logrus.Logger) *Normalizer {
	return &Normalizer{log: logger}
}

// Normalize maps one raw study onto a trial record. Malformed dates
// are logged and stored as null; they never reject the record.
func (n *Normalizer) Normalize(study *external.Study) domain.TrialRecord {
	ps := &study.ProtocolSection
	protocolID := ps.IdentificationModule.OrgStudyIDInfo.ID

	record := domain.TrialRecord{
		UniqueProtocolID: protocolID,
		NCTID:            ps.IdentificationModule.NCTID,
		BriefTitle:       ps.IdentificationModule.BriefTitle,
		StudyType:        ps.DesignModule.StudyType,
		OverallStatus:    ps.StatusModule.OverallStatus,

		SubmitDate:         n.parseDate(protocolID, "study_submitance_date", ps.StatusModule.StudyFirstSubmitDate),
		SubmitDateQC:       n.parseDate(protocolID, "study_submitance_date_qc", ps.StatusModule.StudyFirstSubmitQC),
		StartDate:          n.parseDate(protocolID, "study_start_date", ps.StatusModule.StartDateStruct.Date),
		StartDateType:      ps.StatusModule.StartDateStruct.Type,
		StatusVerifiedDate: n.parseDate(protocolID, "status_verified_date", ps.StatusModule.StatusVerifiedDate),
		CompletionDate:     n.parseDate(protocolID, "completion_date", ps.StatusModule.CompletionDateStruct.Date),

		LeadSponsorName:         ps.SponsorCollaboratorsModule.LeadSponsor.Name,
		ResponsiblePartyType:    ps.SponsorCollaboratorsModule.ResponsibleParty.Type,
		ResponsibleInvestigator: ps.SponsorCollaboratorsModule.ResponsibleParty.InvestigatorFullName,

		Conditions:      ps.ConditionsModule.Conditions,
		Keywords:        ps.ConditionsModule.Keywords,
		StudyPopulation: ps.EligibilityModule.StudyPopulation,

		EnrollmentCount: ps.DesignModule.EnrollmentInfo.Count,
		EnrollmentType:  ps.DesignModule.EnrollmentInfo.Type,

		FDARegulatedDrug:   normalizeChoice(ps.OversightModule.IsFDARegulatedDrug),
		FDARegulatedDevice: normalizeChoice(ps.OversightModule.IsFDARegulatedDevice),

		PrimaryOutcomes:   convertOutcomes(ps.OutcomesModule.PrimaryOutcomes),
		SecondaryOutcomes: convertOutcomes(ps.OutcomesModule.SecondaryOutcomes),
		OtherOutcomes:     convertOutcomes(ps.OutcomesModule.OtherOutcomes),

		EligibilityCriteria: ps.EligibilityModule.EligibilityCriteria,
		InclusionCriteria:   []string{},
		ExclusionCriteria:   []string{},
		HealthyVolunteers:   normalizeChoice(ps.EligibilityModule.HealthyVolunteers),
		EligibilitySex:      ps.EligibilityModule.Sex,
		EligibilityMinAge:   ps.EligibilityModule.MinimumAge,
		EligibilityMaxAge:   ps.EligibilityModule.MaximumAge,

		Genes: []string{},
	}

	for _, intervention := range ps.ArmsInterventionsModule.Interventions {
		if intervention.Name != "" {
			record.InterventionName = append(record.InterventionName, intervention.Name)
		}
	}

	for _, loc := range ps.ContactsLocationsModule.Locations {
		location := domain.TrialLocation{
			Facility: loc.Facility,
			City:     loc.City,
			State:    loc.State,
			Country:  loc.Country,
		}
		if loc.GeoPoint != nil {
			lat, lon := loc.GeoPoint.Lat, loc.GeoPoint.Lon
			location.Lat, location.Lon = &lat, &lon
		}
		record.Locations = append(record.Locations, location)
	}

	record.StudyPhase = ConvertStudyPhase(ps.DesignModule.Phases, study.HasExpandedAccess())

	if record.NCTID != "" {
		record.ClinicalTrialURL = "https://clinicaltrials.gov/study/" + record.NCTID
	}

	return record
}

func (n *Normalizer) parseDate(protocolID, field, value string) *time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}

	for _, layout := range dateLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return &ts
		}
	}

	fieldErr := &domain.FieldError{
		ProtocolID: protocolID,
		Field:      field,
		Value:      value,
		Err:        errUnknownDateLayout,
	}
	n.log.WithField("error", fieldErr).Warn("Unparseable date, storing null")
	return nil
}

// ConvertStudyPhase maps the registry's phase list to the display
// phase. Expanded-access studies are always "EAP" regardless of the
// declared phases; phase lists outside the mapping are "Unknown".
func ConvertStudyPhase(phases []string, expandedAccess bool) string {
	if expandedAccess {
		return "EAP"
	}

	normalized := make([]string, 0, len(phases))
	for _, phase := range phases {
		phase = strings.ReplaceAll(phase, "PHASE", "Phase")
		if phase != "" {
			normalized = append(normalized, phase)
		}
	}
	sort.Strings(normalized)

	if mapped, ok := phaseMapping[strings.Join(normalized, "|")]; ok {
		return mapped
	}
	return "Unknown"
}

// normalizeChoice canonicalizes boolean-like registry fields. A missing
// value stays blank rather than defaulting to false.
func normalizeChoice(value *bool) domain.ChoiceValue {
	switch {
	case value == nil:
		return domain.ChoiceBlank
	case *value:
		return domain.ChoiceTrue
	default:
		return domain.ChoiceFalse
	}
}

func convertOutcomes(outcomes []external.StudyOutcome) []domain.TrialOutcome {
	if len(outcomes) == 0 {
		return nil
	}
	converted := make([]domain.TrialOutcome, len(outcomes))
	for i, outcome := range outcomes {
		converted[i] = domain.TrialOutcome{
			Measure:     outcome.Measure,
			Description: outcome.Description,
			TimeFrame:   outcome.TimeFrame,
		}
	}
	return converted
}
