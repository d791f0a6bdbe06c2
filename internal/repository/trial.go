package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/alsftd-research/datasync/internal/domain"
)

// TrialRepository handles trial record persistence
type TrialRepository struct {
	db  *pgxpool.Pool
	log *logrus.Logger
}

// NewTrialRepository creates a new trial repository
func NewTrialRepository(db *pgxpool.Pool, logger *logrus.Logger) *TrialRepository {
	return &TrialRepository{
		db:  db,
		log: logger,
	}
}

const trialUpsertQuery = `
	INSERT INTO trials (
		unique_protocol_id, nct_id, brief_title, study_type, study_phase, overall_status,
		study_submitance_date, study_submitance_date_qc, study_start_date, study_start_date_type,
		status_verified_date, completion_date, lead_sponsor_name, responsible_party_type,
		responsible_party_investigator_full_name, condition, keyword, intervention_name,
		study_population, enrollment_count, enrollment_type, fda_regulated_drug,
		fda_regulated_device, study_location, primary_outcomes, secondary_outcomes,
		other_outcomes, eligibility_criteria_generic_description,
		eligibility_criteria_inclusion_description, eligibility_criteria_exclusion_description,
		eligibility_criteria_healthy_volunteers, eligibility_criteria_sex,
		eligibility_criteria_min_age_years, eligibility_criteria_max_age_years,
		clinical_trial_url, genes, updated_at
	) VALUES (
		$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18,
		$19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29, $30, $31, $32, $33, $34,
		$35, $36, NOW()
	)
	ON CONFLICT (unique_protocol_id) DO UPDATE SET
		nct_id = EXCLUDED.nct_id,
		brief_title = EXCLUDED.brief_title,
		study_type = EXCLUDED.study_type,
		study_phase = EXCLUDED.study_phase,
		overall_status = EXCLUDED.overall_status,
		study_submitance_date = EXCLUDED.study_submitance_date,
		study_submitance_date_qc = EXCLUDED.study_submitance_date_qc,
		study_start_date = EXCLUDED.study_start_date,
		study_start_date_type = EXCLUDED.study_start_date_type,
		status_verified_date = EXCLUDED.status_verified_date,
		completion_date = EXCLUDED.completion_date,
		lead_sponsor_name = EXCLUDED.lead_sponsor_name,
		responsible_party_type = EXCLUDED.responsible_party_type,
		responsible_party_investigator_full_name = EXCLUDED.responsible_party_investigator_full_name,
		condition = EXCLUDED.condition,
		keyword = EXCLUDED.keyword,
		intervention_name = EXCLUDED.intervention_name,
		study_population = EXCLUDED.study_population,
		enrollment_count = EXCLUDED.enrollment_count,
		enrollment_type = EXCLUDED.enrollment_type,
		fda_regulated_drug = EXCLUDED.fda_regulated_drug,
		fda_regulated_device = EXCLUDED.fda_regulated_device,
		study_location = EXCLUDED.study_location,
		primary_outcomes = EXCLUDED.primary_outcomes,
		secondary_outcomes = EXCLUDED.secondary_outcomes,
		other_outcomes = EXCLUDED.other_outcomes,
		eligibility_criteria_generic_description = EXCLUDED.eligibility_criteria_generic_description,
		eligibility_criteria_inclusion_description = EXCLUDED.eligibility_criteria_inclusion_description,
		eligibility_criteria_exclusion_description = EXCLUDED.eligibility_criteria_exclusion_description,
		eligibility_criteria_healthy_volunteers = EXCLUDED.eligibility_criteria_healthy_volunteers,
		eligibility_criteria_sex = EXCLUDED.eligibility_criteria_sex,
		eligibility_criteria_min_age_years = EXCLUDED.eligibility_criteria_min_age_years,
		eligibility_criteria_max_age_years = EXCLUDED.eligibility_criteria_max_age_years,
		clinical_trial_url = EXCLUDED.clinical_trial_url,
		genes = EXCLUDED.genes,
		updated_at = NOW()
	RETURNING (xmax = 0) AS inserted`

// ReconcileBatch upserts every record and prunes persisted ids absent
// from the batch, all inside a single transaction. A failure anywhere
// rolls the whole run back.
func (r *TrialRepository) ReconcileBatch(ctx context.Context, trials []domain.TrialRecord) (created, updated, deleted int, err error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, 0, 0, fmt.Errorf("beginning trial sync transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	seen := make([]string, 0, len(trials))
	for i := range trials {
		t := &trials[i]
		inserted, upsertErr := r.upsertTx(ctx, tx, t)
		if upsertErr != nil {
			return 0, 0, 0, fmt.Errorf("upserting trial %s: %w", t.UniqueProtocolID, upsertErr)
		}
		if inserted {
			created++
		} else {
			updated++
		}
		seen = append(seen, t.UniqueProtocolID)
	}

	tag, err := tx.Exec(ctx,
		`DELETE FROM trials WHERE unique_protocol_id <> ALL($1::text[])`, seen)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("pruning obsolete trials: %w", err)
	}
	deleted = int(tag.RowsAffected())

	if err := tx.Commit(ctx); err != nil {
		return 0, 0, 0, fmt.Errorf("committing trial sync transaction: %w", err)
	}

	r.log.WithFields(logrus.Fields{
		"created": created,
		"updated": updated,
		"deleted": deleted,
	}).Info("Trial batch reconciled")

	return created, updated, deleted, nil
}

// upsertTx writes one record inside the run transaction and reports
// whether the row was newly inserted.
func (r *TrialRepository) upsertTx(ctx context.Context, tx pgx.Tx, t *domain.TrialRecord) (bool, error) {
	conditions, err := jsonOrNull(t.Conditions)
	if err != nil {
		return false, err
	}
	keywords, err := jsonOrNull(t.Keywords)
	if err != nil {
		return false, err
	}
	interventions, err := jsonOrNull(t.InterventionName)
	if err != nil {
		return false, err
	}
	locations, err := jsonOrNull(t.Locations)
	if err != nil {
		return false, err
	}
	primary, err := jsonOrNull(t.PrimaryOutcomes)
	if err != nil {
		return false, err
	}
	secondary, err := jsonOrNull(t.SecondaryOutcomes)
	if err != nil {
		return false, err
	}
	other, err := jsonOrNull(t.OtherOutcomes)
	if err != nil {
		return false, err
	}
	inclusion, err := jsonOrNull(t.InclusionCriteria)
	if err != nil {
		return false, err
	}
	exclusion, err := jsonOrNull(t.ExclusionCriteria)
	if err != nil {
		return false, err
	}
	genes, err := jsonOrNull(t.Genes)
	if err != nil {
		return false, err
	}

	var inserted bool
	err = tx.QueryRow(ctx, trialUpsertQuery,
		t.UniqueProtocolID, t.NCTID, t.BriefTitle, t.StudyType, t.StudyPhase, t.OverallStatus,
		t.SubmitDate, t.SubmitDateQC, t.StartDate, t.StartDateType,
		t.StatusVerifiedDate, t.CompletionDate, t.LeadSponsorName, t.ResponsiblePartyType,
		t.ResponsibleInvestigator, conditions, keywords, interventions,
		t.StudyPopulation, t.EnrollmentCount, t.EnrollmentType, string(t.FDARegulatedDrug),
		string(t.FDARegulatedDevice), locations, primary, secondary,
		other, t.EligibilityCriteria,
		inclusion, exclusion,
		string(t.HealthyVolunteers), t.EligibilitySex,
		t.EligibilityMinAge, t.EligibilityMaxAge,
		t.ClinicalTrialURL, genes,
	).Scan(&inserted)
	if err != nil {
		return false, err
	}
	return inserted, nil
}

// ListIDs returns all persisted protocol ids
func (r *TrialRepository) ListIDs(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT unique_protocol_id FROM trials`)
	if err != nil {
		return nil, fmt.Errorf("listing trial ids: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning trial id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating trial ids: %w", err)
	}
	return ids, nil
}

// CountAll returns the number of persisted trials
func (r *TrialRepository) CountAll(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM trials`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting trials: %w", err)
	}
	return n, nil
}

// jsonOrNull marshals a slice field to JSONB, mapping empty to SQL NULL
// so absent lists stay distinguishable from empty ones.
func jsonOrNull(v interface{}) (interface{}, error) {
	switch s := v.(type) {
	case []string:
		if len(s) == 0 {
			return nil, nil
		}
	case []domain.TrialLocation:
		if len(s) == 0 {
			return nil, nil
		}
	case []domain.TrialOutcome:
		if len(s) == 0 {
			return nil, nil
		}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON field: %w", err)
	}
	return b, nil
}
