package external

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/alsftd-research/datasync/internal/domain"
)

// Study field projection requested from the registry. Keeping the
// projection explicit keeps response payloads bounded at pageSize 1000.
var registryFields = []string{
	"OrgStudyId", "NCTId", "BriefTitle", "StudyType", "OverallStatus",
	"StatusVerifiedDate", "CompletionDate", "LeadSponsorName",
	"ResponsiblePartyType", "ResponsiblePartyInvestigatorFullName",
	"Condition", "Keyword", "InterventionType", "InterventionDescription",
	"StudyPopulation", "EnrollmentCount", "EnrollmentType", "Phase",
	"StartDate", "StartDateType", "StudyFirstSubmitDate",
	"StudyFirstSubmitQCDate", "HasExpandedAccess", "IsFDARegulatedDrug",
	"IsFDARegulatedDevice", "Location", "PrimaryOutcome", "SecondaryOutcome",
	"OtherOutcome", "EligibilityCriteria", "HealthyVolunteers", "Sex",
	"MinimumAge", "MaximumAge",
}

// RegistryClient handles interactions with the ClinicalTrials.gov API v2
type RegistryClient struct {
	baseURL    string
	pageSize   int
	httpClient *http.Client
	rateLimit  *rate.Limiter
	log        *logrus.Logger
}

// Study is the raw registry record, mirroring the API v2 protocolSection
// layout. Normalization into a domain record happens downstream.
type Study struct {
	ProtocolSection struct {
		IdentificationModule struct {
			OrgStudyIDInfo struct {
				ID string `json:"id"`
			} `json:"orgStudyIdInfo"`
			NCTID      string `json:"nctId"`
			BriefTitle string `json:"briefTitle"`
		} `json:"identificationModule"`
		StatusModule struct {
			OverallStatus        string `json:"overallStatus"`
			StatusVerifiedDate   string `json:"statusVerifiedDate"`
			StudyFirstSubmitDate string `json:"studyFirstSubmitDate"`
			StudyFirstSubmitQC   string `json:"studyFirstSubmitQcDate"`
			StartDateStruct      struct {
				Date string `json:"date"`
				Type string `json:"type"`
			} `json:"startDateStruct"`
			CompletionDateStruct struct {
				Date string `json:"date"`
			} `json:"completionDateStruct"`
			ExpandedAccessInfo struct {
				HasExpandedAccess bool `json:"hasExpandedAccess"`
			} `json:"expandedAccessInfo"`
		} `json:"statusModule"`
		SponsorCollaboratorsModule struct {
			LeadSponsor struct {
				Name string `json:"name"`
			} `json:"leadSponsor"`
			ResponsibleParty struct {
				Type                 string `json:"type"`
				InvestigatorFullName string `json:"investigatorFullName"`
			} `json:"responsibleParty"`
		} `json:"sponsorCollaboratorsModule"`
		DesignModule struct {
			StudyType      string   `json:"studyType"`
			Phases         []string `json:"phases"`
			EnrollmentInfo struct {
				Count *int   `json:"count"`
				Type  string `json:"type"`
			} `json:"enrollmentInfo"`
		} `json:"designModule"`
		ConditionsModule struct {
			Conditions []string `json:"conditions"`
			Keywords   []string `json:"keywords"`
		} `json:"conditionsModule"`
		ArmsInterventionsModule struct {
			Interventions []struct {
				Type        string `json:"type"`
				Name        string `json:"name"`
				Description string `json:"description"`
			} `json:"interventions"`
		} `json:"armsInterventionsModule"`
		OversightModule struct {
			IsFDARegulatedDrug   *bool `json:"isFdaRegulatedDrug"`
			IsFDARegulatedDevice *bool `json:"isFdaRegulatedDevice"`
		} `json:"oversightModule"`
		OutcomesModule struct {
			PrimaryOutcomes   []StudyOutcome `json:"primaryOutcomes"`
			SecondaryOutcomes []StudyOutcome `json:"secondaryOutcomes"`
			OtherOutcomes     []StudyOutcome `json:"otherOutcomes"`
		} `json:"outcomesModule"`
		EligibilityModule struct {
			EligibilityCriteria string `json:"eligibilityCriteria"`
			HealthyVolunteers   *bool  `json:"healthyVolunteers"`
			Sex                 string `json:"sex"`
			MinimumAge          string `json:"minimumAge"`
			MaximumAge          string `json:"maximumAge"`
			StudyPopulation     string `json:"studyPopulation"`
		} `json:"eligibilityModule"`
		ContactsLocationsModule struct {
			Locations []struct {
				Facility string `json:"facility"`
				City     string `json:"city"`
				State    string `json:"state"`
				Country  string `json:"country"`
				GeoPoint *struct {
					Lat float64 `json:"lat"`
					Lon float64 `json:"lon"`
				} `json:"geoPoint"`
			} `json:"locations"`
		} `json:"contactsLocationsModule"`
	} `json:"protocolSection"`
}

// StudyOutcome is one outcome measure as returned by the registry
type StudyOutcome struct {
	Measure     string `json:"measure"`
	Description string `json:"description"`
	TimeFrame   string `json:"timeFrame"`
}

type studiesPage struct {
	Studies       []Study `json:"studies"`
	NextPageToken string  `json:"nextPageToken"`
}

// NewRegistryClient creates a new ClinicalTrials.gov API client
func NewRegistryClient(cfg *domain.RegistryConfig, logger *logrus.Logger) *RegistryClient {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://clinicaltrials.gov/api/v2"
	}
	pageSize := cfg.PageSize
	if pageSize == 0 {
		pageSize = 1000
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	rateLimit := cfg.RateLimit
	if rateLimit == 0 {
		rateLimit = 2
	}

	return &RegistryClient{
		baseURL:  baseURL,
		pageSize: pageSize,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		rateLimit: rate.NewLimiter(rate.Limit(rateLimit), 1),
		log:       logger,
	}
}

// FetchStudies retrieves every study matching the given conditions,
// following continuation tokens until the registry reports no more
// pages. Any transport or non-200 response aborts the whole fetch so a
// partial page set never masquerades as the full dataset.
func (c *RegistryClient) FetchStudies(ctx context.Context, conditions []string) ([]Study, error) {
	if len(conditions) == 0 {
		return nil, fmt.Errorf("no search conditions configured")
	}

	params := url.Values{}
	params.Set("format", "json")
	params.Set("query.cond", strings.Join(conditions, " OR "))
	params.Set("pageSize", strconv.Itoa(c.pageSize))
	params.Set("fields", strings.Join(registryFields, "|"))

	var all []Study
	pages := 0
	for {
		if err := c.rateLimit.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limit wait failed: %w", err)
		}

		page, err := c.fetchPage(ctx, params)
		if err != nil {
			return nil, err
		}
		all = append(all, page.Studies...)
		pages++

		if page.NextPageToken == "" {
			break
		}
		params.Set("pageToken", page.NextPageToken)
	}

	c.log.WithFields(logrus.Fields{
		"studies": len(all),
		"pages":   pages,
	}).Info("Registry fetch complete")

	return all, nil
}

func (c *RegistryClient) fetchPage(ctx context.Context, params url.Values) (*studiesPage, error) {
	reqURL := fmt.Sprintf("%s/studies?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating registry request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("registry request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &domain.FetchError{URL: reqURL, StatusCode: resp.StatusCode}
	}

	var page studiesPage
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("decoding registry response: %w", err)
	}

	return &page, nil
}

// HasExpandedAccess reports the expanded-access flag for a study
func (s *Study) HasExpandedAccess() bool {
	return s.ProtocolSection.StatusModule.ExpandedAccessInfo.HasExpandedAccess
}
