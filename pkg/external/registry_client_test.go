package external

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alsftd-research/datasync/internal/domain"
)

func testRegistryClient(serverURL string) *RegistryClient {
	return NewRegistryClient(&domain.RegistryConfig{
		BaseURL:   serverURL,
		PageSize:  2,
		Timeout:   5 * time.Second,
		RateLimit: 100,
	}, logrus.New())
}

func registryPage(ids []string, nextToken string) map[string]interface{} {
	studies := make([]map[string]interface{}, len(ids))
	for i, id := range ids {
		studies[i] = map[string]interface{}{
			"protocolSection": map[string]interface{}{
				"identificationModule": map[string]interface{}{
					"orgStudyIdInfo": map[string]string{"id": id},
					"nctId":          "NCT-" + id,
				},
			},
		}
	}
	page := map[string]interface{}{"studies": studies}
	if nextToken != "" {
		page["nextPageToken"] = nextToken
	}
	return page
}

func TestRegistryClient_FetchStudies_FollowsPageTokens(t *testing.T) {
	var requests []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/studies", r.URL.Path)
		requests = append(requests, r.URL.Query().Get("pageToken"))

		var page map[string]interface{}
		switch r.URL.Query().Get("pageToken") {
		case "":
			page = registryPage([]string{"P-1", "P-2"}, "tok-2")
		case "tok-2":
			page = registryPage([]string{"P-3"}, "")
		default:
			t.Fatalf("unexpected page token %q", r.URL.Query().Get("pageToken"))
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(page)
	}))
	defer server.Close()

	client := testRegistryClient(server.URL)
	studies, err := client.FetchStudies(context.Background(), []string{"ALS", "FTD"})
	require.NoError(t, err)

	assert.Len(t, studies, 3)
	assert.Equal(t, []string{"", "tok-2"}, requests)
	assert.Equal(t, "P-1", studies[0].ProtocolSection.IdentificationModule.OrgStudyIDInfo.ID)
	assert.Equal(t, "P-3", studies[2].ProtocolSection.IdentificationModule.OrgStudyIDInfo.ID)
}

func TestRegistryClient_FetchStudies_SendsConditionQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "ALS OR Frontotemporal Dementia", r.URL.Query().Get("query.cond"))
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.Equal(t, "2", r.URL.Query().Get("pageSize"))
		assert.NotEmpty(t, r.URL.Query().Get("fields"))
		json.NewEncoder(w).Encode(registryPage(nil, ""))
	}))
	defer server.Close()

	client := testRegistryClient(server.URL)
	_, err := client.FetchStudies(context.Background(), []string{"ALS", "Frontotemporal Dementia"})
	require.NoError(t, err)
}

func TestRegistryClient_FetchStudies_AbortsOnServerError(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			json.NewEncoder(w).Encode(registryPage([]string{"P-1"}, "tok-2"))
			return
		}
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := testRegistryClient(server.URL)
	studies, err := client.FetchStudies(context.Background(), []string{"ALS"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrFetchFailed)
	assert.Nil(t, studies, "a partial page set must not be returned")

	var fetchErr *domain.FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, http.StatusServiceUnavailable, fetchErr.StatusCode)
}

func TestRegistryClient_FetchStudies_NoConditions(t *testing.T) {
	client := testRegistryClient("http://registry.invalid")
	_, err := client.FetchStudies(context.Background(), nil)
	assert.Error(t, err)
}
