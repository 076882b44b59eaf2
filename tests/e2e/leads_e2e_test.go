//go:build e2e
// +build e2e

package e2e

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crmkit/leads-service/internal/auth"
	leadModel "github.com/crmkit/leads-service/internal/lead/model"
)

// noRedirect prevents the client from following 302s so the tests can
// assert on the redirect itself.
var noRedirect = func(req *http.Request, via []*http.Request) error {
	return http.ErrUseLastResponse
}

func (s *LeadsSuite) client() *http.Client {
	return &http.Client{CheckRedirect: noRedirect}
}

func (s *LeadsSuite) postForm(path, actor string, form url.Values) *http.Response {
	req, err := http.NewRequest(http.MethodPost, s.server.URL+path, strings.NewReader(form.Encode()))
	require.NoError(s.T(), err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if actor != "" {
		req.Header.Set(auth.HeaderUserID, actor)
	}

	resp, err := s.client().Do(req)
	require.NoError(s.T(), err)
	return resp
}

func (s *LeadsSuite) get(path, actor string) *http.Response {
	req, err := http.NewRequest(http.MethodGet, s.server.URL+path, nil)
	require.NoError(s.T(), err)
	if actor != "" {
		req.Header.Set(auth.HeaderUserID, actor)
	}

	resp, err := s.client().Do(req)
	require.NoError(s.T(), err)
	return resp
}

func (s *LeadsSuite) readBody(resp *http.Response) string {
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(s.T(), err)
	return string(body)
}

func (s *LeadsSuite) submitLead() string {
	resp := s.postForm("/sales/opportunity/-new", "", url.Values{
		"company": {"ABC"},
		"name":    {"Tarun"},
		"email":   {"demo@example.com"},
		"comment": {"comment"},
	})
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)
	require.Contains(s.T(), s.readBody(resp), `"success":true`)

	var lead leadModel.Lead
	require.NoError(s.T(), s.db.Order("created_at DESC").First(&lead).Error)
	return lead.LeadID
}

func (s *LeadsSuite) TestSubmissionAndCount() {
	s.submitLead()

	resp := s.get("/sales/opportunity/leads", "admin")
	assert.Equal(s.T(), http.StatusOK, resp.StatusCode)
	assert.Equal(s.T(), "1", s.readBody(resp))
}

func (s *LeadsSuite) TestConversionFlow() {
	leadID := s.submitLead()

	resp := s.postForm("/sales/opportunity/lead-revenue/"+leadID, "admin", url.Values{
		"probability": {"1"},
		"amount":      {"100"},
	})
	require.Equal(s.T(), http.StatusFound, resp.StatusCode)
	assert.Equal(s.T(), "/leads/"+leadID, resp.Header.Get("Location"))
	s.readBody(resp)

	view := s.get("/leads/"+leadID, "admin")
	require.Equal(s.T(), http.StatusOK, view.StatusCode)

	var lead leadModel.Lead
	require.NoError(s.T(), json.Unmarshal([]byte(s.readBody(view)), &lead))
	assert.Equal(s.T(), leadModel.StageOpportunity, lead.Stage)
	require.NotNil(s.T(), lead.Probability)
	assert.Equal(s.T(), 1, *lead.Probability)
	require.NotNil(s.T(), lead.Amount)
	assert.Equal(s.T(), 100.0, *lead.Amount)
}

func (s *LeadsSuite) TestAssignmentFlow() {
	leadID := s.submitLead()

	resp := s.postForm("/leads/"+leadID+"/-assign", "admin", url.Values{"user": {"admin2"}})
	require.Equal(s.T(), http.StatusFound, resp.StatusCode)
	s.readBody(resp)

	messages := s.get("/messages", "admin")
	require.Equal(s.T(), http.StatusOK, messages.StatusCode)
	assert.Contains(s.T(), s.readBody(messages), "Lead assigned to Crm Admin2")

	repeat := s.postForm("/leads/"+leadID+"/-assign", "admin", url.Values{"user": {"admin2"}})
	require.Equal(s.T(), http.StatusFound, repeat.StatusCode)
	s.readBody(repeat)

	again := s.get("/messages", "admin")
	require.Equal(s.T(), http.StatusOK, again.StatusCode)
	assert.Contains(s.T(), s.readBody(again), "Lead already assigned to Crm Admin2")
}

func (s *LeadsSuite) TestPermissionBoundaries() {
	leadID := s.submitLead()

	resp := s.get("/sales/opportunity/leads", "")
	assert.Equal(s.T(), http.StatusUnauthorized, resp.StatusCode)
	s.readBody(resp)

	resp = s.get("/sales/opportunity/leads", "guest")
	assert.Equal(s.T(), http.StatusForbidden, resp.StatusCode)
	s.readBody(resp)

	resp = s.postForm("/leads/"+leadID+"/-assign", "guest", url.Values{"user": {"admin2"}})
	assert.Equal(s.T(), http.StatusForbidden, resp.StatusCode)
	s.readBody(resp)
}
