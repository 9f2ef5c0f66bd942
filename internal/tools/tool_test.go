package tools

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/codexhq/congress-mcp-server/internal/congress"
)

// recordingUpstream fakes Congress.gov and records the last request line.
type recordingUpstream struct {
	srv   *httptest.Server
	path  string
	query string
	calls int
}

func newRecordingUpstream(t *testing.T, body string) *recordingUpstream {
	t.Helper()
	u := &recordingUpstream{}
	u.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u.path = r.URL.EscapedPath()
		u.query = r.URL.RawQuery
		u.calls++
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(u.srv.Close)
	return u
}

func (u *recordingUpstream) client() *congress.Client {
	return congress.New(congress.Config{BaseURL: u.srv.URL, APIKey: "test-key"})
}

func invoke(t *testing.T, c *congress.Client, name, args string) string {
	t.Helper()
	tool := findTool(t, c, name)
	result, rpcErr := tool.Invoke(context.Background(), json.RawMessage(args))
	require.Nil(t, rpcErr)
	require.Len(t, result.Content, 1)
	return result.Content[0].Text
}

func findTool(t *testing.T, c *congress.Client, name string) *apiTool {
	t.Helper()
	for _, d := range Defs() {
		if d.Name == name {
			return newAPITool(c, d)
		}
	}
	t.Fatalf("tool %s not in catalog", name)
	return nil
}

func TestGetBillDetailsPathAndVerbatimBody(t *testing.T) {
	up := newRecordingUpstream(t, `{"bill": {"title": "NOTAM Improvement Act"}}`)

	got := invoke(t, up.client(), "get_bill_details", `{"congress": 117, "billType": "hr", "billNumber": 3076}`)

	require.Equal(t, "/bill/117/hr/3076", up.path)
	require.Equal(t, "api_key=test-key", up.query)
	require.Equal(t, `{"bill": {"title": "NOTAM Improvement Act"}}`, got)
}

func TestListBillsQueryEncoding(t *testing.T) {
	up := newRecordingUpstream(t, `{}`)

	invoke(t, up.client(), "list_bills", `{"limit": 50, "offset": 0, "sort": "updateDate+desc"}`)

	require.Equal(t, "/bill", up.path)
	require.Equal(t, "api_key=test-key&limit=50&offset=0&sort=updateDate%2Bdesc", up.query)
}

func TestListToolsApplyPagingDefaults(t *testing.T) {
	up := newRecordingUpstream(t, `{}`)

	invoke(t, up.client(), "list_amendments", `{}`)

	require.Equal(t, "/amendment", up.path)
	require.Equal(t, "api_key=test-key&limit=100&offset=0", up.query)
}

func TestOmittedFiltersStayAbsent(t *testing.T) {
	up := newRecordingUpstream(t, `{}`)

	invoke(t, up.client(), "list_bills", `{"fromDateTime": "2024-01-01T00:00:00Z"}`)

	require.NotContains(t, up.query, "toDateTime")
	require.NotContains(t, up.query, "sort")
	require.Contains(t, up.query, "fromDateTime=2024-01-01T00%3A00%3A00Z")
}

func TestEmptyFilterBehavesAsUnset(t *testing.T) {
	up := newRecordingUpstream(t, `{}`)

	invoke(t, up.client(), "list_bills", `{"sort": "", "fromDateTime": ""}`)

	require.Equal(t, "api_key=test-key&limit=100&offset=0", up.query)
}

func TestTriStateBooleanSerialization(t *testing.T) {
	cases := []struct {
		name string
		tool string
		args string
		want string // "" means the key must be absent
		key  string
	}{
		{"currentMember unset", "list_members", `{}`, "", "currentMember"},
		{"currentMember true", "list_members", `{"currentMember": true}`, "currentMember=true", "currentMember"},
		{"currentMember false", "list_members", `{"currentMember": false}`, "currentMember=false", "currentMember"},
		{"conference unset", "list_committee_reports_by_congress", `{"congress": 117}`, "", "conference"},
		{"conference true", "list_committee_reports_by_congress", `{"congress": 117, "conference": true}`, "conference=true", "conference"},
		{"conference false", "list_committee_reports_by_congress", `{"congress": 117, "conference": false}`, "conference=false", "conference"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			up := newRecordingUpstream(t, `{}`)
			invoke(t, up.client(), tc.tool, tc.args)
			if tc.want == "" {
				require.NotContains(t, up.query, tc.key)
			} else {
				require.Contains(t, up.query, tc.want)
			}
		})
	}
}

func TestDetailToolsSendNoPagination(t *testing.T) {
	up := newRecordingUpstream(t, `{}`)

	invoke(t, up.client(), "get_member_details", `{"bioguideId": "P000197"}`)

	require.Equal(t, "/member/P000197", up.path)
	require.Equal(t, "api_key=test-key", up.query)
}

func TestDetailFetchIsIdempotent(t *testing.T) {
	up := newRecordingUpstream(t, `{"treaty": {"number": 3}}`)
	c := up.client()

	first := invoke(t, c, "get_treaty_details", `{"congress": 117, "treatyNumber": 3}`)
	second := invoke(t, c, "get_treaty_details", `{"congress": 117, "treatyNumber": 3}`)

	require.Equal(t, first, second)
	require.Equal(t, 2, up.calls)
}

func TestMissingCredentialShortCircuitsEveryTool(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no network call may happen without a credential")
	}))
	t.Cleanup(srv.Close)
	c := congress.New(congress.Config{BaseURL: srv.URL})

	got := invoke(t, c, "get_current_congress", `{}`)
	require.Equal(t, `{"error":"API key is not configured."}`, got)
}

func TestMissingRequiredArgument(t *testing.T) {
	up := newRecordingUpstream(t, `{}`)
	tool := findTool(t, up.client(), "get_bill_details")

	_, rpcErr := tool.Invoke(context.Background(), json.RawMessage(`{"congress": 117, "billType": "hr"}`))
	require.NotNil(t, rpcErr)
	require.Equal(t, -32602, rpcErr.Code)
	require.Contains(t, rpcErr.Message, "billNumber")
	require.Zero(t, up.calls)
}

func TestUnrecognizedEnumPassesThrough(t *testing.T) {
	// Validation belongs to upstream: an out-of-range chamber is sent as-is.
	up := newRecordingUpstream(t, `{}`)

	invoke(t, up.client(), "list_committees_by_chamber", `{"chamber": "galactic"}`)

	require.Equal(t, "/committee/galactic", up.path)
}

func TestPathParamsAreEscaped(t *testing.T) {
	up := newRecordingUpstream(t, `{}`)

	invoke(t, up.client(), "get_crs_report_details", `{"reportNumber": "R4/6798"}`)

	require.Equal(t, "/crsreport/R4%2F6798", up.path)
}
