package rpc

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClientCall(t *testing.T) {
	var gotPath, gotContentType, gotRequestId string
	var gotPayload map[string]interface{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		gotRequestId = r.Header.Get("X-Request-Id")
		json.NewDecoder(r.Body).Decode(&gotPayload)
		w.Write([]byte(`{"message":"ISS-9"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	raw, err := c.Call(context.Background(), MethodCreateIssueFromContract, map[string]interface{}{
		"contract_name": "CONTRACT-1",
	})
	require.NoError(t, err)

	require.Equal(t, "/create_issue_from_contract", gotPath)
	require.Equal(t, "application/json", gotContentType)
	require.NotEmpty(t, gotRequestId)
	require.Equal(t, "CONTRACT-1", gotPayload["contract_name"])

	var resp MessageResponse
	require.NoError(t, json.Unmarshal(raw, &resp))
	require.Equal(t, "ISS-9", resp.Message)
}

func TestClientCallNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.Call(context.Background(), MethodSendRenewalEmail, nil)
	require.Error(t, err)
}

func TestClientCallWithoutBaseURL(t *testing.T) {
	c := NewClient("")
	_, err := c.Call(context.Background(), MethodSendRenewalEmail, nil)
	require.Error(t, err)
}

func TestEmailResponseEnvelope(t *testing.T) {
	var resp EmailResponse
	require.NoError(t, json.Unmarshal([]byte(`{"message":{"success":true,"recipient":"a@b.com"}}`), &resp))
	require.NotNil(t, resp.Message)
	require.True(t, resp.Message.Success)
	require.Equal(t, "a@b.com", resp.Message.Recipient)

	resp = EmailResponse{}
	require.NoError(t, json.Unmarshal([]byte(`{"message":null}`), &resp))
	require.Nil(t, resp.Message)
}
