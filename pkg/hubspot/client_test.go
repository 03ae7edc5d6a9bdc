package hubspot

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateDeal(t *testing.T) {
	t.Parallel()

	var gotPath, gotAuth string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"1234","properties":{"dealname":"OFERTA_MEBLEX"}}`))
	}))
	defer srv.Close()

	c := NewClient("token-abc", WithBaseURL(srv.URL))
	deal, err := c.CreateDeal(t.Context(), DealInput{
		Name:       "OFERTA_MEBLEX",
		Amount:     "64975.00",
		Properties: map[string]string{"payback_months": "3"},
	})
	require.NoError(t, err)

	assert.Equal(t, "1234", deal.ID)
	assert.Equal(t, "/crm/v3/objects/deals", gotPath)
	assert.Equal(t, "Bearer token-abc", gotAuth)

	props := gotBody["properties"].(map[string]any)
	assert.Equal(t, "OFERTA_MEBLEX", props["dealname"])
	assert.Equal(t, "64975.00", props["amount"])
	assert.Equal(t, "3", props["payback_months"])
}

func TestCreateLineItemsBatch(t *testing.T) {
	t.Parallel()

	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/crm/v3/objects/line_items/batch/create", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(`{"results":[{"id":"li-1"},{"id":"li-2"}]}`))
	}))
	defer srv.Close()

	c := NewClient("t", WithBaseURL(srv.URL))
	refs, err := c.CreateLineItems(t.Context(), []LineItemInput{
		{ProductID: "2901001", Name: "Handel", Quantity: 3, Price: "299.00"},
		{Name: "Dodatkowe ustalenia", Quantity: 1, Price: "500.00"},
	})
	require.NoError(t, err)
	require.Len(t, refs, 2)
	assert.Equal(t, "li-1", refs[0].ID)

	inputs := gotBody["inputs"].([]any)
	require.Len(t, inputs, 2)
	first := inputs[0].(map[string]any)["properties"].(map[string]any)
	assert.Equal(t, "2901001", first["hs_product_id"])
	assert.Equal(t, "3", first["quantity"])
	// No product mapping means no hs_product_id property at all.
	second := inputs[1].(map[string]any)["properties"].(map[string]any)
	_, ok := second["hs_product_id"]
	assert.False(t, ok)
}

func TestCreateLineItemsEmpty(t *testing.T) {
	t.Parallel()

	c := NewClient("t", WithBaseURL("http://127.0.0.1:0"))
	refs, err := c.CreateLineItems(t.Context(), nil)
	require.NoError(t, err)
	assert.Empty(t, refs)
}

func TestAssociateLineItems(t *testing.T) {
	t.Parallel()

	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/crm/v4/associations/line_items/deals/batch/create", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"status":"COMPLETE"}`))
	}))
	defer srv.Close()

	c := NewClient("t", WithBaseURL(srv.URL))
	err := c.AssociateLineItems(t.Context(), "deal-9", []string{"li-1", "li-2"})
	require.NoError(t, err)

	inputs := gotBody["inputs"].([]any)
	require.Len(t, inputs, 2)
	first := inputs[0].(map[string]any)
	assert.Equal(t, "li-1", first["from"].(map[string]any)["id"])
	assert.Equal(t, "deal-9", first["to"].(map[string]any)["id"])
}

func TestUpdateDealProperties(t *testing.T) {
	t.Parallel()

	var gotMethod, gotPath string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(`{"id":"deal-9"}`))
	}))
	defer srv.Close()

	c := NewClient("t", WithBaseURL(srv.URL))
	err := c.UpdateDealProperties(t.Context(), "deal-9", map[string]string{"payback_months": "2.5"})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPatch, gotMethod)
	assert.Equal(t, "/crm/v3/objects/deals/deal-9", gotPath)
	props := gotBody["properties"].(map[string]any)
	assert.Equal(t, "2.5", props["payback_months"])
}

func TestErrorStatusIncludesBody(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"invalid token"}`))
	}))
	defer srv.Close()

	c := NewClient("bad", WithBaseURL(srv.URL))
	_, err := c.CreateDeal(t.Context(), DealInput{Name: "X"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
	assert.Contains(t, err.Error(), "invalid token")
}
