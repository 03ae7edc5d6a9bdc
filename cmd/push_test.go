package main

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/offerdesk/internal/export"
	"github.com/sells-group/offerdesk/internal/model"
	"github.com/sells-group/offerdesk/pkg/hubspot"
)

type fakeCRM struct {
	deal      hubspot.DealInput
	items     []hubspot.LineItemInput
	assocDeal string
	assocIDs  []string
}

func (f *fakeCRM) CreateDeal(ctx context.Context, deal hubspot.DealInput) (*hubspot.Deal, error) {
	f.deal = deal
	return &hubspot.Deal{ID: "deal-1"}, nil
}

func (f *fakeCRM) CreateLineItems(ctx context.Context, items []hubspot.LineItemInput) ([]hubspot.ObjectRef, error) {
	f.items = items
	refs := make([]hubspot.ObjectRef, len(items))
	for i := range items {
		refs[i] = hubspot.ObjectRef{ID: "li-" + items[i].Name}
	}
	return refs, nil
}

func (f *fakeCRM) AssociateLineItems(ctx context.Context, dealID string, lineItemIDs []string) error {
	f.assocDeal = dealID
	f.assocIDs = lineItemIDs
	return nil
}

func (f *fakeCRM) UpdateDealProperties(ctx context.Context, dealID string, properties map[string]string) error {
	return nil
}

func TestPushDeal(t *testing.T) {
	t.Parallel()

	crm := &fakeCRM{}
	payload := export.Payload{
		DealName:    "OFERTA_MEBLEX",
		AmountGrosz: 2_588_700,
		LineItems: []model.LineItem{
			{ProductID: "2901001", Name: "Handel", Quantity: 3, UnitPriceGrosz: 29_900},
			{ProductID: "2901060", Name: "Pakiet BASIC", Quantity: 1, UnitPriceGrosz: 2_499_000},
		},
		Properties: map[string]string{"payback_months": "0.4"},
	}

	dealID, err := pushDeal(t.Context(), crm, payload, "pipeline-7")
	require.NoError(t, err)
	assert.Equal(t, "deal-1", dealID)

	assert.Equal(t, "OFERTA_MEBLEX", crm.deal.Name)
	assert.Equal(t, "25887.00", crm.deal.Amount)
	assert.Equal(t, "pipeline-7", crm.deal.PipelineID)
	assert.Equal(t, "0.4", crm.deal.Properties["payback_months"])

	require.Len(t, crm.items, 2)
	assert.Equal(t, "299.00", crm.items[0].Price)

	assert.Equal(t, "deal-1", crm.assocDeal)
	assert.Equal(t, []string{"li-Handel", "li-Pakiet BASIC"}, crm.assocIDs)
}

func TestServePushWithFakeCRM(t *testing.T) {
	t.Parallel()

	e := testEnv(t)
	crm := &fakeCRM{}
	e.crm = crm
	h := newRouter(e, "pipeline-7")

	rec := doJSON(t, h, http.MethodPost, "/push", nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "deal-1")

	// A fresh session has no company name yet.
	assert.Equal(t, "OFERTA_NOWY_KLIENT", crm.deal.Name)
	// Implementation and support rows always project.
	require.Len(t, crm.items, 2)
}

func TestGroszToDecimal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   int64
		want string
	}{
		{0, "0.00"},
		{5, "0.05"},
		{29_900, "299.00"},
		{2_499_001, "24990.01"},
		{-150, "-1.50"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, groszToDecimal(tt.in))
	}
}
