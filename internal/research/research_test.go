package research

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/offerdesk/internal/model"
	"github.com/sells-group/offerdesk/internal/state"
)

type fakeProvider struct {
	reply string
	err   error
	calls int
}

func (f *fakeProvider) GenerateText(ctx context.Context, prompt string) (string, error) {
	f.calls++
	return f.reply, f.err
}

func newResearcher(p Provider) *Researcher {
	return NewResearcher(map[string]Provider{"claude": p})
}

func TestGenerateTextUnknownProvider(t *testing.T) {
	t.Parallel()

	r := newResearcher(&fakeProvider{})
	_, err := r.GenerateText(context.Background(), "gpt", "hi")
	assert.Error(t, err)
}

func TestResearchLeadParsesJSON(t *testing.T) {
	t.Parallel()

	p := &fakeProvider{reply: `{"company_name":"Meblex","industry":"furniture","employee_range":"50-100","summary":"Producent mebli."}`}
	r := newResearcher(p)

	got, err := r.ResearchLead(context.Background(), "claude", "Meblex", "https://meblex.example")
	require.NoError(t, err)
	assert.Equal(t, "Meblex", got.CompanyName)
	assert.Equal(t, "furniture", got.Industry)
	assert.Equal(t, 1, p.calls)
}

func TestResearchLeadStripsCodeFences(t *testing.T) {
	t.Parallel()

	p := &fakeProvider{reply: "```json\n{\"company_name\":\"Meblex\"}\n```"}
	r := newResearcher(p)

	got, err := r.ResearchLead(context.Background(), "claude", "Meblex", "")
	require.NoError(t, err)
	assert.Equal(t, "Meblex", got.CompanyName)
}

func TestResearchLeadFillsMissingName(t *testing.T) {
	t.Parallel()

	p := &fakeProvider{reply: `{"industry":"retail"}`}
	r := newResearcher(p)

	got, err := r.ResearchLead(context.Background(), "claude", "Sklepix", "")
	require.NoError(t, err)
	assert.Equal(t, "Sklepix", got.CompanyName)
}

func TestRunLeadResearchCompleted(t *testing.T) {
	t.Parallel()

	s := state.Default()
	s = state.SetLead(s, model.LeadProfile{CompanyName: "Meblex"})

	p := &fakeProvider{reply: `{"company_name":"Meblex Sp. z o.o.","industry":"furniture"}`}
	got := RunLeadResearch(context.Background(), s, newResearcher(p), "claude")

	assert.Equal(t, model.ResearchCompleted, got.Research)
	assert.Equal(t, "Meblex Sp. z o.o.", got.Lead.CompanyName)
}

func TestRunLeadResearchErrorKeepsPriorData(t *testing.T) {
	t.Parallel()

	s := state.Default()
	s = state.SetLead(s, model.LeadProfile{CompanyName: "Meblex", Industry: "furniture"})

	p := &fakeProvider{err: errors.New("boom")}
	got := RunLeadResearch(context.Background(), s, newResearcher(p), "claude")

	assert.Equal(t, model.ResearchError, got.Research)
	// Prior profile untouched.
	assert.Equal(t, "Meblex", got.Lead.CompanyName)
	assert.Equal(t, "furniture", got.Lead.Industry)
}

func TestRunLeadResearchMalformedReply(t *testing.T) {
	t.Parallel()

	s := state.Default()
	p := &fakeProvider{reply: "I could not find anything."}
	got := RunLeadResearch(context.Background(), s, newResearcher(p), "claude")
	assert.Equal(t, model.ResearchError, got.Research)
}
