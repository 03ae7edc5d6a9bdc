// Package research populates the lead profile via text-generation providers.
// The pricing/ROI core never depends on anything produced here; research
// only fills descriptive fields. The flow is a linear status machine:
// IDLE -> PROCESSING -> COMPLETED or ERROR, with no retry or cancellation,
// and a failure always leaves previously gathered data intact.
package research

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/offerdesk/internal/model"
	"github.com/sells-group/offerdesk/internal/state"
	"github.com/sells-group/offerdesk/pkg/anthropic"
)

// Provider generates text for a prompt.
type Provider interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// AnthropicProvider backs Provider with the Claude API.
type AnthropicProvider struct {
	client anthropic.Client
	model  string
}

// NewAnthropicProvider creates a provider using the given client and model.
func NewAnthropicProvider(client anthropic.Client, model string) *AnthropicProvider {
	return &AnthropicProvider{client: client, model: model}
}

// GenerateText sends a single-turn prompt and returns the completion text.
func (p *AnthropicProvider) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := p.client.CreateMessage(ctx, anthropic.MessageRequest{
		Model:     p.model,
		MaxTokens: 2048,
		Messages:  []anthropic.Message{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", err
	}
	return resp.Text, nil
}

// Researcher routes generation requests to named providers.
type Researcher struct {
	providers map[string]Provider
}

// NewResearcher creates a Researcher over a provider registry.
func NewResearcher(providers map[string]Provider) *Researcher {
	return &Researcher{providers: providers}
}

// GenerateText generates text via the named provider.
func (r *Researcher) GenerateText(ctx context.Context, providerID, prompt string) (string, error) {
	p, ok := r.providers[providerID]
	if !ok {
		return "", eris.Errorf("research: unknown provider %q", providerID)
	}
	return p.GenerateText(ctx, prompt)
}

const leadPrompt = `Zbierz publicznie dostępne informacje o firmie %q (strona: %s).
Odpowiedz wyłącznie obiektem JSON o polach:
company_name, website, industry, employee_range, summary.`

// ResearchLead asks the provider for a structured lead profile.
func (r *Researcher) ResearchLead(ctx context.Context, providerID, companyName, website string) (model.LeadProfile, error) {
	text, err := r.GenerateText(ctx, providerID, fmt.Sprintf(leadPrompt, companyName, website))
	if err != nil {
		return model.LeadProfile{}, err
	}

	var profile model.LeadProfile
	if err := json.Unmarshal([]byte(stripFences(text)), &profile); err != nil {
		return model.LeadProfile{}, eris.Wrap(err, "research: parse lead profile")
	}
	if profile.CompanyName == "" {
		profile.CompanyName = companyName
	}
	return profile, nil
}

// stripFences removes a markdown code fence around a JSON reply, if present.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	return strings.TrimSpace(s)
}

// RunLeadResearch drives the status machine on the state: PROCESSING while
// the provider call is in flight, then COMPLETED with the new profile or
// ERROR with the prior profile untouched. The updated state is returned in
// both cases.
func RunLeadResearch(ctx context.Context, s state.State, r *Researcher, providerID string) state.State {
	s = state.SetResearchStatus(s, model.ResearchProcessing)

	profile, err := r.ResearchLead(ctx, providerID, s.Lead.CompanyName, s.Lead.Website)
	if err != nil {
		zap.L().Error("research: lead research failed",
			zap.String("provider", providerID),
			zap.String("company", s.Lead.CompanyName),
			zap.Error(err),
		)
		return state.SetResearchStatus(s, model.ResearchError)
	}

	zap.L().Info("research: lead research complete",
		zap.String("provider", providerID),
		zap.String("company", profile.CompanyName),
	)
	s = state.SetLead(s, profile)
	return state.SetResearchStatus(s, model.ResearchCompleted)
}
