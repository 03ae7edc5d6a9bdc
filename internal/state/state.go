// Package state holds the single source of truth for a configurator session:
// ROI inputs, the quote selection, the reference dictionaries and the lead
// profile. Updates are pure reducer-style functions returning a new State;
// derived figures are recomputed on every read so they can never go stale.
package state

import (
	"encoding/json"

	"github.com/rotisserie/eris"

	"github.com/sells-group/offerdesk/internal/dict"
	"github.com/sells-group/offerdesk/internal/model"
)

// NamespaceKey is the fixed storage key the whole snapshot lives under.
// Bumping the version suffix is the only supported migration mechanism:
// a new key starts sessions from defaults.
const NamespaceKey = "offerdesk_state_v3"

// Settings are operator-level preferences persisted with the snapshot.
type Settings struct {
	OperatorName   string `json:"operator_name,omitempty"`
	CRMPipelineID  string `json:"crm_pipeline_id,omitempty"`
	ResearchModel  string `json:"research_model,omitempty"`
}

// State is the full application state.
type State struct {
	ROI      model.ROIInputs       `json:"roi"`
	Config   model.ConfigSelection `json:"config"`
	Dict     dict.Dictionaries     `json:"dictionaries"`
	Lead     model.LeadProfile     `json:"lead"`
	Research model.ResearchStatus  `json:"research_status"`
	Settings Settings              `json:"settings"`
}

// Default returns the documented default state.
func Default() State {
	return State{
		ROI: model.ROIInputs{
			WorkdaysInMonth: 22,
			ProviderFit:     model.ProviderFitUnknown,
		},
		Config: model.ConfigSelection{
			Hosting:                  model.HostingCloud,
			Subscription:             model.SubscriptionMonthly,
			LicenseMultiplier:        1.0,
			SubscriptionYears:        1,
			ModuleQty:                map[string]int{},
			ImplementationPackage:    "BASIC",
			ImplementationMultiplier: 1.0,
			SupportPackage:           "STANDARD",
			SupportPeriod:            model.BillingMonthly,
		},
		Dict:     dict.Default(),
		Research: model.ResearchIdle,
	}
}

// Snapshot serializes the state to its persisted JSON form.
func Snapshot(s State) ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, eris.Wrap(err, "state: marshal snapshot")
	}
	return data, nil
}

// Restore rebuilds a State from a persisted snapshot. Unknown fields are
// ignored; a corrupt blob is an error and callers fall back to Default.
func Restore(data []byte) (State, error) {
	var s State
	if err := json.Unmarshal(data, &s); err != nil {
		return Default(), eris.Wrap(err, "state: unmarshal snapshot")
	}
	if s.Config.ModuleQty == nil {
		s.Config.ModuleQty = map[string]int{}
	}
	if s.Research == "" {
		s.Research = model.ResearchIdle
	}
	return s, nil
}
