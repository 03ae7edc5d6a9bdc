package main

import (
	"context"
	"sync"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/offerdesk/internal/dict"
	"github.com/sells-group/offerdesk/internal/research"
	"github.com/sells-group/offerdesk/internal/state"
	"github.com/sells-group/offerdesk/pkg/anthropic"
	"github.com/sells-group/offerdesk/pkg/hubspot"
)

// env bundles the long-lived resources a command needs: the snapshot store,
// the resolved dictionaries and the optional external clients.
type env struct {
	store      state.Store
	dicts      dict.Dictionaries
	crm        hubspot.Client
	researcher *research.Researcher

	// Serializes load-modify-save cycles on the single session snapshot.
	mu sync.Mutex
}

func initEnv(ctx context.Context) (*env, error) {
	st, err := openStore(ctx)
	if err != nil {
		return nil, err
	}
	if err := st.Migrate(ctx); err != nil {
		st.Close()
		return nil, eris.Wrap(err, "migrate store")
	}

	dicts := dict.Default()
	if cfg.Dict.OverridesPath != "" {
		dicts, err = dict.LoadOverrides(cfg.Dict.OverridesPath)
		if err != nil {
			st.Close()
			return nil, eris.Wrap(err, "load dictionary overrides")
		}
	}

	e := &env{store: st, dicts: dicts}

	if cfg.HubSpot.Token != "" {
		e.crm = hubspot.NewClient(cfg.HubSpot.Token, hubspot.WithBaseURL(cfg.HubSpot.BaseURL))
	}
	if cfg.Anthropic.Key != "" {
		client := anthropic.NewClient(cfg.Anthropic.Key)
		e.researcher = research.NewResearcher(map[string]research.Provider{
			"claude": research.NewAnthropicProvider(client, cfg.Anthropic.Model),
		})
	}

	return e, nil
}

func openStore(ctx context.Context) (state.Store, error) {
	switch cfg.Store.Driver {
	case "postgres":
		return state.NewPostgres(ctx, cfg.Store.DatabaseURL)
	default:
		return state.NewSQLite(cfg.Store.Path)
	}
}

func (e *env) Close() {
	if err := e.store.Close(); err != nil {
		zap.L().Warn("store close failed", zap.Error(err))
	}
}

// loadState reads the session snapshot. A missing or corrupt snapshot starts
// a fresh session over the configured dictionaries.
func (e *env) loadState(ctx context.Context) (state.State, error) {
	data, err := e.store.Load(ctx, state.NamespaceKey)
	if err != nil {
		return state.State{}, eris.Wrap(err, "load snapshot")
	}
	if data == nil {
		return e.freshState(), nil
	}

	s, err := state.Restore(data)
	if err != nil {
		zap.L().Warn("corrupt snapshot, starting fresh", zap.Error(err))
		return e.freshState(), nil
	}
	return s, nil
}

func (e *env) saveState(ctx context.Context, s state.State) error {
	data, err := state.Snapshot(s)
	if err != nil {
		return err
	}
	if err := e.store.Save(ctx, state.NamespaceKey, data); err != nil {
		return eris.Wrap(err, "save snapshot")
	}
	return nil
}

func (e *env) freshState() state.State {
	s := state.Default()
	s.Dict = e.dicts
	return s
}
