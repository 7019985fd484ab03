package events

import "github.com/atomicstack/multipage-hmi/internal/logging"

type NavTracer struct{}

var Nav = NavTracer{}

func (NavTracer) Interaction(interaction, state string) {
	logging.Trace("nav.interaction", map[string]interface{}{
		"interaction": interaction,
		"state":       state,
	})
}

func (NavTracer) Dispatch(navigation, result, state string) {
	logging.Trace("nav.dispatch", map[string]interface{}{
		"navigation": navigation,
		"result":     result,
		"state":      state,
	})
}

func (NavTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("nav.error", map[string]interface{}{"error": err.Error()})
}
