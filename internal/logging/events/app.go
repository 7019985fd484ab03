package events

import "github.com/atomicstack/multipage-hmi/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Stop(reason string) {
	logging.Trace("app.stop", map[string]interface{}{"reason": reason})
}

func (AppTracer) Reload(path string) {
	logging.Trace("app.reload", map[string]interface{}{"path": path})
}

func (AppTracer) ReloadError(err error) {
	if err == nil {
		return
	}
	logging.Trace("app.reload-error", map[string]interface{}{"error": err.Error()})
}
