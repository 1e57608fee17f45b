package events

import "github.com/atomicstack/tmux-session-manager/internal/logging"

type AppTracer struct{}

type StoreTracer struct{}

var (
	App   = AppTracer{}
	Store = StoreTracer{}
)

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Exit(code int) {
	logging.Trace("app.exit", map[string]interface{}{"code": code})
}

func (StoreTracer) Save(name, path string) {
	logging.Trace("store.save", map[string]interface{}{"name": name, "path": path})
}

func (StoreTracer) Delete(name string) {
	logging.Trace("store.delete", map[string]interface{}{"name": name})
}

func (StoreTracer) List(saved, running int) {
	logging.Trace("store.list", map[string]interface{}{"saved": saved, "running": running})
}
