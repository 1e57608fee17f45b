package events

import "github.com/atomicstack/tmux-session-manager/internal/logging"

type MenuTracer struct{}

type FilterTracer struct{}

type ActionTracer struct{}

type PreviewTracer struct{}

var (
	Menu    = MenuTracer{}
	Filter  = FilterTracer{}
	Action  = ActionTracer{}
	Preview = PreviewTracer{}
)

func (MenuTracer) Start(entries int, preview, confirm bool) {
	logging.Trace("menu.start", map[string]interface{}{
		"entries": entries,
		"preview": preview,
		"confirm": confirm,
	})
}

func (MenuTracer) Cursor(index int, name string) {
	logging.Trace("menu.cursor", map[string]interface{}{"index": index, "name": name})
}

func (MenuTracer) Mode(mode string) {
	logging.Trace("menu.mode", map[string]interface{}{"mode": mode})
}

func (MenuTracer) TogglePreview(visible bool) {
	logging.Trace("menu.preview-toggle", map[string]interface{}{"visible": visible})
}

func (MenuTracer) Quit() {
	logging.Trace("menu.quit", nil)
}

func (FilterTracer) Append(query string, matches int) {
	logging.Trace("filter.append", map[string]interface{}{"query": query, "matches": matches})
}

func (FilterTracer) Backspace(query string, matches int) {
	logging.Trace("filter.backspace", map[string]interface{}{"query": query, "matches": matches})
}

func (FilterTracer) WordBackspace(query string, matches int) {
	logging.Trace("filter.word-backspace", map[string]interface{}{"query": query, "matches": matches})
}

func (ActionTracer) Dispatch(action, target string) {
	logging.Trace("action.dispatch", map[string]interface{}{"action": action, "target": target})
}

func (ActionTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", map[string]interface{}{"error": err.Error()})
}

func (ActionTracer) Success(info string) {
	logging.Trace("action.success", map[string]interface{}{"info": info})
}

func (PreviewTracer) Fetch(target string) {
	logging.Trace("preview.fetch", map[string]interface{}{"target": target})
}

func (PreviewTracer) Error(target string, err error) {
	if err == nil {
		return
	}
	logging.Trace("preview.error", map[string]interface{}{"target": target, "error": err.Error()})
}
