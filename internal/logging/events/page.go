package events

import "github.com/atomicstack/multipage-hmi/internal/logging"

type PageTracer struct{}

var Page = PageTracer{}

func (PageTracer) Display(title string) {
	logging.Trace("page.display", map[string]interface{}{"title": title})
}

func (PageTracer) Register(title, slot string) {
	logging.Trace("page.register", map[string]interface{}{"title": title, "slot": slot})
}
