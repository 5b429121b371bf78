package router

// Table is an ordered route table. It records pattern/handler associations
// for the document generator to walk; it performs no matching or dispatch.
type Table struct {
	routes []*Route
}

// NewTable returns an empty route table.
func NewTable() *Table {
	return &Table{}
}

// Handle registers a pattern with its handler and returns the new route.
// Registration order is preserved. Pattern errors are reported by the
// route's accessors rather than here.
func (t *Table) Handle(pattern string, h *Handler) *Route {
	rt := newRoute(pattern, h)
	t.routes = append(t.routes, rt)
	return rt
}

// Routes returns the registered routes in registration order.
func (t *Table) Routes() []*Route {
	return t.routes
}

// Walk visits every route in registration order, stopping at the first
// error returned by fn.
func (t *Table) Walk(fn func(*Route) error) error {
	for _, rt := range t.routes {
		if err := fn(rt); err != nil {
			return err
		}
	}
	return nil
}
