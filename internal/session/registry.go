package session

// handlerRegistry maps actions to custom handlers. A missing key means
// the default behavior for that action applies.
type handlerRegistry map[Action]Handler

// set installs handler for action. A nil handler removes the mapping;
// removing an absent mapping is not an error.
func (r handlerRegistry) set(action Action, handler Handler) {
	if handler == nil {
		delete(r, action)
		return
	}
	r[action] = handler
}

// resolve returns the custom handler for action, or nil if none is
// registered.
func (r handlerRegistry) resolve(action Action) Handler {
	return r[action]
}
