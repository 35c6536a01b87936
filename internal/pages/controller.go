package pages

import (
	"context"
	"strings"

	"kitchenfab_admin/internal/forms"
	"kitchenfab_admin/internal/notify"
	"kitchenfab_admin/internal/store"
)

// Confirmer asks the user to confirm a destructive action. The rendering
// layer supplies a blocking dialog; tests supply stubs.
type Confirmer func(prompt string) bool

// Controller composes one resource store with the toast notifier and the
// delete confirmation for a single admin page. Forms plug in through the
// SaveNew/SaveEdit callbacks.
type Controller[T any] struct {
	label    string
	store    *store.Store[T]
	notifier *notify.Notifier
	confirm  Confirmer
}

// NewController wires a page controller for one resource.
func NewController[T any](label string, st *store.Store[T], notifier *notify.Notifier, confirm Confirmer) *Controller[T] {
	return &Controller[T]{label: label, store: st, notifier: notifier, confirm: confirm}
}

// Store exposes the underlying resource store to the rendering layer.
func (c *Controller[T]) Store() *store.Store[T] {
	return c.store
}

// Mount performs the initial page-1 fetch.
func (c *Controller[T]) Mount(ctx context.Context) {
	c.store.Fetch(ctx)
}

// Unmount closes the store so late responses are discarded.
func (c *Controller[T]) Unmount() {
	c.store.Close()
}

// SaveNew returns the form save callback for create mode. On success the
// record lands at the top of the list and a toast is shown; on failure the
// message goes back to the form's submit-error slot.
func (c *Controller[T]) SaveNew(ctx context.Context) forms.SaveFunc {
	return func(payload interface{}) (bool, string) {
		res := c.store.Create(ctx, payload)
		if !res.Success {
			return false, res.Err
		}
		c.notifier.Success(c.label + " created successfully.")
		return true, ""
	}
}

// SaveEdit returns the form save callback for edit mode.
func (c *Controller[T]) SaveEdit(ctx context.Context, id int64) forms.SaveFunc {
	return func(payload interface{}) (bool, string) {
		res := c.store.Update(ctx, id, payload)
		if !res.Success {
			return false, res.Err
		}
		c.notifier.Success(c.label + " updated successfully.")
		return true, ""
	}
}

// Delete confirms and deletes one record. A declined confirmation is a no-op;
// a failed delete leaves the list unchanged and shows an error toast.
func (c *Controller[T]) Delete(ctx context.Context, id int64) bool {
	if c.confirm != nil && !c.confirm("Delete this "+strings.ToLower(c.label)+"? This cannot be undone.") {
		return false
	}
	res := c.store.Delete(ctx, id)
	if !res.Success {
		c.notifier.Error(res.Err)
		return false
	}
	c.notifier.Success(c.label + " deleted successfully.")
	return true
}

// Toggle flips a record's active flag, showing a toast either way.
func (c *Controller[T]) Toggle(ctx context.Context, id int64, active bool) bool {
	res := c.store.ToggleStatus(ctx, id, active)
	if !res.Success {
		c.notifier.Error(res.Err)
		return false
	}
	if active {
		c.notifier.Success(c.label + " activated.")
	} else {
		c.notifier.Success(c.label + " deactivated.")
	}
	return true
}

// SearchInput forwards a search box change to the store. There is no
// debounce; every change re-fetches with the new term.
func (c *Controller[T]) SearchInput(ctx context.Context, term string) {
	c.store.Search(ctx, term)
}
