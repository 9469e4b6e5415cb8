// Package hooks provides per-scope hook storage for reactive components.
//
// A List stores arbitrary typed values in registration order. Each render of
// a component walks the list from the start with Next, getting back the value
// registered at that position on an earlier render; the first time a position
// is reached Next reports ErrExhausted and the caller registers the value with
// Push. Teardowns registered with Push run once, oldest first, when the list
// is disposed.
//
// Scope wraps a List with a render body and the Use* helpers (UseRef,
// UseState, UseMemo, UseEffect, UseController). Runtime mounts scopes, renders
// flagged ones and defers unmounts requested mid-render.
//
// Hooks must be called in the same order on every render. The store cannot
// enforce this: a reordered call is reported as a *TypeMismatchError, and a
// changed hook count as a *HookOrderError from Scope.Render. The hookcheck
// analyzer flags hook calls made inside conditionals and loops.
package hooks
