// Package state holds the observable record store behind the picklist UI.
//
// # Overview
//
// A Store owns one State snapshot: an ordered list of records, the highest
// code ever issued (MaxCode) and the set of codes currently in use
// (UsedCodes). Every mutator builds a fresh State and publishes it through
// SetState, which calls each listener with no arguments. Listeners read the
// new snapshot themselves with GetState.
//
//	caller            Store                    listeners
//	──────            ─────                    ─────────
//	AddItem() ──→ GenerateUniqueCode()
//	              build next State
//	              SetState(next) ──────────→ l1(), l2(), ...
//	                                           └─ GetState()
//
// # Codes
//
// Codes are issued from MaxCode+1 upward, skipping any value still in
// UsedCodes. MaxCode never decreases, so a deleted code below it is never
// handed out again even though DeleteItem removes it from UsedCodes:
//
//	list [1 2 3]  MaxCode 3
//	DeleteItem(2) → list [1 3]   UsedCodes {1 3}   MaxCode 3
//	AddItem()     → list [1 3 4] UsedCodes {1 3 4} MaxCode 4
//
// GenerateUniqueCode writes UsedCodes and MaxCode on the live snapshot
// without notifying anyone. AddItem publishes the result right after.
//
// # Selection
//
// At most one record is selected. SelectItem toggles the target record and
// clears every other one; only the unselected-to-selected transition bumps
// SelectionCount. Passing a code that is not in the list clears the
// selection.
//
// # Concurrency
//
// None. The store has no lock and expects a single owning goroutine, which
// in picklist is the bubbletea event loop. A listener may mutate the store
// again; the nested SetState notifies everyone before the outer one
// continues.
//
// # Subscriptions
//
// Subscribe hands out a token per registration, so the same function can be
// registered twice and each unsubscribe removes only its own entry:
//
//	unsub := store.Subscribe(func() {
//		render(store.GetState())
//	})
//	defer unsub()
package state
