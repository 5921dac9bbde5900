// Package ui renders the record store as a Bubble Tea program.
//
// # Store binding
//
// New subscribes to the store once. The listener runs on the Bubble Tea
// event loop, because every mutation is triggered from Update, so it copies
// GetState() straight into a shared listView without any channel or lock:
//
//	key press → Update → store.AddItem()
//	                        └─ listener → view.snapshot = store.GetState()
//	Update returns → View renders view.snapshot
//
// Quitting (or Close) removes the subscription.
//
// # Layout
//
//	picklist  Records: 7  Selected: 3. Heading          header
//	   1  Item name
//	 ● 3  Heading                     Выделяли 2 раза    list (cursor row highlighted)
//	a Add record • d Delete record • enter ...          footer (bubbles/help)
//
// The list scrolls to keep the cursor visible. When the terminal is narrow
// the selection counter column is dropped before titles are truncated.
//
// # Themes
//
// Nightfox, Kanagawa and Slate. T cycles them and stores the choice through
// the prefs package.
package ui
