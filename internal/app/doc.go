// Package app is the composition root for picklist.
//
// Run wires the pieces together in this order:
//
//	Run()
//	 ├─> config.Load()     seed records, placeholder title, log settings
//	 ├─> logging.New()     logrus logger writing to the log file
//	 ├─> NewStore()        state.Store seeded from the config
//	 ├─> prefs.Load()      theme preference
//	 └─> ui.Run()          Bubble Tea program (blocks)
//
// The store is created here and handed to the UI explicitly; nothing in
// picklist reaches it through package-level state. The UI subscribes on
// startup and is the only caller of the store's mutators.
//
// Errors from config loading, log setup and store construction are wrapped
// and returned; the command layer prints them and exits non-zero.
package app
