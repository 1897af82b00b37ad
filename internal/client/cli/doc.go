// Package cli provides the interactive recipe console.
//
// It wires configuration, the local session store, API services and a REPL.
// Operators log in, browse recipes, create and edit them (ingredients may be
// picked from the catalog or typed in as new ones), maintain categories and
// ingredients, and, as managers, issue app activation codes.
//
// The REPL is started via App.Run(ctx), which blocks until the operator
// exits. See App and runREPL.
package cli
