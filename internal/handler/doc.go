// Package handler implements the interactive console menu.
//
// Menu reads choices line by line from an io.Reader and writes prompts and
// rendered reports to an io.Writer, so the whole loop runs against a
// strings.Reader in tests.
//
// # Actions
//
//  1. Show a table (factions or characters, chosen in a submenu)
//  2. Show characters by faction
//  3. Show best attacker by faction
//  4. Show best defender by faction
//  5. Exit
//
// Actions 2-4 list the factions before asking for a faction ID. Every
// completed action waits for Enter.
//
// # Errors
//
// Non-numeric input is logged and the action is skipped. Query failures are
// logged and the menu carries on. End of input ends the loop without error;
// only write failures and context cancellation are returned from Run.
package handler
