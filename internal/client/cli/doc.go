// Package cli provides the interactive Deni dashboard command-line client.
//
// It wires configuration, the local session store, the dashboard API
// services, and the data hooks into a line-oriented REPL. On start a stored
// session opens the dashboard; otherwise the user is asked to sign in.
//
// Key features:
//   - Login / Logout with remember-me
//   - Dashboard: user totals, top countries and currencies
//   - Admins: list, create, edit, delete; own profile
//   - Users: paginated list and details
//   - Reports: filter, resolve or reject
//
// Navigation requested by the session layer (for example a redirect to the
// login page after the API rejects the token) is followed before the next
// prompt. See App, runREPL and followRedirects.
package cli
