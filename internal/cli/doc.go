// Package cli provides the interactive gallery command-line front end.
//
// It wires configuration, the local state database, the seeded catalog and
// user directory, and the session store into a REPL whose commands mirror
// the gallery's pages: browsing and filtering artworks, exhibitions, the
// virtual tour, wishlist and purchases, and the role-based dashboards.
//
// Protected commands route through the access guard before rendering, so a
// logged-out user asking for a dashboard is redirected to the login flow
// and a user asking for someone else's dashboard lands on their own.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
