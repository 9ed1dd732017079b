// Package diversion is a Go client for the Diversion social
// interest-community REST API.
//
// The client is organized as service groups, one per API resource,
// mirroring the endpoints under /api/*:
//
//	client, err := diversion.New("https://diversion.example.com")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ctx := context.Background()
//	session, err := client.Auth.Login(ctx, domain.Credentials{
//	    Username: "ada",
//	    Password: "hunter2",
//	})
//
// Authentication is cookie based: a successful login stores the session
// cookie in the client's jar and every later call presents it. Service
// methods perform no input validation and never swallow API errors; the
// only translation they apply is the not-found-as-absence rule, where a
// 404 from a "get mine" style endpoint becomes a nil result.
//
// Stateful UI sequences (interest selection onboarding, event RSVP) live
// in the flow package; pure presentation helpers live in display.
package diversion
