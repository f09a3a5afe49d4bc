// Package propcloudsdk is the Go client for the PropCloud HTTP API, and the
// home of the wire types the server encodes.
//
// Unauthenticated calls (waitlist signup, account signup, login, password
// reset, health) hang off Client. Login returns a Session that carries the
// session token and exposes the dashboard and admin calls:
//
//	c := propcloudsdk.NewClient("https://propcloud.io")
//	pos, err := c.JoinWaitlist(ctx, propcloudsdk.JoinWaitlistRequest{Email: "a@example.com"})
//
//	s, err := c.Login(ctx, "owner@example.com", "secret")
//	props, err := s.ListProperties(ctx, propcloudsdk.ListOptions{Status: "active"})
//
// Deployments running the legacy static admin token can build a Session
// from it with NewSessionFromToken.
//
// Every non-2xx response is returned as *APIError.
package propcloudsdk
