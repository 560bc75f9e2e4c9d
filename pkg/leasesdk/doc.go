/*
Package leasesdk provides the wire types and a small HTTP client for the
Leasehold tenancy service.

# Overview

The service issues single-use invitation links that bind a new tenant to a
vacant property. The client covers the public invitation flow and the
landlord operations around it:

	c := leasesdk.NewClient("https://leasehold.example")

	sess, err := c.Login(ctx, "landlord", "hunter22")
	landlord := c.WithToken(sess.AccessToken)

	prop, err := landlord.CreateProperty(ctx, leasesdk.PropertyRequest{Name: "Flat 2", Address: "1 High St"})
	inv, err := landlord.IssueInvitation(ctx, prop.ID, leasesdk.IssueInvitationRequest{})

	// The prospective tenant follows inv.URL
	red, err := c.AcceptInvitation(ctx, inv.Token, leasesdk.AcceptInvitationRequest{...})

# Errors

Non-2xx responses are returned as *APIError. Use errors.Is against the
exported sentinels (ErrNotFound, ErrExpired, ErrAlreadyUsed, ...) to branch on
the error code.
*/
package leasesdk
