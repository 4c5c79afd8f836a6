// Package doorpasses is the SDK for communicating with [DoorPasses],
// the hosted access-control platform for issuing digital access passes
// to mobile wallets.
//
// Every request the SDK sends is authenticated with a per-request
// HMAC-SHA256 signature computed over a deterministic encoding of the
// request body, so the platform can verify both who sent a request and
// that its payload arrived unmodified. The protocol lives in
// [go.doorpasses.io/sdk/pkg/auth] and can also be used on its own, for
// example to verify signed callbacks.
//
// # Overview of Packages
//
//   - doorpasses - The main SDK package, construction and configuration
//   - passes - Issuing and managing digital access passes
//   - console - Card template management and the audit event log
//     (Enterprise tier)
//   - pkg/auth - Canonical payload encoding, signing and verification
//
// # Usage
//
//	sdk, err := doorpasses.NewSDK("acct_7c2e", "your-shared-secret")
//	if err != nil {
//		// ...
//	}
//	pass, err := sdk.AccessPasses.Issue(ctx, types.IssueAccessPassParams{
//		CardTemplateID: "ct_lobby",
//		CardNumber:     "12345",
//		FullName:       "Ada Lovelace",
//	})
//
// [DoorPasses]: https://doorpasses.io
package doorpasses
