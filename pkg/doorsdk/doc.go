/*
Package doorsdk is a Go client for the vcdoor key service.

# SDKClient vs Session

SDKClient covers the endpoints that need no access token: health checks,
registration, bootstrap and the door reader calls that authenticate with a
door secret. Session carries an access token and covers the user and
administrator endpoints.

	client := doorsdk.NewSDKClient("https://door.example.com")

	session, err := client.Login(ctx, "alice", password)
	share, err := session.RequestKey(ctx, "front")

	// An administrator approves it.
	admin, err := client.Login(ctx, "root", adminPassword)
	_, err = admin.ValidateShare(ctx, share.ID)

# Door readers

A reader holds the door secret returned by CreateDoor and presents scanned
shares to the service:

	res, err := client.VerifyShare(ctx, secret, scanned)
	if err == nil && res.Granted {
		unlock()
	}

SyncDoor returns the revoked shares so a reader can refuse them while the
service is unreachable.

# Errors

Non-2xx responses are returned as *APIError. Use IsCode to branch on the
error code:

	if doorsdk.IsCode(err, doorsdk.ErrorCodeConflict) {
		// an active key already exists
	}
*/
package doorsdk
