package doorsdk

import (
	"context"
	"net/http"
)

// Door reader operations. They authenticate with the door secret instead of
// an access token.

// SyncDoor returns the door record and every revoked share for the door
// owning secret.
func (c *SDKClient) SyncDoor(ctx context.Context, secret []byte) (*SyncResponse, error) {
	body, headers, err := jsonBody(DoorSecretRequest{Secret: secret})
	if err != nil {
		return nil, err
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/doors/sync", body, headers)
	if err != nil {
		return nil, err
	}

	var out SyncResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// VerifyShare asks whether the holder of share may open the door owning
// secret. A denied result is not an error.
func (c *SDKClient) VerifyShare(ctx context.Context, secret, share []byte) (*VerifyResponse, error) {
	body, headers, err := jsonBody(VerifyRequest{Secret: secret, Share: share})
	if err != nil {
		return nil, err
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/doors/verify", body, headers)
	if err != nil {
		return nil, err
	}

	var out VerifyResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteDoorBySecret removes the door owning secret together with its shares.
func (c *SDKClient) DeleteDoorBySecret(ctx context.Context, secret []byte) error {
	body, headers, err := jsonBody(DoorSecretRequest{Secret: secret})
	if err != nil {
		return err
	}

	resp, err := c.doRequest(ctx, http.MethodDelete, "/v1/doors", body, headers)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// IdentifyShare decodes the user name embedded in a share.
func (c *SDKClient) IdentifyShare(ctx context.Context, share []byte) (*IdentifyResponse, error) {
	body, headers, err := jsonBody(IdentifyRequest{Share: share})
	if err != nil {
		return nil, err
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/shares/identify", body, headers)
	if err != nil {
		return nil, err
	}

	var out IdentifyResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
