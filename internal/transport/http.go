package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"strings"

	dropbox "github.com/dropbox/godropbox/errors"
	"github.com/sirupsen/logrus"

	"tokenbox/internal/domain"
	"tokenbox/internal/errortypes"
)

// TokenPath is where the issuer accepts token requests.
const TokenPath = "/api1/getToken"

// maxReplyBytes bounds how much of a reply body we read.
const maxReplyBytes = 64 << 10

type HTTP struct {
	Base string
	HTTP *http.Client
}

// NewHTTP returns a transport for the issuer at base. A nil client means
// http.DefaultClient.
func NewHTTP(base string, client *http.Client) *HTTP {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTP{Base: strings.TrimRight(base, "/"), HTTP: client}
}

// RequestToken posts req and decodes the issuer's reply.
func (c *HTTP) RequestToken(ctx context.Context, req domain.TokenRequest) (domain.TokenReply, error) {
	var out domain.TokenReply

	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(req); err != nil {
		return out, dropbox.Wrap(err, "transport: Failed to encode request")
	}
	u := c.Base + TokenPath
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, u, buf)
	if err != nil {
		return out, &errortypes.TransportError{
			DropboxError: dropbox.Wrap(err, "transport: Bad request URL"),
		}
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(httpReq)
	if err != nil {
		return out, &errortypes.TransportError{
			DropboxError: dropbox.Wrapf(err, "transport: POST %s failed", u),
			Timeout:      isTimeout(ctx, err),
		}
	}
	defer resp.Body.Close()

	logrus.WithFields(logrus.Fields{
		"url":    u,
		"status": resp.StatusCode,
	}).Debug("transport: Issuer replied")

	if resp.StatusCode/100 != 2 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return out, &errortypes.TransportError{
			DropboxError: dropbox.Newf("transport: POST %s: %s: %s",
				u, resp.Status, strings.TrimSpace(string(msg))),
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxReplyBytes))
	if err != nil {
		return out, &errortypes.TransportError{
			DropboxError: dropbox.Wrap(err, "transport: Failed to read reply"),
			Timeout:      isTimeout(ctx, err),
		}
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return domain.TokenReply{}, &errortypes.MalformedError{
			DropboxError: dropbox.Wrap(err, "transport: Failed to parse reply"),
		}
	}
	if out.Nonce == "" || out.Payload == "" || out.PublicKey == "" {
		return domain.TokenReply{}, &errortypes.MalformedError{
			DropboxError: dropbox.New("transport: Reply is missing nonce, payload or pkey"),
		}
	}
	return out, nil
}

func isTimeout(ctx context.Context, err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

var _ domain.TokenTransport = (*HTTP)(nil)
