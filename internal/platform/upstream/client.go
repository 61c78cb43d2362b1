// Package upstream implements the roster transport against the remote
// medical API. All operations are form-encoded POSTs authenticated with
// static headers; there is no session state on either side.
package upstream

import (
	"context"
	"encoding/json"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"

	"github.com/nirajan1211/MidasHealthCare/internal/config"
	"github.com/nirajan1211/MidasHealthCare/internal/domain/form"
	"github.com/nirajan1211/MidasHealthCare/internal/domain/roster"
)

const apiVersion = "v3"

// Client talks to the remote medical API over HTTP.
type Client struct {
	http   *resty.Client
	userID string
	orgID  string
}

var _ roster.Client = (*Client)(nil)

// New builds a client from the service configuration. The API key, org and
// version ride along as default headers on every request.
func New(cfg *config.Config) *Client {
	http := resty.New().
		SetBaseURL(cfg.UpstreamBaseURL).
		SetTimeout(cfg.Timeout()).
		SetRetryCount(cfg.UpstreamRetries).
		SetHeader("Content-Type", "application/x-www-form-urlencoded").
		SetHeader("Apikey", cfg.UpstreamAPIKey).
		SetHeader("Orgid", cfg.UpstreamOrgID).
		SetHeader("Apiversion", apiVersion)

	return &Client{
		http:   http,
		userID: cfg.UpstreamUserID,
		orgID:  cfg.UpstreamOrgID,
	}
}

// rosterResponse is the remote API's envelope for roster reads.
type rosterResponse struct {
	Message  string `json:"message"`
	Response struct {
		List []form.RawRecord `json:"list"`
		My   form.RawRecord   `json:"my"`
	} `json:"response"`
	Type string `json:"type"`
}

// FetchRoster retrieves the raw roster snapshot. A response body that is
// empty or not valid JSON is treated as an empty roster, not a failure: the
// remote API answers some accounts that way.
func (c *Client) FetchRoster(ctx context.Context) (roster.RawRoster, error) {
	resp, err := c.post(ctx, "user/showrelatives", map[string]string{
		"userid": c.userID,
		"orgid":  c.orgID,
	})
	if err != nil {
		return roster.RawRoster{}, err
	}

	var body rosterResponse
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		log.Warn().Err(err).Msg("unparseable roster response, treating as empty")
		return roster.RawRoster{}, nil
	}

	return roster.RawRoster{
		List: body.Response.List,
		My:   body.Response.My,
	}, nil
}

// CreatePatient submits a create payload.
func (c *Client) CreatePatient(ctx context.Context, payload map[string]string) error {
	_, err := c.post(ctx, "user/addrelatives", c.withIdentity(payload))
	return err
}

// UpdatePatient submits an update payload. The remote API addresses the
// target record through the patientid field.
func (c *Client) UpdatePatient(ctx context.Context, patientID string, payload map[string]string) error {
	body := c.withIdentity(payload)
	body["patientid"] = patientID
	_, err := c.post(ctx, "user/updaterelative", body)
	return err
}

// DeletePatient removes a record. The delete endpoint takes only the target
// identity, under a differently-cased field name than the other endpoints.
func (c *Client) DeletePatient(ctx context.Context, patientID string) error {
	_, err := c.post(ctx, "user/deleterelative", map[string]string{
		"patientId": patientID,
	})
	return err
}

func (c *Client) post(ctx context.Context, path string, body map[string]string) (*resty.Response, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetFormData(body).
		Post(path)
	if err != nil {
		return nil, &roster.TransportError{Message: err.Error()}
	}
	if resp.IsError() {
		return nil, &roster.TransportError{
			StatusCode: resp.StatusCode(),
			Message:    extractMessage(resp.Body()),
		}
	}
	return resp, nil
}

// withIdentity copies the payload and stamps the account identity fields the
// remote API expects on every write.
func (c *Client) withIdentity(payload map[string]string) map[string]string {
	body := make(map[string]string, len(payload)+2)
	for k, v := range payload {
		body[k] = v
	}
	body["userid"] = c.userID
	body["orgid"] = c.orgID
	return body
}

// extractMessage pulls the human-readable message out of an error body when
// one is present.
func extractMessage(body []byte) string {
	var envelope struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return ""
	}
	return envelope.Message
}
