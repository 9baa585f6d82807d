// Package meta implements port.AdsPlatform against the Meta Marketing
// (Graph) API.
package meta

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"budget-scheduler/internal/config/configs"
	"budget-scheduler/internal/core/domain"
)

const entityFields = "id,name,status,daily_budget,lifetime_budget"

// maxPages bounds cursor walks so a misbehaving paging.next cannot loop.
const maxPages = 1000

// Client talks to one ad account. It is safe for concurrent use.
type Client struct {
	hc        *http.Client
	limiter   *rate.Limiter
	baseURL   string
	version   string
	token     string
	accountID string
	pageLimit int
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.hc = hc }
}

// New builds a client from cfg. The access token and ad account are
// required.
func New(cfg configs.Meta, opts ...Option) (*Client, error) {
	if strings.TrimSpace(cfg.AccessToken) == "" {
		return nil, errors.New("meta: access token is required")
	}
	account := strings.TrimSpace(cfg.AdAccountID)
	if account == "" {
		return nil, errors.New("meta: ad account id is required")
	}
	if !strings.HasPrefix(account, "act_") {
		account = "act_" + account
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	rps := cfg.RatePerSec
	if rps <= 0 {
		rps = 5
	}
	burst := int(rps)
	if burst < 1 {
		burst = 1
	}
	pageLimit := cfg.PageLimit
	if pageLimit <= 0 {
		pageLimit = 100
	}

	c := &Client{
		hc:        &http.Client{Timeout: timeout},
		limiter:   rate.NewLimiter(rate.Limit(rps), burst),
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		version:   strings.Trim(cfg.APIVersion, "/"),
		token:     cfg.AccessToken,
		accountID: account,
		pageLimit: pageLimit,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// node is a campaign or ad set as returned by the API. Budgets arrive as
// decimal strings in the account's minor currency unit.
type node struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Status         string `json:"status"`
	DailyBudget    string `json:"daily_budget"`
	LifetimeBudget string `json:"lifetime_budget"`
}

type page struct {
	Data   []node `json:"data"`
	Paging struct {
		Next string `json:"next"`
	} `json:"paging"`
}

// ListActiveBudgetEntities returns active campaigns that carry a daily
// budget and, for the remaining active campaigns, their active ad sets that
// carry one. Exclusions are not applied here.
func (c *Client) ListActiveBudgetEntities(ctx context.Context) ([]domain.BudgetableEntity, error) {
	campaigns, err := c.listEdge(ctx, c.accountID+"/campaigns")
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}

	var out []domain.BudgetableEntity
	for _, camp := range campaigns {
		if cents, ok, err := parseBudget(camp.DailyBudget); err != nil {
			return nil, fmt.Errorf("campaign %s: %w", camp.ID, err)
		} else if ok {
			out = append(out, domain.BudgetableEntity{
				ID:                 camp.ID,
				Name:               camp.Name,
				Kind:               domain.KindCampaign,
				CampaignID:         camp.ID,
				CampaignName:       camp.Name,
				CurrentBudgetCents: cents,
			})
			continue
		}

		adsets, err := c.listEdge(ctx, camp.ID+"/adsets")
		if err != nil {
			return nil, fmt.Errorf("list ad sets of campaign %s: %w", camp.ID, err)
		}
		for _, as := range adsets {
			cents, ok, err := parseBudget(as.DailyBudget)
			if err != nil {
				return nil, fmt.Errorf("ad set %s: %w", as.ID, err)
			}
			if !ok {
				continue
			}
			out = append(out, domain.BudgetableEntity{
				ID:                 as.ID,
				Name:               as.Name,
				Kind:               domain.KindAdSet,
				CampaignID:         camp.ID,
				CampaignName:       camp.Name,
				CurrentBudgetCents: cents,
			})
		}
	}
	return out, nil
}

// SetBudget sets the daily budget of a campaign or ad set.
func (c *Client) SetBudget(ctx context.Context, id string, kind domain.EntityKind, amountCents int64) error {
	if kind != domain.KindCampaign && kind != domain.KindAdSet {
		return fmt.Errorf("unsupported entity kind %q", kind)
	}
	if amountCents <= 0 {
		return fmt.Errorf("invalid budget %d", amountCents)
	}

	form := url.Values{}
	form.Set("daily_budget", strconv.FormatInt(amountCents, 10))
	form.Set("access_token", c.token)

	body, err := c.do(ctx, http.MethodPost, c.endpoint(id), "application/x-www-form-urlencoded", []byte(form.Encode()))
	if err != nil {
		return err
	}
	var res struct {
		Success bool `json:"success"`
	}
	if err = json.Unmarshal(body, &res); err != nil {
		return fmt.Errorf("decode update response: %w", err)
	}
	if !res.Success {
		return fmt.Errorf("update of %s %s not acknowledged", kind, id)
	}
	return nil
}

func (c *Client) listEdge(ctx context.Context, edge string) ([]node, error) {
	q := url.Values{}
	q.Set("fields", entityFields)
	q.Set("effective_status", `["ACTIVE"]`)
	q.Set("limit", strconv.Itoa(c.pageLimit))
	q.Set("access_token", c.token)
	next := c.endpoint(edge) + "?" + q.Encode()

	var out []node
	for pages := 0; next != ""; pages++ {
		if pages == maxPages {
			return nil, fmt.Errorf("more than %d pages", maxPages)
		}
		body, err := c.do(ctx, http.MethodGet, next, "", nil)
		if err != nil {
			return nil, err
		}
		var p page
		if err = json.Unmarshal(body, &p); err != nil {
			return nil, fmt.Errorf("decode page: %w", err)
		}
		out = append(out, p.Data...)
		next = p.Paging.Next
	}
	return out, nil
}

func (c *Client) endpoint(path string) string {
	return c.baseURL + "/" + c.version + "/" + strings.TrimLeft(path, "/")
}

// do sends one paced request and returns the body of a 2xx response. Other
// statuses are returned as *APIError.
func (c *Client) do(ctx context.Context, method, rawURL, contentType string, body []byte) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, method, rawURL, bytes.NewReader(body))
	if err != nil {
		return nil, c.redact(err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.hc.Do(req)
	if err != nil {
		return nil, c.redact(err)
	}
	defer res.Body.Close()

	b, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}
	if res.StatusCode >= 300 {
		return nil, decodeError(res.StatusCode, b)
	}
	return b, nil
}

// redact strips the access token from URLs embedded in transport errors.
func (c *Client) redact(err error) error {
	var uerr *url.Error
	if errors.As(err, &uerr) {
		uerr.URL = strings.ReplaceAll(uerr.URL, url.QueryEscape(c.token), "REDACTED")
		uerr.URL = strings.ReplaceAll(uerr.URL, c.token, "REDACTED")
	}
	return err
}

// parseBudget reports whether s holds a positive budget.
func parseBudget(s string) (int64, bool, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false, nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("invalid budget %q", s)
	}
	return v, v > 0, nil
}
