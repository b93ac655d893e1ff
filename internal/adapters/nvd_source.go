package adapters

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"cpe-synth/internal/core"
	"cpe-synth/internal/ports"
	"cpe-synth/internal/shared"
)

const DefaultNVDEndpoint = "https://services.nvd.nist.gov/rest/json/cpes/2.0"

const defaultNVDDelay = 6 * time.Second
const defaultNVDTimeout = 30 * time.Second
const defaultNVDPageSize = 20
const defaultNVDMaxPages = 1

// DefaultNVDKeywords are queried in order until enough identifiers arrive.
var DefaultNVDKeywords = []string{
	"linux", "windows", "apache", "nginx", "mysql", "postgresql",
	"php", "python", "java", "chrome", "firefox", "android",
	"ios", "ubuntu", "debian", "centos", "docker", "kubernetes",
	"redis", "mongodb", "node", "react", "angular", "wordpress",
}

type NVDSourceConfig struct {
	Endpoint string
	APIKey   string
	Keywords []string
	// Delay separates consecutive requests. Zero disables pacing; a
	// negative value selects the default courtesy delay.
	Delay    time.Duration
	Timeout  time.Duration
	PageSize int
	MaxPages int
}

type NVDSourceAdapter struct {
	cfg    NVDSourceConfig
	client *http.Client
	Rand   core.RandomSource
	wait   func(ctx context.Context, d time.Duration) error
}

type nvdResponse struct {
	ResultsPerPage int           `json:"resultsPerPage"`
	StartIndex     int           `json:"startIndex"`
	TotalResults   int           `json:"totalResults"`
	Products       *[]nvdProduct `json:"products"`
}

type nvdProduct struct {
	CPE nvdCPE `json:"cpe"`
}

type nvdCPE struct {
	CPEName    string `json:"cpeName"`
	CPENameID  string `json:"cpeNameId"`
	Deprecated bool   `json:"deprecated"`
}

func NewNVDSourceAdapter(cfg NVDSourceConfig) NVDSourceAdapter {
	normalized := normalizeNVDConfig(cfg)
	return NVDSourceAdapter{
		cfg:    normalized,
		client: &http.Client{Timeout: normalized.Timeout},
		wait:   sleepContext,
	}
}

func normalizeNVDConfig(cfg NVDSourceConfig) NVDSourceConfig {
	out := cfg
	out.Endpoint = strings.TrimSpace(cfg.Endpoint)
	if out.Endpoint == "" {
		out.Endpoint = DefaultNVDEndpoint
	}
	out.APIKey = strings.TrimSpace(cfg.APIKey)
	out.Keywords = shared.CleanStrings(cfg.Keywords)
	if len(out.Keywords) == 0 {
		out.Keywords = append([]string(nil), DefaultNVDKeywords...)
	}
	if out.Delay < 0 {
		out.Delay = defaultNVDDelay
	}
	if out.Timeout <= 0 {
		out.Timeout = defaultNVDTimeout
	}
	if out.PageSize <= 0 {
		out.PageSize = defaultNVDPageSize
	}
	if out.MaxPages <= 0 {
		out.MaxPages = defaultNVDMaxPages
	}
	return out
}

func (a NVDSourceAdapter) Config() NVDSourceConfig {
	return a.cfg
}

// Fetch walks the keyword list until at least count identifiers were
// collected. A keyword whose query fails is skipped; there are no retries.
func (a NVDSourceAdapter) Fetch(ctx context.Context, count int) ([]string, error) {
	if count <= 0 {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("requested record count must be positive")
	}
	logger := log.Ctx(ctx)
	var collected []string
	requests := 0
	for _, keyword := range a.cfg.Keywords {
		if len(collected) >= count {
			break
		}
		for page := 0; page < a.cfg.MaxPages && len(collected) < count; page++ {
			if requests > 0 {
				if err := a.pause(ctx); err != nil {
					return nil, err
				}
			}
			requests++
			names, total, err := a.query(ctx, keyword, page*a.cfg.PageSize)
			if err != nil {
				if ctx.Err() != nil {
					return nil, canceledError(ctx.Err())
				}
				logger.Warn().Err(err).Str("keyword", keyword).Msg("failed to fetch cpes for keyword")
				break
			}
			collected = append(collected, names...)
			logger.Info().
				Str("keyword", keyword).
				Int("page", page).
				Int("count", len(names)).
				Msg("fetched cpes for keyword")
			if (page+1)*a.cfg.PageSize >= total {
				break
			}
		}
	}
	selected := core.SelectAvailable(a.Rand, collected, count)
	logger.Debug().
		Int("collected", len(collected)).
		Int("selected", len(selected)).
		Int("requests", requests).
		Msg("nvd collection finished")
	return selected, nil
}

func (a NVDSourceAdapter) query(ctx context.Context, keyword string, startIndex int) ([]string, int, error) {
	target, err := a.queryURL(keyword, startIndex)
	if err != nil {
		return nil, 0, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, 0, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create request").
			WithCause(err)
	}
	req.Header.Set("Accept", "application/json")
	if a.cfg.APIKey != "" {
		req.Header.Set("apiKey", a.cfg.APIKey)
	}
	resp, err := a.client.Do(req)
	if err != nil {
		return nil, 0, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("request failed").
			WithCause(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		cause := shared.HTTPStatusError(resp.StatusCode, target)
		if body, err := io.ReadAll(io.LimitReader(resp.Body, 4096)); err == nil {
			cause = shared.HTTPStatusErrorWithBody(resp.StatusCode, target, string(body))
		}
		return nil, 0, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("unexpected nvd response status").
			WithCause(cause)
	}
	var payload nvdResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, 0, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to decode nvd response").
			WithCause(err)
	}
	if payload.Products == nil {
		log.Ctx(ctx).Warn().Str("keyword", keyword).Msg("nvd response has no products collection")
		return nil, 0, nil
	}
	names := make([]string, 0, len(*payload.Products))
	for _, product := range *payload.Products {
		names = append(names, strings.TrimSpace(product.CPE.CPEName))
	}
	total := payload.TotalResults
	if total < startIndex+len(names) {
		total = startIndex + len(names)
	}
	return names, total, nil
}

func (a NVDSourceAdapter) queryURL(keyword string, startIndex int) (string, error) {
	parsed, err := url.Parse(a.cfg.Endpoint)
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("invalid nvd endpoint").
			WithCause(err)
	}
	values := parsed.Query()
	values.Set("keywordSearch", keyword)
	values.Set("resultsPerPage", strconv.Itoa(a.cfg.PageSize))
	if startIndex > 0 {
		values.Set("startIndex", strconv.Itoa(startIndex))
	}
	parsed.RawQuery = values.Encode()
	return parsed.String(), nil
}

func (a NVDSourceAdapter) pause(ctx context.Context) error {
	if a.cfg.Delay <= 0 {
		return nil
	}
	wait := a.wait
	if wait == nil {
		wait = sleepContext
	}
	return wait(ctx, a.cfg.Delay)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return canceledError(ctx.Err())
	case <-timer.C:
		return nil
	}
}

func canceledError(cause error) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInternal).
		WithMsg("request canceled").
		WithCause(cause)
}

var _ ports.SourcePort = NVDSourceAdapter{}
