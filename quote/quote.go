// Package quote looks up current prices over HTTP.
//
// It is the journal's only network dependency. A missing or failed quote is
// never an error for the caller: Price reports ok=false and the position is
// shown without a valuation.
package quote

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/PaesslerAG/jsonpath"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"

	"tradebook"
)

// Config holds the quote provider settings, read from TB_QUOTE_* environment
// variables. PricePath is a JSONPath into the provider's response body, so
// switching providers is a configuration change, not a code change.
type Config struct {
	BaseURL   string `envconfig:"QUOTE_URL" default:"https://query1.finance.yahoo.com/v7/finance"`
	APIKey    string `envconfig:"QUOTE_API_KEY"`
	PricePath string `envconfig:"QUOTE_PRICE_PATH" default:"$.quoteResponse.result[0].regularMarketPrice"`
}

// FromEnv reads the configuration from the environment.
func FromEnv() (Config, error) {
	var cfg Config
	if err := envconfig.Process("tb", &cfg); err != nil {
		return Config{}, fmt.Errorf("cannot read quote configuration: %w", err)
	}
	return cfg, nil
}

// Client fetches quotes. It implements tradebook.PriceSource.
type Client struct {
	cfg  Config
	http *http.Client
	log  zerolog.Logger
}

var _ tradebook.PriceSource = (*Client)(nil)

// New creates a quote client. Responses go through a daily disk cache, so a
// symbol is fetched at most once per day.
func New(cfg Config, log zerolog.Logger) *Client {
	return &Client{cfg: cfg, http: daily(log), log: log}
}

// Price fetches the current price for a symbol. ok is false when the provider
// has no quote or the request failed; the reason lands in the log, not in the
// caller's path.
func (c *Client) Price(symbol string) (tradebook.Money, bool) {
	addr := fmt.Sprintf("%s/quote?symbols=%s", c.cfg.BaseURL, url.QueryEscape(symbol))
	if c.cfg.APIKey != "" {
		addr += "&apikey=" + url.QueryEscape(c.cfg.APIKey)
	}

	var body any
	if err := jwget(c.http, addr, &body); err != nil {
		c.log.Warn().Str("symbol", symbol).Err(err).Msg("quote fetch failed")
		return tradebook.Money{}, false
	}

	raw, err := jsonpath.Get(c.cfg.PricePath, body)
	if err != nil {
		c.log.Warn().Str("symbol", symbol).Str("path", c.cfg.PricePath).Err(err).Msg("no price in quote response")
		return tradebook.Money{}, false
	}
	price, ok := raw.(float64)
	if !ok {
		c.log.Warn().Str("symbol", symbol).Interface("value", raw).Msg("quote price is not a number")
		return tradebook.Money{}, false
	}

	c.log.Debug().Str("symbol", symbol).Float64("price", price).Msg("quote fetched")
	return tradebook.USD(price), true
}
