package bancore

import (
	"bufio"
	"bytes"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httputil"
	"os"
	"path/filepath"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// Optional live quote feed. The simulator stays authoritative for the ledger;
// a feed only re-bases the random walk (see MarketData.SetBasePrice), so the
// core never depends on network availability.

// diskCache implements a simple disk cache for HTTP responses.
// The cache key includes the current date, so entries expire daily.
type diskCache struct {
	base http.RoundTripper
}

func (c *diskCache) RoundTrip(req *http.Request) (resp *http.Response, err error) {
	key := fmt.Sprintf("%s %s %s", Today().String(), req.Method, req.URL.String())
	key = fmt.Sprintf("%x", sha1.Sum([]byte(key)))

	cachedResp, err := c.get(key, req)
	if err == nil { // Cache hit
		return cachedResp, nil
	}

	resp, err = c.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	log.Printf("%v %v/%v %v", resp.Request.Method, resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	if resp.StatusCode >= 300 {
		return resp, nil
	}

	if err := c.put(key, resp); err != nil {
		log.Printf("cache write err (ignored): %v", err)
	}
	return resp, nil
}

// get retrieves a cached response from disk.
func (c *diskCache) get(key string, req *http.Request) (*http.Response, error) {
	file := filepath.Join(os.TempDir(), key)
	content, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	return http.ReadResponse(bufio.NewReader(bytes.NewBuffer(content)), req)
}

// put stores a response to the disk cache.
func (c *diskCache) put(key string, resp *http.Response) error {
	file := filepath.Join(os.TempDir(), key)

	content, err := httputil.DumpResponse(resp, true)
	if err != nil {
		return err
	}

	f, err := os.Create(file)
	if err != nil {
		return err
	}
	_, err = f.Write(content)
	f.Close()
	return err
}

// FeedClient returns a client whose responses are cached with daily expiry,
// to stay polite with free quote endpoints.
func FeedClient() *http.Client {
	client := new(http.Client)
	client.Transport = &diskCache{http.DefaultTransport}
	return client
}

// jwget performs an HTTP GET request and unmarshals the JSON response into
// the provided data structure.
func jwget(client *http.Client, addr string, data interface{}) error {
	resp, err := client.Get(addr)
	if err != nil {
		return err
	}
	if resp.StatusCode != 200 {
		return fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	var buf bytes.Buffer
	_, err = io.Copy(&buf, resp.Body)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return json.Unmarshal(buf.Bytes(), data)
}

/*
	Expected feed shape (brapi-style):
	{
	    "results": [
	        {"symbol": "PETR4", "regularMarketPrice": 36.12, ...},
	        {"symbol": "VALE3", "regularMarketPrice": 67.90, ...}
	    ]
	}
*/

// FetchQuotes GETs a JSON quote endpoint and extracts ticker/price pairs
// with jsonpath expressions. It returns prices for whatever symbols the feed
// reports; the caller decides which ones to apply.
func FetchQuotes(client *http.Client, addr string) (map[string]decimal.Decimal, error) {
	var jobj any
	if err := jwget(client, addr, &jobj); err != nil {
		return nil, fmt.Errorf("error in wget %q: %w", addr, err)
	}

	symbols, err := jsonpath.Get("$.results[*].symbol", jobj)
	if err != nil {
		return nil, fmt.Errorf("error parsing feed symbols: %w", err)
	}
	values, err := jsonpath.Get("$.results[*].regularMarketPrice", jobj)
	if err != nil {
		return nil, fmt.Errorf("error parsing feed prices: %w", err)
	}

	jsymbols, ok1 := symbols.([]any)
	jvalues, ok2 := values.([]any)
	if !ok1 || !ok2 || len(jsymbols) != len(jvalues) {
		return nil, fmt.Errorf("feed %q: symbols and prices do not line up", addr)
	}

	prices := make(map[string]decimal.Decimal, len(jsymbols))
	for i, jsym := range jsymbols {
		sym, ok := jsym.(string)
		if !ok {
			return nil, fmt.Errorf("feed %q: symbol %v is not a string", addr, jsym)
		}
		val, ok := jvalues[i].(float64)
		if !ok {
			return nil, fmt.Errorf("feed %q: price for %s is not a number", addr, sym)
		}
		prices[sym] = decimal.NewFromFloat(val)
	}
	return prices, nil
}

// ApplyFeed re-bases the simulator on live prices for every known ticker.
// It returns the tickers that were updated, in feed iteration order.
func (m *MarketData) ApplyFeed(prices map[string]decimal.Decimal) []string {
	var updated []string
	for ticker, price := range prices {
		if !m.Has(ticker) {
			continue
		}
		m.SetBasePrice(ticker, price)
		updated = append(updated, ticker)
	}
	return updated
}
