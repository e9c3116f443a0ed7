package districts

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"regiontrip/internal/domain"
)

const (
	// DefaultBaseURL is the SK Open API travel districts endpoint.
	DefaultBaseURL = "https://apis.openapi.sk.com/puzzle/travel/meta/districts"
	// DefaultType asks for 시/군/구 level districts.
	DefaultType     = "sig"
	DefaultPageSize = 100
	DefaultMaxPages = 5

	statusOK = "00"

	// UnnamedDistrict is used when a record carries no districtName.
	UnnamedDistrict = "이름 없음"
)

// ErrStatus is returned when the API answers with a status code other than "00".
var ErrStatus = errors.New("districts: api status not ok")

// HTTPClient fetches districts from the remote API.
type HTTPClient struct {
	Base     string
	AppKey   string
	Type     string
	PageSize int
	MaxPages int
	HTTP     *http.Client
}

// NewHTTP returns a client for base authenticated with appKey, using the
// default paging and http.DefaultClient.
func NewHTTP(base, appKey string) *HTTPClient {
	return &HTTPClient{
		Base:     base,
		AppKey:   appKey,
		Type:     DefaultType,
		PageSize: DefaultPageSize,
		MaxPages: DefaultMaxPages,
		HTTP:     http.DefaultClient,
	}
}

type response struct {
	Status struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"status"`
	Contents []record `json:"contents"`
}

// record is one entry of contents. districtCode is required, districtName is not.
type record struct {
	Code *looseString `json:"districtCode"`
	Name *looseString `json:"districtName"`
}

// looseString accepts a JSON string or number.
type looseString string

func (s *looseString) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = looseString(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("districts: expected string or number, got %s", b)
	}
	*s = looseString(n.String())
	return nil
}

func (r record) district() (domain.District, bool) {
	if r.Code == nil || *r.Code == "" {
		return domain.District{}, false
	}
	name := UnnamedDistrict
	if r.Name != nil && *r.Name != "" {
		name = string(*r.Name)
	}
	return domain.District{Code: domain.RegionCode(*r.Code), Name: name}, true
}

// FetchDistricts returns the districts whose code starts with province.
// Records without a districtCode are skipped.
func (c *HTTPClient) FetchDistricts(ctx context.Context, province domain.RegionCode) ([]domain.District, error) {
	pageSize := c.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	maxPages := c.MaxPages
	if maxPages <= 0 {
		maxPages = 1
	}

	var out []domain.District
	for page := 0; page < maxPages; page++ {
		recs, err := c.fetchPage(ctx, page*pageSize, pageSize)
		if err != nil {
			return nil, err
		}
		for _, r := range recs {
			d, ok := r.district()
			if !ok {
				continue
			}
			if strings.HasPrefix(d.Code.String(), province.String()) {
				out = append(out, d)
			}
		}
		if len(recs) < pageSize {
			break
		}
	}
	return out, nil
}

func (c *HTTPClient) fetchPage(ctx context.Context, offset, limit int) ([]record, error) {
	q := url.Values{}
	q.Set("type", c.kind())
	q.Set("offset", strconv.Itoa(offset))
	q.Set("limit", strconv.Itoa(limit))
	u := c.Base + "?" + q.Encode()

	var resp response
	if err := c.getJSON(ctx, u, &resp); err != nil {
		return nil, err
	}
	if resp.Status.Code != statusOK {
		return nil, fmt.Errorf("%w: %q %s", ErrStatus, resp.Status.Code, resp.Status.Message)
	}
	return resp.Contents, nil
}

func (c *HTTPClient) kind() string {
	if c.Type == "" {
		return DefaultType
	}
	return c.Type
}

func (c *HTTPClient) getJSON(ctx context.Context, u string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("appkey", c.AppKey)

	hc := c.HTTP
	if hc == nil {
		hc = http.DefaultClient
	}
	resp, err := hc.Do(req)
	if err != nil {
		return fmt.Errorf("districts get %s: %w", c.Base, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("districts get %s: %s", c.Base, resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("districts decode: %w", err)
	}
	return nil
}
