// Package datadragon reads the League of Legends champion catalog from Riot's
// Data Dragon CDN through a persistent document cache.
package datadragon

//go:generate mockgen -destination=mock/mock_client.go -package=datadragonmock github.com/KirkDiggler/custom-lobby/internal/clients/datadragon Client

import (
	"context"
	"log/slog"
	"net/url"
	"strconv"

	"github.com/tidwall/gjson"

	"github.com/KirkDiggler/custom-lobby/internal/entities/lol"
	"github.com/KirkDiggler/custom-lobby/internal/errors"
	"github.com/KirkDiggler/custom-lobby/internal/repositories/ddcache"
)

// VersionLatest selects the first entry of versions.json
const VersionLatest = "latest"

// Client defines the Data Dragon operations the lobby needs
type Client interface {
	// ResolveVersion maps "latest", a list index, or an exact version to
	// a published game version
	ResolveVersion(ctx context.Context, input *ResolveVersionInput) (*ResolveVersionOutput, error)

	// ListChampions loads the champion catalog for a resolved version
	ListChampions(ctx context.Context, input *ListChampionsInput) (*ListChampionsOutput, error)
}

// ResolveVersionInput contains the requested version selector
type ResolveVersionInput struct {
	Version string
}

// ResolveVersionOutput contains the resolved version
type ResolveVersionOutput struct {
	Version string
}

// ListChampionsInput contains parameters for loading the catalog
type ListChampionsInput struct {
	Version string
}

// ListChampionsOutput contains the catalog
type ListChampionsOutput struct {
	Catalog *lol.Catalog
}

// Config configures the client
type Config struct {
	// BaseURL is the Data Dragon root, e.g. https://ddragon.leagueoflegends.com/
	BaseURL  string
	Language string
	Store    *Store
}

// Validate validates the config
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("base_url", c.BaseURL, vb)
	errors.ValidateRequired("language", c.Language, vb)
	if c.BaseURL != "" {
		if u, err := url.Parse(c.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
			vb.InvalidField("base_url", "must be an absolute URL")
		}
	}
	if c.Store == nil {
		vb.RequiredField("store")
	}

	return vb.Build()
}

type client struct {
	baseURL  string
	language string
	store    *Store
}

// New creates a new Data Dragon client
func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &client{
		baseURL:  cfg.BaseURL,
		language: cfg.Language,
		store:    cfg.Store,
	}, nil
}

var _ Client = (*client)(nil)

func (c *client) endpoint(parts ...string) (string, error) {
	u, err := url.JoinPath(c.baseURL, parts...)
	if err != nil {
		return "", errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to build Data Dragon url")
	}
	return u, nil
}

// ResolveVersion reads api/versions.json, newest first
func (c *client) ResolveVersion(ctx context.Context, input *ResolveVersionInput) (*ResolveVersionOutput, error) {
	if input == nil || input.Version == "" {
		return nil, errors.InvalidArgument("version is required")
	}

	u, err := c.endpoint("api", "versions.json")
	if err != nil {
		return nil, err
	}
	body, err := c.store.GetOrRequest(ctx, ddcache.CacheKey{"api", "versions.json"}, u)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load version list")
	}

	list := gjson.ParseBytes(body)
	if !list.IsArray() {
		return nil, errors.DataLoss("versions.json is not a list")
	}
	versions := make([]string, 0, len(list.Array()))
	for _, v := range list.Array() {
		versions = append(versions, v.String())
	}
	if len(versions) == 0 {
		return nil, errors.DataLoss("versions.json is empty")
	}

	version, err := pickVersion(versions, input.Version)
	if err != nil {
		return nil, err
	}

	slog.Debug("Resolved game version", "requested", input.Version, "version", version)
	return &ResolveVersionOutput{Version: version}, nil
}

func pickVersion(versions []string, requested string) (string, error) {
	if requested == VersionLatest {
		return versions[0], nil
	}

	if n, err := strconv.Atoi(requested); err == nil {
		if n < 0 || n >= len(versions) {
			return "", errors.InvalidArgumentf("version index %d out of range, %d versions published", n, len(versions)).
				WithMeta("version", requested)
		}
		return versions[n], nil
	}

	for _, v := range versions {
		if v == requested {
			return v, nil
		}
	}
	return "", errors.InvalidArgumentf("version %q is not published", requested).
		WithMeta("version", requested)
}

// ListChampions loads cdn/<version>/data/<lang>/champion.json in document order
func (c *client) ListChampions(ctx context.Context, input *ListChampionsInput) (*ListChampionsOutput, error) {
	if input == nil || input.Version == "" {
		return nil, errors.InvalidArgument("version is required")
	}

	u, err := c.endpoint("cdn", input.Version, "data", c.language, "champion.json")
	if err != nil {
		return nil, err
	}
	key := ddcache.CacheKey{"cdn", input.Version, c.language, "champion.json"}
	body, err := c.store.GetOrRequest(ctx, key, u)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load champion list")
	}

	champions, err := parseChampions(body)
	if err != nil {
		return nil, err
	}

	slog.Info("Loaded champion catalog", "version", input.Version, "language", c.language, "count", len(champions))
	return &ListChampionsOutput{Catalog: lol.NewCatalog(input.Version, champions)}, nil
}

func parseChampions(body []byte) ([]lol.Champion, error) {
	data := gjson.GetBytes(body, "data")
	if !data.IsObject() {
		return nil, errors.DataLoss("champion.json has no data object")
	}

	var (
		champions []lol.Champion
		parseErr  error
	)
	data.ForEach(func(key, value gjson.Result) bool {
		id := value.Get("id").String()
		if id == "" {
			parseErr = errors.DataLossf("champion entry %q has no id", key.String())
			return false
		}

		raw := value.Get("tags").Array()
		tags := make([]string, len(raw))
		for i, t := range raw {
			tags[i] = t.String()
		}

		champions = append(champions, lol.Champion{
			ID:    id,
			Key:   value.Get("key").String(),
			Name:  value.Get("name").String(),
			Title: value.Get("title").String(),
			Tags:  tags,
		})
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}

	return champions, nil
}
