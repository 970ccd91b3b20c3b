package opendata

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/url"
)

const (
	packageShowPath     = "/api/3/action/package_show"
	datastoreSearchPath = "/api/3/action/datastore_search"
)

// Package is the `result` of package_show, trimmed to what the pipeline uses.
type Package struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Title     string     `json:"title"`
	Resources []Resource `json:"resources"`
}

// Resource is one table of a package. Only datastore-active resources can be
// searched for records.
type Resource struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Format          string `json:"format"`
	DatastoreActive bool   `json:"datastore_active"`
}

type packageEnvelope struct {
	Success bool     `json:"success"`
	Result  *Package `json:"result"`
}

type datastoreResult struct {
	ResourceID string            `json:"resource_id"`
	Records    []json.RawMessage `json:"records"`
	Total      int               `json:"total"`
}

type datastoreEnvelope struct {
	Success bool             `json:"success"`
	Result  *datastoreResult `json:"result"`
}

// Catalog is the read side of a CKAN portal. *Client implements it.
type Catalog interface {
	PackageShow(ctx context.Context, packageID string) (*Package, error)
	DatastoreSearch(ctx context.Context, resource Resource) ([]json.RawMessage, error)
}

var _ Catalog = (*Client)(nil)

func (c *Client) actionURL(path, id string) string {
	q := url.Values{}
	q.Set("id", id)
	return c.baseURL + path + "?" + q.Encode()
}

// PackageShow returns the package description for packageID.
func (c *Client) PackageShow(ctx context.Context, packageID string) (*Package, error) {
	u := c.actionURL(packageShowPath, packageID)
	c.logger.DebugContext(ctx, "Fetching package", slog.String("package_id", packageID))

	var env packageEnvelope
	if err := c.FetchJSON(ctx, u, &env); err != nil {
		return nil, err
	}
	if env.Result == nil {
		return nil, &ShapeError{URL: u, Field: "result"}
	}
	if env.Result.Resources == nil {
		return nil, &ShapeError{URL: u, Field: "result.resources"}
	}
	return env.Result, nil
}

// DatastoreSearch returns every record the portal hands back for resource in
// one call. Upstream truncation is not followed up.
func (c *Client) DatastoreSearch(ctx context.Context, resource Resource) ([]json.RawMessage, error) {
	if resource.ID == "" {
		return nil, &ShapeError{Field: "id"}
	}
	u := c.actionURL(datastoreSearchPath, resource.ID)
	c.logger.DebugContext(ctx, "Fetching datastore records", slog.String("resource_id", resource.ID))

	var env datastoreEnvelope
	if err := c.FetchJSON(ctx, u, &env); err != nil {
		return nil, err
	}
	if env.Result == nil {
		return nil, &ShapeError{URL: u, Field: "result"}
	}
	if env.Result.Records == nil {
		return nil, &ShapeError{URL: u, Field: "result.records"}
	}
	if env.Result.Total > len(env.Result.Records) {
		c.logger.WarnContext(ctx, "Datastore returned a partial record set",
			slog.String("resource_id", resource.ID),
			slog.Int("returned", len(env.Result.Records)),
			slog.Int("total", env.Result.Total))
	}
	return env.Result.Records, nil
}
