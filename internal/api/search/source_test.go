package search

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/go-study-spaces/internal/api/datasets"
	"github.com/FACorreiaa/go-study-spaces/internal/api/opendata"
	"github.com/FACorreiaa/go-study-spaces/internal/types"
)

type MockCatalog struct {
	mock.Mock
}

func (m *MockCatalog) PackageShow(ctx context.Context, packageID string) (*opendata.Package, error) {
	args := m.Called(ctx, packageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*opendata.Package), args.Error(1)
}

func (m *MockCatalog) DatastoreSearch(ctx context.Context, resource opendata.Resource) ([]json.RawMessage, error) {
	args := m.Called(ctx, resource)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]json.RawMessage), args.Error(1)
}

var (
	parksResource = opendata.Resource{ID: "parks-r", DatastoreActive: true}
	wifiResource  = opendata.Resource{ID: "wifi-r", DatastoreActive: true}
)

func expectParks(c *MockCatalog) {
	c.On("PackageShow", mock.Anything, "parks-pkg").
		Return(&opendata.Package{ID: "parks-pkg", Resources: []opendata.Resource{parksResource}}, nil)
	c.On("DatastoreSearch", mock.Anything, parksResource).Return([]json.RawMessage{
		json.RawMessage(`{"_id":1,"ASSET_NAME":"Grange Park","geometry":"{\"type\":\"Point\",\"coordinates\":[-79.3923,43.6529]}"}`),
		json.RawMessage(`{"_id":2,"ASSET_NAME":"No geometry park"}`),
	}, nil)
}

func expectWifi(c *MockCatalog) {
	c.On("PackageShow", mock.Anything, "wifi-pkg").
		Return(&opendata.Package{ID: "wifi-pkg", Resources: []opendata.Resource{wifiResource}}, nil)
	c.On("DatastoreSearch", mock.Anything, wifiResource).Return([]json.RawMessage{
		json.RawMessage(`{"_id":1,"NAME":"Reference Library","LATITUDE":"43.6719","LONGITUDE":"-79.3868"}`),
	}, nil)
}

func liveRegistry() *datasets.Registry {
	return datasets.NewRegistry(datasets.Packages{Parks: "parks-pkg", Wifi: "wifi-pkg"})
}

func TestSampleSource_ReturnsCopy(t *testing.T) {
	got, err := NewSampleSource().Results(context.Background())
	require.NoError(t, err)
	require.Len(t, got, len(sampleResults))

	got[0].Name = "changed"
	assert.NotEqual(t, "changed", sampleResults[0].Name)
}

func TestLiveSource_CombinesInRegistryOrder(t *testing.T) {
	catalog := new(MockCatalog)
	expectParks(catalog)
	expectWifi(catalog)

	got, err := NewLiveSource(liveRegistry(), catalog, 0, slog.Default()).Results(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Grange Park", "Reference Library"}, names(got))
	assert.Equal(t, types.CategoryPark, got[0].Type)
	assert.Equal(t, types.CategoryWifi, got[1].Type)
}

func TestLiveSource_FetchesEveryCallWithoutTTL(t *testing.T) {
	catalog := new(MockCatalog)
	expectParks(catalog)
	expectWifi(catalog)
	src := NewLiveSource(liveRegistry(), catalog, 0, slog.Default())

	_, err := src.Results(context.Background())
	require.NoError(t, err)
	_, err = src.Results(context.Background())
	require.NoError(t, err)

	catalog.AssertNumberOfCalls(t, "PackageShow", 4)
}

func TestLiveSource_CachesWithTTL(t *testing.T) {
	catalog := new(MockCatalog)
	expectParks(catalog)
	expectWifi(catalog)
	src := NewLiveSource(liveRegistry(), catalog, time.Minute, slog.Default())

	first, err := src.Results(context.Background())
	require.NoError(t, err)
	first[0].Name = "changed"

	second, err := src.Results(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Grange Park", "Reference Library"}, names(second), "cached copy is not shared with callers")

	catalog.AssertNumberOfCalls(t, "PackageShow", 2)
}

func TestLiveSource_AnyDatasetFailureFailsAll(t *testing.T) {
	catalog := new(MockCatalog)
	boom := &opendata.FetchError{StatusCode: 503, Status: "Service Unavailable"}
	catalog.On("PackageShow", mock.Anything, "parks-pkg").Return(nil, boom)
	catalog.On("PackageShow", mock.Anything, "wifi-pkg").
		Return(&opendata.Package{ID: "wifi-pkg", Resources: []opendata.Resource{wifiResource}}, nil).Maybe()
	catalog.On("DatastoreSearch", mock.Anything, wifiResource).
		Return([]json.RawMessage{}, nil).Maybe()

	got, err := NewLiveSource(liveRegistry(), catalog, 0, slog.Default()).Results(context.Background())
	require.Error(t, err)
	assert.Nil(t, got)

	var fetchErr *opendata.FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Equal(t, 503, fetchErr.StatusCode)
	assert.Contains(t, err.Error(), "load parks")
}
