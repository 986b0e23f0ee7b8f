package master

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kerjahub/roster-backend-go/internal/domain/employee"
	"github.com/kerjahub/roster-backend-go/internal/domain/master/pattern"
	"github.com/kerjahub/roster-backend-go/internal/domain/master/store"
	"github.com/kerjahub/roster-backend-go/internal/pkg/validator"
)

type memoryPatternRepo struct {
	patterns map[string]pattern.WorkPattern
}

func (m *memoryPatternRepo) Create(_ context.Context, p pattern.WorkPattern) (pattern.WorkPattern, error) {
	p.ID = uuid.NewString()
	m.patterns[p.ID] = p
	return p, nil
}

func (m *memoryPatternRepo) GetByID(_ context.Context, id string) (pattern.WorkPattern, error) {
	p, ok := m.patterns[id]
	if !ok {
		return pattern.WorkPattern{}, pattern.ErrWorkPatternNotFound
	}
	return p, nil
}

func (m *memoryPatternRepo) GetByStoreLocationID(_ context.Context, storeLocationID string) ([]pattern.WorkPattern, error) {
	var out []pattern.WorkPattern
	for _, p := range m.patterns {
		if p.StoreLocationID == storeLocationID {
			out = append(out, p)
		}
	}
	return out, nil
}

type memoryStoreRepo struct {
	stores map[string]store.StoreLocation
}

func (m *memoryStoreRepo) Create(_ context.Context, s store.StoreLocation) (store.StoreLocation, error) {
	s.ID = uuid.NewString()
	m.stores[s.ID] = s
	return s, nil
}

func (m *memoryStoreRepo) GetByID(_ context.Context, id string) (store.StoreLocation, error) {
	s, ok := m.stores[id]
	if !ok {
		return store.StoreLocation{}, store.ErrStoreLocationNotFound
	}
	return s, nil
}

func (m *memoryStoreRepo) GetByEmployeeID(context.Context, string) (store.StoreLocation, error) {
	return store.StoreLocation{}, employee.ErrNoStoreLocation
}

type fixture struct {
	svc      MasterService
	patterns *memoryPatternRepo
	stores   *memoryStoreRepo
	storeID  string
}

func newFixture() *fixture {
	patterns := &memoryPatternRepo{patterns: make(map[string]pattern.WorkPattern)}
	stores := &memoryStoreRepo{stores: make(map[string]store.StoreLocation)}

	created, _ := stores.Create(context.Background(), store.StoreLocation{
		Name:                 "Toko Sudirman",
		Latitude:             -6.2,
		Longitude:            106.816666,
		GeofenceRadiusMeters: 150,
	})

	return &fixture{
		svc:      NewMasterService(patterns, stores),
		patterns: patterns,
		stores:   stores,
		storeID:  created.ID,
	}
}

func TestCreateWorkPattern(t *testing.T) {
	t.Parallel()
	f := newFixture()

	resp, err := f.svc.CreateWorkPattern(context.Background(), pattern.CreateWorkPatternRequest{
		Name:            "Shift Pagi",
		StoreLocationID: f.storeID,
		WorkFrom:        8.0,
		WorkTo:          16.5,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "Shift Pagi", resp.Name)
	assert.InDelta(t, 8.5, resp.Duration, 1e-9)

	stored, err := f.patterns.GetByID(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.Equal(t, f.storeID, stored.StoreLocationID)
}

func TestCreateWorkPattern_RejectsOvernightShift(t *testing.T) {
	t.Parallel()
	f := newFixture()

	cases := []struct {
		name     string
		workFrom float64
		workTo   float64
	}{
		{"end before start", 22.0, 6.0},
		{"zero duration", 8.0, 8.0},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			_, err := f.svc.CreateWorkPattern(context.Background(), pattern.CreateWorkPatternRequest{
				Name:            "Shift Malam",
				StoreLocationID: f.storeID,
				WorkFrom:        c.workFrom,
				WorkTo:          c.workTo,
			})

			var validationErrs validator.ValidationErrors
			require.ErrorAs(t, err, &validationErrs)
			assert.Contains(t, validationErrs.ToMap(), "work_to")
			assert.Empty(t, f.patterns.patterns, "a rejected pattern must not be written")
		})
	}
}

func TestCreateWorkPattern_UnknownStore(t *testing.T) {
	t.Parallel()
	f := newFixture()

	_, err := f.svc.CreateWorkPattern(context.Background(), pattern.CreateWorkPatternRequest{
		Name:            "Shift Pagi",
		StoreLocationID: "no-such-store",
		WorkFrom:        8.0,
		WorkTo:          16.0,
	})
	require.ErrorIs(t, err, store.ErrStoreLocationNotFound)
}

func TestCreateStoreLocation(t *testing.T) {
	t.Parallel()
	f := newFixture()

	address := "Jl. Jend. Sudirman No. 1"
	resp, err := f.svc.CreateStoreLocation(context.Background(), store.CreateStoreLocationRequest{
		Name:                 "Toko Thamrin",
		Address:              &address,
		Latitude:             -6.19,
		Longitude:            106.82,
		GeofenceRadiusMeters: 200,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, 200, resp.GeofenceRadiusMeters)
	require.NotNil(t, resp.Address)
	assert.Equal(t, address, *resp.Address)
}

func TestCreateStoreLocation_DefaultsGeofenceRadius(t *testing.T) {
	t.Parallel()
	f := newFixture()

	resp, err := f.svc.CreateStoreLocation(context.Background(), store.CreateStoreLocationRequest{
		Name:      "Toko Kecil",
		Latitude:  -6.21,
		Longitude: 106.81,
	})
	require.NoError(t, err)

	assert.Equal(t, store.DefaultGeofenceRadiusMeters, resp.GeofenceRadiusMeters)
}

func TestCreateStoreLocation_RejectsInvalidCoordinates(t *testing.T) {
	t.Parallel()
	f := newFixture()

	_, err := f.svc.CreateStoreLocation(context.Background(), store.CreateStoreLocationRequest{
		Name:      "Toko Salah",
		Latitude:  -95.0,
		Longitude: 106.81,
	})

	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	assert.Contains(t, validationErrs.ToMap(), "latitude")
}
