package impl

import (
	"context"
	"testing"

	"routeopt/internal/domain/entity"
	"routeopt/internal/domain/service"
	"routeopt/internal/errors"
	mockRepo "routeopt/internal/mocks/repository"
	mockService "routeopt/internal/mocks/service"
	"routeopt/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type geocodingServiceFixtures struct {
	service   usecase.GeocodingUsecase
	cache     *mockRepo.MockGeocodeCache
	primary   *mockService.MockGeocodeProvider
	secondary *mockService.MockGeocodeProvider
	metrics   *recordingMetrics
	region    *entity.TargetRegion
}

func createTestGeocodingService(t *testing.T, gazetteer stubGazetteer) geocodingServiceFixtures {
	cache := mockRepo.NewMockGeocodeCache(t)
	primary := mockService.NewMockGeocodeProvider(t)
	secondary := mockService.NewMockGeocodeProvider(t)
	primary.EXPECT().Name().Return("nominatim").Maybe()
	secondary.EXPECT().Name().Return("photon").Maybe()

	metrics := newRecordingMetrics()
	region := testRegion()

	svc := NewGeocodingService(GeocodingServiceParams{
		Cache:     cache,
		Gazetteer: gazetteer,
		Providers: []service.GeocodeProvider{primary, secondary},
		Region:    region,
		Metrics:   metrics,
		Logger:    discardLogger(),
	})

	return geocodingServiceFixtures{
		service:   svc,
		cache:     cache,
		primary:   primary,
		secondary: secondary,
		metrics:   metrics,
		region:    region,
	}
}

func TestGeocodingService_Resolve_CacheHit(t *testing.T) {
	fx := createTestGeocodingService(t, stubGazetteer{})
	ctx := context.Background()
	cached := entity.Coordinate{Lat: 35.83, Lng: 10.63}

	fx.cache.EXPECT().Get(ctx, "12 rue de la plage, sousse").Return(cached, true).Once()

	coord, err := fx.service.Resolve(ctx, "  12 Rue de la Plage, Sousse ")
	require.NoError(t, err)
	assert.Equal(t, cached, coord)
	assert.Equal(t, []string{"cache"}, fx.metrics.tiers)
}

func TestGeocodingService_Resolve_SecondCallServedFromCache(t *testing.T) {
	fx := createTestGeocodingService(t, stubGazetteer{})
	ctx := context.Background()
	found := entity.Coordinate{Lat: 35.84, Lng: 10.61}
	stored := map[string]entity.Coordinate{}

	fx.cache.EXPECT().Get(ctx, mock.Anything).RunAndReturn(func(_ context.Context, key string) (entity.Coordinate, bool) {
		coord, ok := stored[key]

		return coord, ok
	})
	fx.cache.EXPECT().Set(ctx, mock.Anything, mock.Anything).Run(func(_ context.Context, key string, coord entity.Coordinate) {
		stored[key] = coord
	})
	fx.primary.EXPECT().Geocode(ctx, "Rue Tahar Sfar, Sousse").Return(found, nil).Once()

	first, err := fx.service.Resolve(ctx, "Rue Tahar Sfar, Sousse")
	require.NoError(t, err)
	second, err := fx.service.Resolve(ctx, "rue tahar sfar, sousse")
	require.NoError(t, err)

	assert.Equal(t, found, first)
	assert.Equal(t, first, second)
	assert.Equal(t, []string{"nominatim", "cache"}, fx.metrics.tiers)
}

func TestGeocodingService_Resolve_GazetteerBeforeProviders(t *testing.T) {
	place := entity.Coordinate{Lat: 35.8289, Lng: 10.6405}
	fx := createTestGeocodingService(t, stubGazetteer{"port el kantaoui": place})
	ctx := context.Background()

	fx.cache.EXPECT().Get(ctx, "port el kantaoui").Return(entity.Coordinate{}, false)
	fx.cache.EXPECT().Set(ctx, "port el kantaoui", place).Once()

	coord, err := fx.service.Resolve(ctx, "Port El Kantaoui")
	require.NoError(t, err)
	assert.Equal(t, place, coord)
	assert.Equal(t, []string{"gazetteer"}, fx.metrics.tiers)
}

func TestGeocodingService_Resolve_FallsThroughToSecondProvider(t *testing.T) {
	fx := createTestGeocodingService(t, stubGazetteer{})
	ctx := context.Background()
	found := entity.Coordinate{Lat: 35.82, Lng: 10.64}

	fx.cache.EXPECT().Get(ctx, "bd   du 14 janvier,, sousse").Return(entity.Coordinate{}, false)
	fx.primary.EXPECT().Geocode(ctx, "boulevard du 14 Janvier, Sousse").
		Return(entity.Coordinate{}, errors.New("status 503"))
	fx.secondary.EXPECT().Geocode(ctx, "boulevard du 14 Janvier, Sousse").Return(found, nil)
	fx.cache.EXPECT().Set(ctx, "bd   du 14 janvier,, sousse", found).Once()

	coord, err := fx.service.Resolve(ctx, "Bd   du 14 Janvier,, Sousse")
	require.NoError(t, err)
	assert.Equal(t, found, coord)
	assert.Equal(t, []string{"photon"}, fx.metrics.tiers)
}

func TestGeocodingService_Resolve_AllTiersFail(t *testing.T) {
	fx := createTestGeocodingService(t, stubGazetteer{})
	ctx := context.Background()

	fx.cache.EXPECT().Get(ctx, mock.Anything).Return(entity.Coordinate{}, false)
	fx.primary.EXPECT().Geocode(ctx, mock.Anything).Return(entity.Coordinate{}, service.ErrGeocodeNotFound)
	fx.secondary.EXPECT().Geocode(ctx, mock.Anything).Return(entity.Coordinate{}, service.ErrGeocodeNotFound)

	_, err := fx.service.Resolve(ctx, "nowhere street")
	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrGeocodeNotFound))
	assert.Equal(t, []string{"not_found"}, fx.metrics.tiers)
}

func TestGeocodingService_Resolve_EmptyAddress(t *testing.T) {
	fx := createTestGeocodingService(t, stubGazetteer{})

	_, err := fx.service.Resolve(context.Background(), "   ")
	assert.True(t, errors.Is(err, service.ErrGeocodeNotFound))
}

func TestGeocodingService_Resolve_CancelledContextStopsCascade(t *testing.T) {
	fx := createTestGeocodingService(t, stubGazetteer{})
	ctx, cancel := context.WithCancel(context.Background())

	fx.cache.EXPECT().Get(ctx, mock.Anything).Return(entity.Coordinate{}, false)
	fx.primary.EXPECT().Geocode(ctx, mock.Anything).RunAndReturn(func(context.Context, string) (entity.Coordinate, error) {
		cancel()

		return entity.Coordinate{}, context.Canceled
	})

	_, err := fx.service.Resolve(ctx, "avenue habib bourguiba, sousse")
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	fx.secondary.AssertNotCalled(t, "Geocode", mock.Anything, mock.Anything)
}

func TestGeocodingService_ResolveWithFallback(t *testing.T) {
	tests := []struct {
		name    string
		address string
		want    func(r *entity.TargetRegion) entity.Coordinate
		tier    string
	}{
		{
			name:    "city named in address",
			address: "Cité Riadh, SOUSSE",
			want:    func(r *entity.TargetRegion) entity.Coordinate { return r.CityCentroid },
			tier:    "fallback_city",
		},
		{
			name:    "city absent from address",
			address: "somewhere unknown",
			want:    func(r *entity.TargetRegion) entity.Coordinate { return r.CountryCentroid },
			tier:    "fallback_country",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestGeocodingService(t, stubGazetteer{})
			ctx := context.Background()

			fx.cache.EXPECT().Get(ctx, mock.Anything).Return(entity.Coordinate{}, false)
			fx.primary.EXPECT().Geocode(ctx, mock.Anything).Return(entity.Coordinate{}, service.ErrGeocodeNotFound)
			fx.secondary.EXPECT().Geocode(ctx, mock.Anything).Return(entity.Coordinate{}, service.ErrGeocodeNotFound)

			coord := fx.service.ResolveWithFallback(ctx, tt.address)
			assert.Equal(t, tt.want(fx.region), coord)
			assert.Equal(t, []string{"not_found", tt.tier}, fx.metrics.tiers)
		})
	}
}

func TestGeocodingService_ResolveWithFallback_ReturnsResolved(t *testing.T) {
	fx := createTestGeocodingService(t, stubGazetteer{})
	ctx := context.Background()
	cached := entity.Coordinate{Lat: 35.81, Lng: 10.62}

	fx.cache.EXPECT().Get(ctx, "rue x, sousse").Return(cached, true)

	assert.Equal(t, cached, fx.service.ResolveWithFallback(ctx, "Rue X, Sousse"))
}
