package ports

// ApplicationPorts aggregates all ports for dependency injection
type ApplicationPorts struct {
	// Forecast
	ProviderSelector SourceSelector
	Normalizer       ForecastNormalizer
	ForecastStore    ForecastStore
	ForecastCache    ForecastCache
	ChangeNotifier   ChangeNotifier

	// Locations
	LocationResolver LocationResolver

	// Infrastructure
	ConfigProvider ConfigProvider
	Logger         Logger
	Metrics        MetricsCollector
	Database       interface{}
}
