package ports

// Topic keys published by the change notifier
const (
	TopicLocations = "locations"
)

// ForecastTopic returns the topic for writes affecting one coordinate and source
func ForecastTopic(coordKey string, source string) string {
	return "forecast:" + source + ":" + coordKey
}

// ChangeNotifier delivers "something changed" signals for a topic.
// Subscribers receive at most one pending signal per subscription.
type ChangeNotifier interface {
	Subscribe(topic string) (<-chan struct{}, func())
	Publish(topic string)
}
