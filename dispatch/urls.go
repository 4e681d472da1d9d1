package dispatch

import "fmt"

// DispatchURL builds the versioned region-list query. Parameter order
// matters to some server implementations, so the query is assembled
// literally instead of through url.Values.
func DispatchURL(base, version string) string {
	return fmt.Sprintf(
		"%s?version=%s&language_type=3&platform_type=3&channel_id=1&sub_channel_id=1&is_new_format=1",
		base, version,
	)
}

// GatewayURL builds the gateway query for a region's dispatch URL.
func GatewayURL(base, version, seed string) string {
	return fmt.Sprintf(
		"%s?version=%s&platform_type=1&language_type=3&dispatch_seed=%s&channel_id=1&sub_channel_id=1&is_need_url=1",
		base, version, seed,
	)
}
