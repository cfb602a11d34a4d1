package constant

const (
	// DateLayout is the calendar-day layout used for booking keys and CLI input.
	DateLayout = "2006-01-02"
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelCLIScopeName        = "cli"

	OtelRestaurantAttributeKey = "restaurant.name"
	OtelDateAttributeKey       = "booking.date"
	OtelTableAttributeKey      = "table.index"
)

const (
	CSVSeparator   = ","
	CSVFieldCount  = 2
	BookingSepChar = ":"
)

const (
	Empty = ""
)
