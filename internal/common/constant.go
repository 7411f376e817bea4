package common

const (
	// LowStockThreshold is the quantity below which a product counts as
	// low stock. The server filters with it, the client only mirrors it
	// for the dashboard badge.
	LowStockThreshold int64 = 5

	// DefaultPin is the PIN a fresh installation starts with and the
	// value the forgot-PIN path resets to.
	DefaultPin = "1234"

	// PinLength is the required PIN length, digits only.
	PinLength = 4
)
