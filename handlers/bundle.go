package handlers

// HandlerBundle groups the per-resource handlers for route registration.
type HandlerBundle struct {
	Products *ProductHandler
	Posts    *PostHandler
	Bookings *BookingHandler
	Images   *ImageHandler

	// UploadDir backs the static /uploads mount.
	UploadDir string
}
