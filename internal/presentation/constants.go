package presentation

const (
	IDParam        = "id"
	TypeKey        = "Content-Type"
	DispositionKey = "Content-Disposition"

	ImageField       = "image"
	MediaField       = "media"
	DescriptionField = "description"
	GuestNameField   = "guestName"
)
